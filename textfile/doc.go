/*
Package textfile provides API helpers to load UTF-8 text files into editing
sessions.

Files are read in fragments of whole runes, so a surrogate pair is never split
between two fragments.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'surrogates'
func tracer() tracing.Trace {
	return tracing.Select("surrogates")
}
