/*
Package session couples a surrogate index with the UTF-16 text of a document.

A Session plays the part of a host editor: it owns the text, reports selection
changes and edits to its surrogates.Index, and hands out code-point offsets.
Hosts which receive edits as ranges (insert text at [start, end), delete
[start, end)) may use InsertText and DeleteText, which select and edit in one
step.

Sessions publish an Event for every selection change and every edit.
Subscribers (e.g., an IME bridge) receive them through a buffered channel;
publishing never blocks the editing path.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package session

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'surrogates'
func tracer() tracing.Trace {
	return tracing.Select("surrogates")
}
