/*
Package surrogates keeps track of UTF-16 surrogate pairs in a text which is
being edited, and converts between two offset spaces over that text.

Offsets

Host text controls and most string APIs count UTF-16 code units. Layout engines
and IME components frequently count code points instead. Both counts agree
until the first character outside the Basic Multilingual Plane: such a
character occupies two code units (a surrogate pair), but only one code point.
An Index records the positions of all surrogate pairs of a document and
answers conversion queries without re-scanning the text.

Gap encoding

Entries are kept in a single sorted slice. Entries left of a movable gap hold
absolute code-unit offsets, entries right of it hold offsets relative to the end
of the document (negative numbers). An edit at the gap shifts every entry to its
right by the same amount, which is exactly what the relative encoding absorbs
for free. Moving the gap re-encodes only the entries it passes over.

Usage

The host reports every selection change with UpdateSelection and every edit
with Insert or Delete, which always operate on the current selection:

	ix := surrogates.New()
	ix.UpdateSelection(0, 0)
	ix.InsertString("a😀b")
	from, to := ix.UpdateSelection(0, 4) // from = 0, to = 3

The index does not own the text. Package session couples an Index with a
UTF-16 text buffer.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package surrogates

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// IndexError is an error type for the surrogates module
type IndexError string

func (e IndexError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a code-unit offset is
// negative or greater than the length of the document.
const ErrIndexOutOfBounds = IndexError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = IndexError("illegal arguments")

// ErrIllegalPosition is flagged whenever a code-unit offset points between
// the two halves of a surrogate pair.
const ErrIllegalPosition = IndexError("illegal position")

// ErrCorrupted is flagged by Check if the index violates one of its invariants.
const ErrCorrupted = IndexError("surrogate index corrupted")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
