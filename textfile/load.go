package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/surrogates"
	"github.com/npillmayer/surrogates/session"
)

/*
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

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Load reads a file, which must be a UTF-8 text file, into a new session.
// Clients may indicate a recommended fragment length in bytes. It may be 0,
// letting Load choose a sensible default from the file's size.
//
// Invalid UTF-8 is loaded as U+FFFD. After loading, the caret is positioned
// at the end of the text.
func Load(name string, fragSize int64) (*session.Session, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", surrogates.ErrIllegalArguments, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if fragSize <= 0 || fragSize > tenKb {
		fragSize = fragmentSize(fi.Size())
	}
	tracer().Debugf("textfile: loading %s (%d bytes) in fragments of %d", name, fi.Size(), fragSize)
	return LoadReader(file, fragSize)
}

// LoadReader reads UTF-8 text from r into a new session, appending fragments
// of about fragSize bytes. A fragSize ≤ 0 selects a default.
func LoadReader(r io.Reader, fragSize int64) (*session.Session, error) {
	if fragSize <= 0 {
		fragSize = twoKb
	}
	s := session.New()
	br := bufio.NewReader(r)
	var frag strings.Builder
	cnt := 0
	for {
		ch, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			s.Close()
			return nil, fmt.Errorf("error loading text fragment #%d: %w", cnt, err)
		}
		frag.WriteRune(ch)
		if int64(frag.Len()) >= fragSize {
			s.Append(frag.String())
			frag.Reset()
			cnt++
		}
	}
	if frag.Len() > 0 {
		s.Append(frag.String())
		cnt++
	}
	tracer().Debugf("textfile: loaded %d fragments, %d units, %d surrogate pairs", cnt, s.Len(), s.Index().Pairs())
	return s, nil
}

// fragmentSize selects a fragment length depending on the size of a file.
func fragmentSize(size int64) int64 {
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}
