// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bitutils

import (
	"github.com/wsf1990/arrow/arrow/bitutil"
)

// SetBitRun describes a run of contiguous set bits in a bitmap where
// Pos is the starting position of the run and Length is the number of bits.
type SetBitRun struct {
	Pos    int64
	Length int64
}

// AtEnd returns true if this bit run is the end of the set which is
// denoted by a length of 0.
func (s SetBitRun) AtEnd() bool { return s.Length == 0 }

// Equal returns whether rhs is the same run as s.
func (s SetBitRun) Equal(rhs SetBitRun) bool {
	return s.Pos == rhs.Pos && s.Length == rhs.Length
}

// SetBitRunReader is an interface for reading runs of contiguous set bits
// out of a bitmap. The positions of the returned runs are relative to the
// start offset the reader was constructed with.
type SetBitRunReader interface {
	// NextRun returns the next run of contiguous set bits,
	// a Length of 0 signals the end of iteration.
	NextRun() SetBitRun
}

type setBitRunReader struct {
	bitmap      []byte
	startOffset int64
	pos         int64
	length      int64
}

// NewSetBitRunReader returns a SetBitRunReader for the bitmap starting at
// startOffset which will read length bits, iterating over the runs of set
// bits from the beginning.
func NewSetBitRunReader(validBits []byte, startOffset, length int64) SetBitRunReader {
	return &setBitRunReader{bitmap: validBits, startOffset: startOffset, length: length}
}

func (r *setBitRunReader) NextRun() SetBitRun {
	for r.pos < r.length {
		abs := r.startOffset + r.pos
		// skip whole bytes of unset bits when byte aligned
		if abs%8 == 0 && r.length-r.pos >= 8 && r.bitmap[abs/8] == 0x00 {
			r.pos += 8
			continue
		}
		if bitutil.BitIsSet(r.bitmap, int(abs)) {
			break
		}
		r.pos++
	}

	if r.pos >= r.length {
		return SetBitRun{0, 0}
	}

	start := r.pos
	r.pos++
	for r.pos < r.length {
		abs := r.startOffset + r.pos
		if abs%8 == 0 && r.length-r.pos >= 8 && r.bitmap[abs/8] == 0xFF {
			r.pos += 8
			continue
		}
		if !bitutil.BitIsSet(r.bitmap, int(abs)) {
			break
		}
		r.pos++
	}
	return SetBitRun{Pos: start, Length: r.pos - start}
}

type reverseSetBitRunReader struct {
	bitmap      []byte
	startOffset int64
	// relative position one past the next bit to read, counting down to 0
	pos int64
}

// NewReverseSetBitRunReader returns a SetBitRunReader like NewSetBitRunReader,
// except it will iterate over the runs from the end of the bitmap to the
// beginning. The run positions remain relative to startOffset.
func NewReverseSetBitRunReader(validBits []byte, startOffset, length int64) SetBitRunReader {
	return &reverseSetBitRunReader{bitmap: validBits, startOffset: startOffset, pos: length}
}

func (r *reverseSetBitRunReader) NextRun() SetBitRun {
	for r.pos > 0 {
		abs := r.startOffset + r.pos - 1
		if abs%8 == 7 && r.pos >= 8 && r.bitmap[abs/8] == 0x00 {
			r.pos -= 8
			continue
		}
		if bitutil.BitIsSet(r.bitmap, int(abs)) {
			break
		}
		r.pos--
	}

	if r.pos == 0 {
		return SetBitRun{0, 0}
	}

	end := r.pos
	r.pos--
	for r.pos > 0 {
		abs := r.startOffset + r.pos - 1
		if abs%8 == 7 && r.pos >= 8 && r.bitmap[abs/8] == 0xFF {
			r.pos -= 8
			continue
		}
		if !bitutil.BitIsSet(r.bitmap, int(abs)) {
			break
		}
		r.pos--
	}
	return SetBitRun{Pos: r.pos, Length: end - r.pos}
}

// VisitFn is a callback function for visiting runs of contiguous bits
type VisitFn func(pos int64, length int64) error

// VisitSetBitRuns calls visitFn for each set in a loop starting from the current position
// it's a convenience wrapper for NewSetBitRunReader and running NextRun until the reader
// is exhausted, or an error is returned from the visit function.
func VisitSetBitRuns(bitmap []byte, bitmapOffset int64, length int64, visitFn VisitFn) error {
	if bitmap == nil {
		return visitFn(0, length)
	}
	rdr := NewSetBitRunReader(bitmap, bitmapOffset, length)
	for {
		run := rdr.NextRun()
		if run.Length == 0 {
			break
		}
		if err := visitFn(run.Pos, run.Length); err != nil {
			return err
		}
	}
	return nil
}
