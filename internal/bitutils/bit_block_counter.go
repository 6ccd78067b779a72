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

const (
	wordBits     = 64
	fourWordBits = 256
)

// BitBlockCount is returned by the various bit block counter utilities
// in order to return a length of bits and the population count of that
// slice of bits.
type BitBlockCount struct {
	Len    int16
	Popcnt int16
}

// NoneSet returns true if ALL the bits were 0 in this set of bits.
func (b BitBlockCount) NoneSet() bool {
	return b.Popcnt == 0
}

// AllSet returns true if ALL the bits were 1 in this set of bits.
func (b BitBlockCount) AllSet() bool {
	return b.Len == b.Popcnt
}

// BitBlockCounter is a utility for grabbing chunks of a bitmap at a time
// and efficiently counting the number of bits which are set.
//
// The returned block lengths are at most 64 bits for NextWord and 256
// bits for NextFourWords, the final block is truncated to however many
// bits remain in the bitmap.
type BitBlockCounter struct {
	bitmap        []byte
	bitsRemaining int64
	offset        int64
}

// NewBitBlockCounter returns a BitBlockCounter for the passed bitmap starting
// at startOffset bits into the buffer for length bits.
func NewBitBlockCounter(bitmap []byte, startOffset, length int64) *BitBlockCounter {
	return &BitBlockCounter{
		bitmap:        bitmap,
		bitsRemaining: length,
		offset:        startOffset,
	}
}

func (b *BitBlockCounter) nextBlock(blockSize int64) BitBlockCount {
	if b.bitsRemaining == 0 {
		return BitBlockCount{}
	}

	runLength := b.bitsRemaining
	if runLength > blockSize {
		runLength = blockSize
	}

	popcnt := bitutil.CountSetBits(b.bitmap, int(b.offset), int(runLength))
	b.offset += runLength
	b.bitsRemaining -= runLength
	return BitBlockCount{Len: int16(runLength), Popcnt: int16(popcnt)}
}

// NextFourWords returns the next run of available bits, usually 256. The
// returned pair contains the size of the run and the number of true values.
// The last block will have a length less than 256 if the bitmap length
// is not a multiple of 256, and will return 0-length blocks in subsequent
// invocations.
func (b *BitBlockCounter) NextFourWords() BitBlockCount {
	return b.nextBlock(fourWordBits)
}

// NextWord returns the next run of available bits, usually 64. The returned
// pair contains the size of the run and the number of true values. The last
// block will have a length less than 64 if the bitmap length is not a
// multiple of 64, and will return 0-length blocks in subsequent invocations.
func (b *BitBlockCounter) NextWord() BitBlockCount {
	return b.nextBlock(wordBits)
}
