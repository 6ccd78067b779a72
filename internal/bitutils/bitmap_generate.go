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

import "github.com/wsf1990/arrow/arrow/bitutil"

// GenerateBits writes sequential bits to a bitmap. Bits preceding the
// initial start offset are preserved, bits following the bitmap may
// get clobbered.
func GenerateBits(bitmap []byte, start, length int64, g func() bool) {
	if length == 0 {
		return
	}

	cur := start / 8
	bitMask := bitutil.BitMask[start%8]
	curByte := bitmap[cur] & bitutil.PrecedingBitmask[start%8]

	for i := int64(0); i < length; i++ {
		bit := g()
		if bit {
			curByte = curByte | bitMask
		}
		bitMask <<= 1
		if bitMask == 0 {
			bitMask = 1
			bitmap[cur] = curByte
			cur++
			curByte = 0
		}
	}

	if bitMask != 1 {
		bitmap[cur] = curByte
	}
}

// GenerateBitsUnrolled is like GenerateBits but unrolls its main loop for
// greater performance.
//
// See the benchmarks in the test file for a comparison.
func GenerateBitsUnrolled(bitmap []byte, start, length int64, g func() bool) {
	if length == 0 {
		return
	}

	var (
		curByte        byte
		cur            = start / 8
		startBitOffset = uint64(start % 8)
		remaining      = length
	)

	if startBitOffset != 0 {
		curByte = bitmap[cur] & bitutil.PrecedingBitmask[startBitOffset]
		for i := startBitOffset; i < 8 && remaining > 0; i++ {
			if g() {
				curByte |= bitutil.BitMask[i]
			}
			remaining--
		}
		bitmap[cur] = curByte
		cur++
	}

	var outResults [8]byte
	for remaining >= 8 {
		for i := 0; i < 8; i++ {
			if g() {
				outResults[i] = 1
			} else {
				outResults[i] = 0
			}
		}
		remaining -= 8
		bitmap[cur] = outResults[0] | outResults[1]<<1 | outResults[2]<<2 |
			outResults[3]<<3 | outResults[4]<<4 | outResults[5]<<5 |
			outResults[6]<<6 | outResults[7]<<7
		cur++
	}

	if remaining > 0 {
		curByte = 0
		bitMask := byte(1)
		for ; remaining > 0; remaining-- {
			if g() {
				curByte |= bitMask
			}
			bitMask <<= 1
		}
		bitmap[cur] = curByte
	}
}
