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

package bitutil

import (
	"github.com/wsf1990/arrow/arrow/internal/debug"
	"github.com/wsf1990/arrow/arrow/memory"
)

type bitOp struct {
	opWord    func(uint64, uint64) uint64
	opByte    func(byte, byte) byte
	opAligned func(l, r, o []byte)
}

var (
	bitAndOp = bitOp{
		opWord:    func(l, r uint64) uint64 { return l & r },
		opByte:    func(l, r byte) byte { return l & r },
		opAligned: alignedBitAndGo,
	}
	bitOrOp = bitOp{
		opWord:    func(l, r uint64) uint64 { return l | r },
		opByte:    func(l, r byte) byte { return l | r },
		opAligned: alignedBitOrGo,
	}
)

func alignedBitAndGo(left, right, out []byte) {
	var (
		nbytes = len(out)
		i      = 0
	)
	if nbytes > uint64SizeBytes {
		// run a loop on uint64 words instead of single bytes
		leftWords := bytesToUint64(left[i:])
		rightWords := bytesToUint64(right[i:])
		outWords := bytesToUint64(out[i:])

		for w := range outWords {
			outWords[w] = leftWords[w] & rightWords[w]
		}

		i += len(outWords) * uint64SizeBytes
	}

	// grab any remaining bytes that were fewer than a word
	for ; i < nbytes; i++ {
		out[i] = left[i] & right[i]
	}
}

func alignedBitOrGo(left, right, out []byte) {
	var (
		nbytes = len(out)
		i      = 0
	)
	if nbytes > uint64SizeBytes {
		leftWords := bytesToUint64(left[i:])
		rightWords := bytesToUint64(right[i:])
		outWords := bytesToUint64(out[i:])

		for w := range outWords {
			outWords[w] = leftWords[w] | rightWords[w]
		}

		i += len(outWords) * uint64SizeBytes
	}

	for ; i < nbytes; i++ {
		out[i] = left[i] | right[i]
	}
}

func alignedBitmapOp(op bitOp, left, right []byte, lOffset, rOffset int64, out []byte, outOffset, length int64) {
	debug.Assert(lOffset%8 == rOffset%8, "aligned bitmap op called with unaligned input offsets")
	debug.Assert(lOffset%8 == outOffset%8, "aligned bitmap op called with unaligned output offset")

	nbytes := BytesForBits(length + lOffset%8)
	left = left[lOffset/8:]
	right = right[rOffset/8:]
	out = out[outOffset/8:]
	endMask := (lOffset + length) % 8
	switch nbytes {
	case 0:
		return
	case 1: // everything within a single byte
		// (length+lOffset%8) <= 8
		mask := PrecedingBitmask[lOffset%8]
		if endMask != 0 {
			mask |= TrailingBitmask[endMask]
		}
		out[0] = (out[0] & mask) | (op.opByte(left[0], right[0]) &^ mask)
	case 2: // don't send zero-length slices to the aligned kernel
		firstByteMask := PrecedingBitmask[lOffset%8]
		out[0] = (out[0] & firstByteMask) | (op.opByte(left[0], right[0]) &^ firstByteMask)
		lastByteMask := byte(0)
		if endMask != 0 {
			lastByteMask = TrailingBitmask[endMask]
		}
		out[1] = (out[1] & lastByteMask) | (op.opByte(left[1], right[1]) &^ lastByteMask)
	default:
		firstByteMask := PrecedingBitmask[lOffset%8]
		out[0] = (out[0] & firstByteMask) | (op.opByte(left[0], right[0]) &^ firstByteMask)

		op.opAligned(left[1:nbytes-1], right[1:nbytes-1], out[1:nbytes-1])

		lastByteMask := byte(0)
		if endMask != 0 {
			lastByteMask = TrailingBitmask[endMask]
		}
		out[nbytes-1] = (out[nbytes-1] & lastByteMask) | (op.opByte(left[nbytes-1], right[nbytes-1]) &^ lastByteMask)
	}
}

func unalignedBitmapOp(op bitOp, left, right []byte, lOffset, rOffset int64, out []byte, outOffset, length int64) {
	leftRdr := NewBitmapWordReader(left, int(lOffset), int(length))
	rightRdr := NewBitmapWordReader(right, int(rOffset), int(length))
	writer := NewBitmapWordWriter(out, int(outOffset), int(length))

	for nwords := leftRdr.Words(); nwords > 0; nwords-- {
		writer.PutNextWord(op.opWord(leftRdr.NextWord(), rightRdr.NextWord()))
	}
	for nbytes := leftRdr.TrailingBytes(); nbytes > 0; nbytes-- {
		leftByte, leftValid := leftRdr.NextTrailingByte()
		rightByte, rightValid := rightRdr.NextTrailingByte()
		debug.Assert(leftValid == rightValid, "mismatch in the number of valid trailing bits")
		writer.PutNextTrailingByte(op.opByte(leftByte, rightByte), leftValid)
	}
}

func bitmapOp(op bitOp, left, right []byte, lOffset, rOffset int64, out []byte, outOffset, length int64) {
	if lOffset%8 == rOffset%8 && lOffset%8 == outOffset%8 {
		// fast case: can operate on words
		alignedBitmapOp(op, left, right, lOffset, rOffset, out, outOffset, length)
	} else {
		// unaligned: have to use the bitmap word readers/writers
		unalignedBitmapOp(op, left, right, lOffset, rOffset, out, outOffset, length)
	}
}

// BitmapAnd computes the bitwise AND of the two bitmaps, writing length bits
// into out starting at bit outOffset.
func BitmapAnd(left, right []byte, lOffset, rOffset int64, out []byte, outOffset, length int64) {
	bitmapOp(bitAndOp, left, right, lOffset, rOffset, out, outOffset, length)
}

// BitmapOr computes the bitwise OR of the two bitmaps, writing length bits
// into out starting at bit outOffset.
func BitmapOr(left, right []byte, lOffset, rOffset int64, out []byte, outOffset, length int64) {
	bitmapOp(bitOrOp, left, right, lOffset, rOffset, out, outOffset, length)
}

func bitmapOpAlloc(mem memory.Allocator, op bitOp, left, right []byte, lOffset, rOffset int64, length, outOffset int64) *memory.Buffer {
	bits := length + outOffset
	buf := memory.NewResizableBuffer(mem)
	buf.Resize(int(BytesForBits(bits)))
	bitmapOp(op, left, right, lOffset, rOffset, buf.Bytes(), outOffset, length)
	return buf
}

// BitmapAndAlloc allocates a new buffer of BytesForBits(length+outOffset)
// bytes and writes the bitwise AND of the two bitmaps into it.
func BitmapAndAlloc(mem memory.Allocator, left, right []byte, lOffset, rOffset int64, length, outOffset int64) *memory.Buffer {
	return bitmapOpAlloc(mem, bitAndOp, left, right, lOffset, rOffset, length, outOffset)
}

// BitmapOrAlloc allocates a new buffer of BytesForBits(length+outOffset)
// bytes and writes the bitwise OR of the two bitmaps into it.
func BitmapOrAlloc(mem memory.Allocator, left, right []byte, lOffset, rOffset int64, length, outOffset int64) *memory.Buffer {
	return bitmapOpAlloc(mem, bitOrOp, left, right, lOffset, rOffset, length, outOffset)
}
