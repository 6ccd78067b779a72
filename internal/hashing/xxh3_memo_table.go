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

// Package hashing provides utilities for and an implementation of a hash
// table which is more performant than the default go map implementation
// by leveraging xxh3 and not having to support arbitrary key types.
package hashing

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/bits"
	"unsafe"

	"github.com/zeebo/xxh3"

	"github.com/wsf1990/arrow/arrow"
)

// KeyNotFound is the constant returned by memo table functions when a key
// isn't found in the table.
const KeyNotFound = -1

// two of xxhash's prime multipliers, chosen for their bit dispersion
var multipliers = [2]uint64{11400714785074694791, 14029467366897019727}

// extra primes to mix the xxh3 output for the distinct hash algorithms
var exprimes = [2]uint64{1609587929392839161, 9650029242287828579}

// hashInt mixes the bits of val by multiplying with one of xxhash's prime
// multipliers and then byte swapping the product so that both the high and
// low bits of the hash participate in the initial table index.
func hashInt(val uint64, alg uint64) uint64 {
	return bits.ReverseBytes64(multipliers[alg] * val)
}

// float hashes operate on the raw bit pattern, mixing in the byte width
// so they don't trivially collide with the equivalent integer hashes.
func hashFloat32(val float32, alg uint64) uint64 {
	return hashInt(uint64(math.Float32bits(val)), alg) ^ 4
}

func hashFloat64(val float64, alg uint64) uint64 {
	return hashInt(math.Float64bits(val), alg) ^ 8
}

func hashString(val string, alg uint64) uint64 {
	if val == "" {
		return Hash([]byte{}, alg)
	}
	// highly efficient way to get byte slice without copy before
	// the introduction of unsafe.StringData in go1.20
	buf := *(*[]byte)(unsafe.Pointer(&struct {
		string
		int
	}{val, len(val)}))
	return Hash(buf, alg)
}

// Hash returns a hash for the given bytes, the algorithm used is selected
// by alg which must be 0 or 1.
//
// Short inputs are hashed directly from one or two loaded words rather
// than calling into xxh3, which noticeably speeds up building dictionaries
// of small values.
func Hash(b []byte, alg uint64) uint64 {
	n := len(b)
	if n == 0 {
		return 1
	}

	if n <= 16 {
		var lo, hi uint64
		if n <= 8 {
			var tmp [8]byte
			copy(tmp[:], b)
			lo = binary.LittleEndian.Uint64(tmp[:])
			hi = uint64(n)
		} else {
			lo = binary.LittleEndian.Uint64(b)
			var tmp [8]byte
			copy(tmp[:], b[n-8:])
			hi = binary.LittleEndian.Uint64(tmp[:]) ^ (uint64(n) << 56)
		}
		return hashInt(lo, alg) ^ hashInt(hi, alg^1)
	}

	// multiply by an extra prime so the two algorithms yield distinct streams
	return xxh3.Hash(b) * exprimes[alg]
}

// ByteSlice is an interface for types which can expose their data as a
// slice of bytes, such as memory buffers.
type ByteSlice interface {
	Bytes() []byte
}

// TypeTraits is the subset of the arrow type traits that a memo table
// needs in order to size its serialized output.
type TypeTraits interface {
	BytesRequired(n int) int
}

// MemoTable interface which can be used to swap out implementations of
// the hash table used for computing dictionaries of values. Values
// remember the order in which they were inserted, producing a valid
// dictionary.
type MemoTable interface {
	// Reset drops everything in the table allowing it to be reused.
	Reset()
	// Size returns the current number of unique values stored in the
	// table, including whether or not a null value has been inserted
	// via GetOrInsertNull.
	Size() int
	// GetOrInsert returns the index of the table where the specified
	// value is, and a boolean indicating whether or not the value was
	// found in the table. It inserts the value if it wasn't present.
	GetOrInsert(val interface{}) (idx int, existed bool, err error)
	// Get returns the index of the table where the requested value
	// resides without inserting it, along with a bool reporting whether
	// it was found.
	Get(val interface{}) (idx int, exists bool)
	// GetNull returns the index of the null value in the table without
	// inserting one, along with a bool reporting whether one exists.
	GetNull() (idx int, exists bool)
	// GetOrInsertNull returns the index of the null value in the table,
	// inserting one if it doesn't already exist, and a bool reporting
	// whether one already existed.
	GetOrInsertNull() (idx int, existed bool)
	// CopyValues populates out with the values currently in the table,
	// out must be a slice of the correct type for the table.
	CopyValues(out interface{})
	// CopyValuesSubset is like CopyValues but only copies the values
	// starting with the index start.
	CopyValuesSubset(start int, out interface{})
	// WriteOut serializes the values of the table to out in native
	// endianness, out must have room for Size() values.
	WriteOut(out []byte)
	// WriteOutSubset is like WriteOut but only serializes the values
	// starting with the index start.
	WriteOutSubset(start int, out []byte)
	// TypeTraits returns the type traits used for sizing the serialized
	// output, or nil for tables of variable length values.
	TypeTraits() TypeTraits
}

// NumericMemoTable extends MemoTable for tables of fixed width numeric
// values with explicitly little endian serialization and access to the
// type traits for sizing.
type NumericMemoTable interface {
	MemoTable
	TypeTraits() TypeTraits
	WriteOutLE(out []byte)
	WriteOutSubsetLE(start int, out []byte)
}

// BinaryBuilderIFace is the subset of an array builder for variable
// length binary data that the BinaryMemoTable uses to accumulate its
// unique values while avoiding a dependency on the array package.
type BinaryBuilderIFace interface {
	Retain()
	Release()
	Reserve(int)
	ReserveData(int)
	Len() int
	DataLen() int
	Value(int) []byte
	Append([]byte)
	AppendNull()
	AppendString(string)
	NewArray() arrow.Array
}

// BinaryMemoTable is a hash table for variable length binary data. It
// delegates storage of the actual values to a binary array builder so the
// accumulated data can be cheaply handed off to a dictionary array, while
// the hash table only tracks the indexes into that builder.
type BinaryMemoTable struct {
	tbl     *hashTable[int32]
	builder BinaryBuilderIFace
	nullIdx int
}

// NewBinaryMemoTable returns a memo table for binary data using bldr to
// accumulate the values. initial is the initial number of entries to size
// the table for and valuesize the amount of space to reserve for the data,
// if valuesize is <= 0 then initial * 4 bytes are reserved.
func NewBinaryMemoTable(initial, valuesize int, bldr BinaryBuilderIFace) *BinaryMemoTable {
	bldr.Reserve(initial)
	datasize := valuesize
	if datasize <= 0 {
		datasize = initial * 4
	}
	bldr.ReserveData(datasize)
	return &BinaryMemoTable{
		tbl:     newHashTable[int32](uint64(initial)),
		builder: bldr,
		nullIdx: KeyNotFound,
	}
}

// Retain increases the ref count of the builder backing this memo table.
func (s *BinaryMemoTable) Retain() { s.builder.Retain() }

// Release decreases the ref count of the builder backing this memo table.
func (s *BinaryMemoTable) Release() { s.builder.Release() }

// Reset dumps all of the data in the table allowing it to be reused.
func (s *BinaryMemoTable) Reset() {
	s.tbl.reset(32)
	s.builder.NewArray().Release()
	s.nullIdx = KeyNotFound
}

// GetNull returns the index of a null that has been inserted into the
// table, or KeyNotFound with false if one hasn't been.
func (s *BinaryMemoTable) GetNull() (int, bool) {
	return s.nullIdx, s.nullIdx != KeyNotFound
}

// Size returns the current size of the memo table including the null
// value if one has been inserted.
func (s *BinaryMemoTable) Size() int {
	sz := int(s.tbl.size)
	if _, ok := s.GetNull(); ok {
		sz++
	}
	return sz
}

func (s *BinaryMemoTable) valAsBytes(val interface{}) []byte {
	switch v := val.(type) {
	case []byte:
		return v
	case string:
		return *(*[]byte)(unsafe.Pointer(&struct {
			string
			int
		}{v, len(v)}))
	case ByteSlice:
		return v.Bytes()
	}
	panic("invalid type for binarymemotable")
}

func (s *BinaryMemoTable) getHash(val interface{}) uint64 {
	switch v := val.(type) {
	case string:
		return hashString(v, 0)
	case []byte:
		return Hash(v, 0)
	case ByteSlice:
		return Hash(v.Bytes(), 0)
	}
	panic("invalid type for binarymemotable")
}

func (s *BinaryMemoTable) appendVal(val interface{}) {
	switch v := val.(type) {
	case string:
		s.builder.AppendString(v)
	case []byte:
		s.builder.Append(v)
	case ByteSlice:
		s.builder.Append(v.Bytes())
	}
}

func (s *BinaryMemoTable) lookup(h uint64, val []byte) (uint64, bool) {
	return s.tbl.lookup(h, s.tbl.capMask, func(idx int32) bool {
		return bytes.Equal(val, s.builder.Value(int(idx)))
	})
}

// Get returns the index of the table where the requested value resides
// and a bool indicating whether it was found.
func (s *BinaryMemoTable) Get(val interface{}) (int, bool) {
	if idx, found := s.lookup(s.getHash(val), s.valAsBytes(val)); found {
		return int(s.tbl.entries[idx].val), true
	}
	return KeyNotFound, false
}

// GetOrInsert returns the index of the table where val resides, inserting
// it if it wasn't already in the table. val needs to be a []byte, string
// or ByteSlice.
func (s *BinaryMemoTable) GetOrInsert(val interface{}) (idx int, found bool, err error) {
	h := s.getHash(val)
	eIdx, found := s.lookup(h, s.valAsBytes(val))
	if found {
		idx = int(s.tbl.entries[eIdx].val)
		return
	}

	idx = s.Size()
	s.appendVal(val)
	s.tbl.insert(eIdx, h, int32(idx), -1)
	return
}

// GetOrInsertNull returns the index of the null value in the table,
// inserting one if it hasn't already been inserted, with found reporting
// whether it already existed.
func (s *BinaryMemoTable) GetOrInsertNull() (idx int, found bool) {
	idx, found = s.GetNull()
	if !found {
		idx = s.Size()
		s.nullIdx = idx
		s.builder.AppendNull()
	}
	return
}

// TypeTraits returns nil, binary values are variable length and are
// sized by ValuesSize rather than the traits.
func (BinaryMemoTable) TypeTraits() TypeTraits { return nil }

// ValuesSize returns the total size of the raw bytes that have been
// inserted into the table so far.
func (s *BinaryMemoTable) ValuesSize() int { return s.builder.DataLen() }

// CopyOffsets populates out with the start and end offsets of each value
// in the stored data. len(out) must be at least Size()+1.
func (s *BinaryMemoTable) CopyOffsets(out []int32) {
	s.CopyOffsetsSubset(0, out)
}

// CopyOffsetsSubset is like CopyOffsets but only copies the offsets of
// the values starting at index start, rebased so the first offset is 0.
func (s *BinaryMemoTable) CopyOffsetsSubset(start int, out []int32) {
	sz := s.Size()
	if sz <= start {
		return
	}

	out[0] = 0
	var off int32
	for i := start; i < sz; i++ {
		off += int32(len(s.builder.Value(i)))
		out[i-start+1] = off
	}
}

// CopyValues copies the raw binary data of the stored values into out,
// which must be a []byte with room for ValuesSize bytes.
func (s *BinaryMemoTable) CopyValues(out interface{}) {
	s.CopyValuesSubset(0, out)
}

// CopyValuesSubset is like CopyValues but only copies the data of the
// values starting at index start.
func (s *BinaryMemoTable) CopyValuesSubset(start int, out interface{}) {
	outval := out.([]byte)
	n := 0
	for i := start; i < s.Size(); i++ {
		n += copy(outval[n:], s.builder.Value(i))
	}
}

// CopyFixedWidthValues exists to cope with the fact that the table
// doesn't track the fixed width of the values it stores, so the empty
// bytes of an inserted null need to be expanded to width bytes in out.
func (s *BinaryMemoTable) CopyFixedWidthValues(start, width int, out []byte) {
	if start >= s.Size() {
		return
	}

	null, hasNull := s.GetNull()
	n := 0
	for i := start; i < s.Size(); i++ {
		if hasNull && i == null {
			// leave zeros for the null slot
			n += width
			continue
		}
		n += copy(out[n:], s.builder.Value(i))
	}
}

// WriteOut copies the raw binary data of the stored values into out.
func (s *BinaryMemoTable) WriteOut(out []byte) {
	s.CopyValuesSubset(0, out)
}

// WriteOutSubset is like WriteOut but only writes the values starting at
// index start.
func (s *BinaryMemoTable) WriteOutSubset(start int, out []byte) {
	s.CopyValuesSubset(start, out)
}
