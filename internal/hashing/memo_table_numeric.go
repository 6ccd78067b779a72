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

package hashing

import (
	"math"
	"unsafe"

	"github.com/wsf1990/arrow/arrow"
	"github.com/wsf1990/arrow/arrow/bitutil"
	"github.com/wsf1990/arrow/arrow/endian"
)

// valueType is the set of fixed width types the hash tables can store
// directly as keys.
type valueType interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 |
		int64 | uint64 | float32 | float64
}

const (
	sentinel   uint64 = 0
	loadFactor uint64 = 2
)

// entries with a hash of 0 mark an empty slot, remap the rare real 0 hash
func fixupHash(h uint64) uint64 {
	if h == sentinel {
		return 42
	}
	return h
}

type entry[T valueType] struct {
	h       uint64
	val     T
	memoIdx int32
}

func (e entry[T]) valid() bool { return e.h != sentinel }

// hashTable is an open addressing hash table using a variant of CPython's
// perturbation probing so that all of the bits of the hash value eventually
// participate in the probe sequence, minimizing clustering.
type hashTable[T valueType] struct {
	cap     uint64
	capMask uint64
	size    uint64
	entries []entry[T]
}

func newHashTable[T valueType](capacity uint64) *hashTable[T] {
	if capacity < 32 {
		capacity = 32
	}
	initCap := uint64(bitutil.NextPowerOf2(int(capacity)))
	return &hashTable[T]{
		cap:     initCap,
		capMask: initCap - 1,
		entries: make([]entry[T], initCap),
	}
}

func (h *hashTable[T]) reset(capacity uint64) {
	if capacity < 32 {
		capacity = 32
	}
	initCap := uint64(bitutil.NextPowerOf2(int(capacity)))
	h.cap = initCap
	h.capMask = initCap - 1
	h.size = 0
	h.entries = make([]entry[T], initCap)
}

// lookup returns the index of the slot for the hash v whose entry passes
// cmp, or the first empty slot of its probe chain when no entry does.
func (h *hashTable[T]) lookup(v uint64, szMask uint64, cmp func(T) bool) (uint64, bool) {
	const perturbShift uint8 = 5

	v = fixupHash(v)
	idx := v & szMask
	perturb := (v >> perturbShift) + 1
	for {
		e := &h.entries[idx]
		if e.h == v && cmp(e.val) {
			return idx, true
		}
		if e.h == sentinel {
			return idx, false
		}
		idx = (idx + perturb) & szMask
		perturb = (perturb >> perturbShift) + 1
	}
}

func (h *hashTable[T]) needUpsize() bool { return h.size*loadFactor >= h.cap }

func (h *hashTable[T]) upsize(newcap uint64) {
	newMask := newcap - 1
	old := h.entries
	h.entries = make([]entry[T], newcap)
	for _, e := range old {
		if e.valid() {
			idx, _ := h.lookup(e.h, newMask, func(T) bool { return false })
			h.entries[idx] = e
		}
	}
	h.cap = newcap
	h.capMask = newMask
}

// insert places the value in the empty slot idx previously returned by
// lookup, growing the table if it passes the load factor afterwards.
func (h *hashTable[T]) insert(idx uint64, v uint64, val T, memoIdx int32) {
	h.entries[idx] = entry[T]{h: fixupHash(v), val: val, memoIdx: memoIdx}
	h.size++
	if h.needUpsize() {
		h.upsize(h.cap * loadFactor * 2)
	}
}

func (h *hashTable[T]) visitEntries(visit func(*entry[T])) {
	for i := range h.entries {
		if h.entries[i].valid() {
			visit(&h.entries[i])
		}
	}
}

func hashValue[T valueType](val T, alg uint64) uint64 {
	switch v := any(val).(type) {
	case int8:
		return hashInt(uint64(v), alg)
	case uint8:
		return hashInt(uint64(v), alg)
	case int16:
		return hashInt(uint64(v), alg)
	case uint16:
		return hashInt(uint64(v), alg)
	case int32:
		return hashInt(uint64(v), alg)
	case uint32:
		return hashInt(uint64(v), alg)
	case int64:
		return hashInt(uint64(v), alg)
	case uint64:
		return hashInt(v, alg)
	case float32:
		return hashFloat32(v, alg)
	case float64:
		return hashFloat64(v, alg)
	}
	return 0
}

// isNaN reports whether a floating point value is NaN, always false for
// the integral types.
func isNaN[T valueType](val T) bool {
	switch v := any(val).(type) {
	case float32:
		return v != v
	case float64:
		return v != v
	}
	return false
}

// numericMemoTable is a memo table for a fixed width type, memoizing the
// insertion order of the unique values it is handed.
type numericMemoTable[T valueType] struct {
	tbl     *hashTable[T]
	nullIdx int32
	traits  TypeTraits
}

func newNumericMemoTable[T valueType](num int64, traits TypeTraits) *numericMemoTable[T] {
	return &numericMemoTable[T]{
		tbl:     newHashTable[T](uint64(num)),
		nullIdx: KeyNotFound,
		traits:  traits,
	}
}

// NewInt8MemoTable returns a new memo table for int8 values initialized
// with the given capacity, as do the remaining constructors for their
// respective types.
func NewInt8MemoTable(num int64) NumericMemoTable {
	return newNumericMemoTable[int8](num, arrow.Int8Traits)
}

func NewUint8MemoTable(num int64) NumericMemoTable {
	return newNumericMemoTable[uint8](num, arrow.Uint8Traits)
}

func NewInt16MemoTable(num int64) NumericMemoTable {
	return newNumericMemoTable[int16](num, arrow.Int16Traits)
}

func NewUint16MemoTable(num int64) NumericMemoTable {
	return newNumericMemoTable[uint16](num, arrow.Uint16Traits)
}

func NewInt32MemoTable(num int64) NumericMemoTable {
	return newNumericMemoTable[int32](num, arrow.Int32Traits)
}

func NewUint32MemoTable(num int64) NumericMemoTable {
	return newNumericMemoTable[uint32](num, arrow.Uint32Traits)
}

func NewInt64MemoTable(num int64) NumericMemoTable {
	return newNumericMemoTable[int64](num, arrow.Int64Traits)
}

func NewUint64MemoTable(num int64) NumericMemoTable {
	return newNumericMemoTable[uint64](num, arrow.Uint64Traits)
}

func NewFloat32MemoTable(num int64) NumericMemoTable {
	return newNumericMemoTable[float32](num, arrow.Float32Traits)
}

func NewFloat64MemoTable(num int64) NumericMemoTable {
	return newNumericMemoTable[float64](num, arrow.Float64Traits)
}

func (s *numericMemoTable[T]) TypeTraits() TypeTraits { return s.traits }

// Reset drops everything in the table allowing it to be reused.
func (s *numericMemoTable[T]) Reset() {
	s.tbl.reset(32)
	s.nullIdx = KeyNotFound
}

// Size returns the current number of unique values stored in the table,
// including the null value if one has been inserted.
func (s *numericMemoTable[T]) Size() int {
	sz := int(s.tbl.size)
	if _, ok := s.GetNull(); ok {
		sz++
	}
	return sz
}

// GetNull returns the index of a null that has been inserted into the
// table, or KeyNotFound with false if one hasn't been.
func (s *numericMemoTable[T]) GetNull() (int, bool) {
	return int(s.nullIdx), s.nullIdx != KeyNotFound
}

// GetOrInsertNull returns the index of the null value in the table,
// inserting one if it hasn't already been inserted, with found reporting
// whether it already existed.
func (s *numericMemoTable[T]) GetOrInsertNull() (idx int, found bool) {
	idx, found = s.GetNull()
	if !found {
		idx = s.Size()
		s.nullIdx = int32(idx)
	}
	return
}

// Get returns the index of the table where the requested value resides
// and a bool indicating whether it was found.
func (s *numericMemoTable[T]) Get(val interface{}) (int, bool) {
	v := val.(T)
	cmp := func(other T) bool { return other == v }
	if isNaN(v) {
		cmp = isNaN[T]
		v = T(math.NaN())
	}

	if idx, found := s.tbl.lookup(hashValue(v, 0), s.tbl.capMask, cmp); found {
		return int(s.tbl.entries[idx].memoIdx), true
	}
	return KeyNotFound, false
}

// GetOrInsert returns the index of the table where val resides, inserting
// it if it wasn't already in the table. val must be of the correct type
// for the table.
func (s *numericMemoTable[T]) GetOrInsert(val interface{}) (idx int, found bool, err error) {
	v := val.(T)
	cmp := func(other T) bool { return other == v }
	if isNaN(v) {
		cmp = isNaN[T]
		// use a canonical bit pattern so all NaNs collapse to one entry
		v = T(math.NaN())
	}

	h := hashValue(v, 0)
	eIdx, found := s.tbl.lookup(h, s.tbl.capMask, cmp)
	if found {
		idx = int(s.tbl.entries[eIdx].memoIdx)
		return
	}

	idx = s.Size()
	s.tbl.insert(eIdx, h, v, int32(idx))
	return
}

// CopyValues populates out, which must be a []T, with the values of the
// table in the order they were inserted. A null entry keeps the zero value.
func (s *numericMemoTable[T]) CopyValues(out interface{}) {
	s.CopyValuesSubset(0, out)
}

// CopyValuesSubset is like CopyValues but only copies the values starting
// with the index start.
func (s *numericMemoTable[T]) CopyValuesSubset(start int, out interface{}) {
	outSlice := out.([]T)
	s.tbl.visitEntries(func(e *entry[T]) {
		idx := int(e.memoIdx) - start
		if idx >= 0 {
			outSlice[idx] = e.val
		}
	})
}

// WriteOut serializes the values of the table to out in native endianness.
func (s *numericMemoTable[T]) WriteOut(out []byte) {
	s.WriteOutSubset(0, out)
}

// WriteOutSubset is like WriteOut but only serializes the values starting
// with the index start.
func (s *numericMemoTable[T]) WriteOutSubset(start int, out []byte) {
	s.CopyValuesSubset(start, arrow.GetData[T](out))
}

// WriteOutLE serializes the values of the table to out in little endian
// byte order regardless of the host endianness.
func (s *numericMemoTable[T]) WriteOutLE(out []byte) {
	s.WriteOutSubsetLE(0, out)
}

// WriteOutSubsetLE is like WriteOutLE but only serializes the values
// starting with the index start.
func (s *numericMemoTable[T]) WriteOutSubsetLE(start int, out []byte) {
	s.WriteOutSubset(start, out)
	if endian.IsBigEndian {
		byteSwapInPlace(out, int(unsafe.Sizeof(*new(T))))
	}
}

func byteSwapInPlace(b []byte, elemSize int) {
	if elemSize <= 1 {
		return
	}
	for i := 0; i+elemSize <= len(b); i += elemSize {
		for j, k := i, i+elemSize-1; j < k; j, k = j+1, k-1 {
			b[j], b[k] = b[k], b[j]
		}
	}
}
