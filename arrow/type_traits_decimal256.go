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

package arrow

import (
	"encoding/binary"
	"reflect"
	"unsafe"

	"github.com/wsf1990/arrow/arrow/decimal256"
)

// Decimal256 traits
var Decimal256Traits decimal256Traits

const (
	// Decimal256SizeBytes specifies the number of bytes required to store a single decimal256 in memory
	Decimal256SizeBytes = int(unsafe.Sizeof(decimal256.Num{}))
)

type decimal256Traits struct{}

// BytesRequired returns the number of bytes required to store n elements in memory.
func (decimal256Traits) BytesRequired(n int) int { return Decimal256SizeBytes * n }

// PutValue
func (decimal256Traits) PutValue(b []byte, v decimal256.Num) {
	for i, a := range v.Array() {
		binary.LittleEndian.PutUint64(b[8*i:], a)
	}
}

// CastFromBytes reinterprets the slice b to a slice of type decimal256.Num.
//
// NOTE: len(b) must be a multiple of Decimal256SizeBytes.
func (decimal256Traits) CastFromBytes(b []byte) []decimal256.Num {
	h := (*reflect.SliceHeader)(unsafe.Pointer(&b))

	var res []decimal256.Num
	s := (*reflect.SliceHeader)(unsafe.Pointer(&res))
	s.Data = h.Data
	s.Len = h.Len / Decimal256SizeBytes
	s.Cap = h.Cap / Decimal256SizeBytes

	return res
}

// CastToBytes reinterprets the slice b to a slice of bytes.
func (decimal256Traits) CastToBytes(b []decimal256.Num) []byte {
	h := (*reflect.SliceHeader)(unsafe.Pointer(&b))

	var res []byte
	s := (*reflect.SliceHeader)(unsafe.Pointer(&res))
	s.Data = h.Data
	s.Len = h.Len * Decimal256SizeBytes
	s.Cap = h.Cap * Decimal256SizeBytes

	return res
}

// Copy copies src to dst.
func (decimal256Traits) Copy(dst, src []decimal256.Num) { copy(dst, src) }
