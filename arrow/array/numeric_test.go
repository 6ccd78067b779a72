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

package array_test

import (
	"testing"

	"github.com/wsf1990/arrow/arrow"
	"github.com/wsf1990/arrow/arrow/array"
	"github.com/wsf1990/arrow/arrow/memory"
	"github.com/stretchr/testify/assert"
)

func TestNewFloat64Data(t *testing.T) {
	exp := []float64{1.0, 2.0, 4.0, 8.0, 16.0}

	ad := array.NewData(
		arrow.PrimitiveTypes.Float64, len(exp),
		[]*memory.Buffer{nil, memory.NewBufferBytes(arrow.Float64Traits.CastToBytes(exp))},
		nil, 0, 0,
	)
	fa := array.NewFloat64Data(ad)

	assert.Equal(t, len(exp), fa.Len(), "unexpected Len()")
	assert.Equal(t, exp, fa.Float64Values(), "unexpected Float64Values()")
}

func TestFloat64SliceData(t *testing.T) {
	const (
		beg = 2
		end = 4
	)

	var (
		vs  = []float64{1, 2, 3, 4, 5}
		sub = vs[beg:end]
	)

	b := array.NewFloat64Builder(memory.NewGoAllocator())
	defer b.Release()

	for _, v := range vs {
		b.Append(v)
	}

	arr := b.NewFloat64Array()
	defer arr.Release()

	assert.Equal(t, len(vs), arr.Len(), "unexpected Len()")
	assert.Equal(t, vs, arr.Float64Values(), "unexpected Float64Values()")

	slice := array.NewSlice(arr, beg, end).(*array.Float64)
	defer slice.Release()

	assert.Equal(t, end-beg, slice.Len(), "unexpected Len()")
	assert.Equal(t, sub, slice.Float64Values(), "unexpected Float64Values()")
}

func TestFloat64ValueStr(t *testing.T) {
	b := array.NewFloat64Builder(memory.NewGoAllocator())
	defer b.Release()

	b.AppendValues([]float64{1, 2, -3.5}, []bool{true, false, true})

	arr := b.NewFloat64Array()
	defer arr.Release()

	assert.Equal(t, "1", arr.ValueStr(0))
	assert.Equal(t, array.NullValueStr, arr.ValueStr(1))
	assert.Equal(t, "-3.5", arr.ValueStr(2))
}
