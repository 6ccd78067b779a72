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

package types

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/wsf1990/arrow/arrow"
	"github.com/wsf1990/arrow/arrow/array"
	"github.com/wsf1990/arrow/internal/json"
)

// Bool8Type represents a logical boolean backed by a single byte per value,
// making the values addressable and usable without bit manipulation, in
// exchange for 8x the memory of the bitmap-based Boolean type.
type Bool8Type struct {
	arrow.ExtensionBase
}

// NewBool8Type creates a new Bool8Type with an int8 storage type.
func NewBool8Type() *Bool8Type {
	return &Bool8Type{ExtensionBase: arrow.ExtensionBase{Storage: arrow.PrimitiveTypes.Int8}}
}

func (*Bool8Type) ArrayType() reflect.Type { return reflect.TypeOf(Bool8Array{}) }

func (*Bool8Type) ExtensionName() string { return "arrow.bool8" }

func (e *Bool8Type) String() string { return fmt.Sprintf("extension<%s>", e.ExtensionName()) }

func (e *Bool8Type) ExtensionEquals(other arrow.ExtensionType) bool {
	return e.ExtensionName() == other.ExtensionName()
}

func (*Bool8Type) Serialize() string { return "" }

func (*Bool8Type) Deserialize(storageType arrow.DataType, _ string) (arrow.ExtensionType, error) {
	if !arrow.TypeEqual(storageType, arrow.PrimitiveTypes.Int8) {
		return nil, fmt.Errorf("invalid storage type for Bool8Type: %s", storageType)
	}
	return NewBool8Type(), nil
}

func (*Bool8Type) NewBuilder(bldr *array.ExtensionBuilder) array.Builder {
	return NewBool8Builder(bldr)
}

// Bool8Array is the logical array type for Bool8Type, wrapping an Int8
// storage array and interpreting nonzero values as true.
type Bool8Array struct {
	array.ExtensionArrayBase
}

func (a *Bool8Array) String() string {
	o := new(strings.Builder)
	o.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			o.WriteString(" ")
		}
		o.WriteString(a.ValueStr(i))
	}
	o.WriteString("]")
	return o.String()
}

func (a *Bool8Array) Value(i int) bool {
	return a.Storage().(*array.Int8).Value(i) != 0
}

func (a *Bool8Array) ValueStr(i int) string {
	switch {
	case a.IsNull(i):
		return array.NullValueStr
	default:
		return strconv.FormatBool(a.Value(i))
	}
}

func (a *Bool8Array) MarshalJSON() ([]byte, error) {
	vals := make([]interface{}, a.Len())
	for i := 0; i < a.Len(); i++ {
		vals[i] = a.GetOneForMarshal(i)
	}
	return json.Marshal(vals)
}

func (a *Bool8Array) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

func boolToInt8(v bool) int8 {
	if v {
		return 1
	}
	return 0
}

// Bool8Builder builds a Bool8Array by appending bool values to the
// underlying Int8 storage builder.
type Bool8Builder struct {
	*array.ExtensionBuilder
}

func NewBool8Builder(builder *array.ExtensionBuilder) *Bool8Builder {
	return &Bool8Builder{ExtensionBuilder: builder}
}

func (b *Bool8Builder) Append(v bool) {
	b.ExtensionBuilder.Builder.(*array.Int8Builder).Append(boolToInt8(v))
}

func (b *Bool8Builder) UnsafeAppend(v bool) {
	b.ExtensionBuilder.Builder.(*array.Int8Builder).UnsafeAppend(boolToInt8(v))
}

func (b *Bool8Builder) AppendValueFromString(s string) error {
	if s == array.NullValueStr {
		b.AppendNull()
		return nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	b.Append(v)
	return nil
}

func (b *Bool8Builder) AppendValues(values []bool, valid []bool) {
	ints := make([]int8, len(values))
	for i, v := range values {
		ints[i] = boolToInt8(v)
	}
	b.ExtensionBuilder.Builder.(*array.Int8Builder).AppendValues(ints, valid)
}

func (b *Bool8Builder) UnmarshalOne(dec *json.Decoder) error {
	t, err := dec.Token()
	if err != nil {
		return err
	}

	switch v := t.(type) {
	case bool:
		b.Append(v)
	case string:
		return b.AppendValueFromString(v)
	case nil:
		b.AppendNull()
	default:
		return &json.UnmarshalTypeError{
			Value:  fmt.Sprint(t),
			Type:   reflect.TypeOf(true),
			Offset: dec.InputOffset(),
		}
	}
	return nil
}

func (b *Bool8Builder) Unmarshal(dec *json.Decoder) error {
	for dec.More() {
		if err := b.UnmarshalOne(dec); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bool8Builder) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	t, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := t.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("bool8 builder must unpack from json array, found %s", delim)
	}

	return b.Unmarshal(dec)
}

var (
	_ arrow.ExtensionType           = (*Bool8Type)(nil)
	_ array.ExtensionArray          = (*Bool8Array)(nil)
	_ array.ExtensionBuilderWrapper = (*Bool8Type)(nil)
)
