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
	"testing"
)

func TestTypeEqual(t *testing.T) {
	tests := []struct {
		left, right   DataType
		want          bool
		checkMetadata bool
	}{
		{
			nil, nil, true, false,
		},
		{
			nil, PrimitiveTypes.Uint8, false, false,
		},
		{
			PrimitiveTypes.Float32, nil, false, false,
		},
		{
			PrimitiveTypes.Float64, PrimitiveTypes.Int32, false, false,
		},
		{
			Null, Null, true, false,
		},
		{
			&NullType{}, &NullType{}, true, false,
		},
		{
			BinaryTypes.Binary, BinaryTypes.String, false, false,
		},
		{
			&FixedSizeBinaryType{ByteWidth: 16}, &FixedSizeBinaryType{ByteWidth: 16}, true, false,
		},
		{
			&FixedSizeBinaryType{ByteWidth: 16}, &FixedSizeBinaryType{ByteWidth: 32}, false, false,
		},
		{
			&Decimal128Type{Precision: 19, Scale: 10}, &Decimal128Type{Precision: 19, Scale: 10}, true, false,
		},
		{
			&Decimal128Type{Precision: 19, Scale: 10}, &Decimal128Type{Precision: 19, Scale: 5}, false, false,
		},
		{
			&Time32Type{Unit: Second}, &Time32Type{Unit: Second}, true, false,
		},
		{
			&Time32Type{Unit: Millisecond}, &Time32Type{Unit: Second}, false, false,
		},
		{
			&Time64Type{Unit: Nanosecond}, &Time64Type{Unit: Nanosecond}, true, false,
		},
		{
			&Time64Type{Unit: Nanosecond}, &Time64Type{Unit: Microsecond}, false, false,
		},
		{
			&TimestampType{Unit: Second, TimeZone: "UTC"}, &TimestampType{Unit: Second, TimeZone: "UTC"}, true, false,
		},
		{
			&TimestampType{Unit: Microsecond, TimeZone: "UTC"}, &TimestampType{Unit: Millisecond, TimeZone: "UTC"}, false, false,
		},
		{
			&TimestampType{Unit: Second, TimeZone: "UTC"}, &TimestampType{Unit: Second, TimeZone: "CET"}, false, false,
		},
		{
			&TimestampType{Unit: Second, TimeZone: "UTC"}, &TimestampType{Unit: Nanosecond, TimeZone: "CET"}, false, false,
		},
		{
			ListOf(PrimitiveTypes.Uint64), ListOf(PrimitiveTypes.Uint64), true, false,
		},
		{
			ListOf(PrimitiveTypes.Uint64), ListOf(PrimitiveTypes.Uint32), false, false,
		},
		{
			ListOf(&Time32Type{Unit: Millisecond}), ListOf(&Time32Type{Unit: Millisecond}), true, false,
		},
		{
			ListOf(&Time32Type{Unit: Millisecond}), ListOf(&Time32Type{Unit: Second}), false, false,
		},
		{
			ListOf(ListOf(PrimitiveTypes.Uint16)), ListOf(ListOf(PrimitiveTypes.Uint16)), true, false,
		},
		{
			ListOf(ListOf(PrimitiveTypes.Uint16)), ListOf(ListOf(PrimitiveTypes.Uint8)), false, false,
		},
		{
			ListOf(ListOf(ListOf(PrimitiveTypes.Uint16))), ListOf(ListOf(PrimitiveTypes.Uint8)), false, false,
		},
		{
			ListOf(PrimitiveTypes.Uint64), ListOfNonNullable(PrimitiveTypes.Uint64), false, false,
		},
		{
			ListOfField(Field{Name: "item", Type: PrimitiveTypes.Int32, Nullable: true, Metadata: MetadataFrom(map[string]string{"k": "v1"})}),
			ListOfField(Field{Name: "item", Type: PrimitiveTypes.Int32, Nullable: true, Metadata: MetadataFrom(map[string]string{"k": "v2"})}),
			true, false,
		},
		{
			ListOfField(Field{Name: "item", Type: PrimitiveTypes.Int32, Nullable: true, Metadata: MetadataFrom(map[string]string{"k": "v1"})}),
			ListOfField(Field{Name: "item", Type: PrimitiveTypes.Int32, Nullable: true, Metadata: MetadataFrom(map[string]string{"k": "v2"})}),
			false, true,
		},
		{
			FixedSizeListOf(2, PrimitiveTypes.Uint64), FixedSizeListOf(2, PrimitiveTypes.Uint64), true, false,
		},
		{
			FixedSizeListOf(2, PrimitiveTypes.Uint64), FixedSizeListOf(3, PrimitiveTypes.Uint64), false, false,
		},
		{
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true},
			),
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true},
			),
			false, false,
		},
		{
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: false},
			),
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true},
			),
			false, false,
		},
		{
			StructOf(
				Field{Name: "f0", Type: PrimitiveTypes.Uint32, Nullable: true},
			),
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true},
			),
			false, false,
		},
		{
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true},
			),
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true},
				Field{Name: "f2", Type: PrimitiveTypes.Uint32, Nullable: true},
			),
			false, false,
		},
		{
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true},
				Field{Name: "f2", Type: PrimitiveTypes.Float32, Nullable: false},
			),
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true},
				Field{Name: "f2", Type: PrimitiveTypes.Float32, Nullable: false},
			),
			true, false,
		},
		{
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true},
				Field{Name: "f2", Type: PrimitiveTypes.Float32, Nullable: false},
			),
			StructOf(
				Field{Name: "f2", Type: PrimitiveTypes.Float32, Nullable: false},
				Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true},
			),
			false, false,
		},
		{
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true},
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true},
			),
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint16, Nullable: true},
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true},
			),
			true, false,
		},
		{
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true, Metadata: MetadataFrom(map[string]string{"k1": "v1"})},
			),
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true, Metadata: MetadataFrom(map[string]string{"k1": "v2"})},
			),
			true, false,
		},
		{
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true, Metadata: MetadataFrom(map[string]string{"k1": "v1"})},
			),
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true, Metadata: MetadataFrom(map[string]string{"k1": "v2"})},
			),
			false, true,
		},
		{
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true, Metadata: MetadataFrom(map[string]string{"k1": "v1"})},
			),
			StructOf(
				Field{Name: "f1", Type: PrimitiveTypes.Uint32, Nullable: true, Metadata: MetadataFrom(map[string]string{"k1": "v1"})},
			),
			true, true,
		},
		{
			MapOf(BinaryTypes.String, PrimitiveTypes.Int32), MapOf(BinaryTypes.String, PrimitiveTypes.Int32), true, false,
		},
		{
			MapOf(BinaryTypes.String, PrimitiveTypes.Int32), MapOf(BinaryTypes.String, PrimitiveTypes.Int64), false, false,
		},
		{
			MapOf(BinaryTypes.String, PrimitiveTypes.Int32),
			&MapType{value: ListOf(StructOf(
				Field{Name: "key", Type: BinaryTypes.String},
				Field{Name: "value", Type: PrimitiveTypes.Int32, Nullable: true},
			)), KeysSorted: true},
			false, false,
		},
		{
			SparseUnionOf([]Field{{Name: "u0", Type: PrimitiveTypes.Int32, Nullable: true}}, []UnionTypeCode{0}),
			SparseUnionOf([]Field{{Name: "u0", Type: PrimitiveTypes.Int32, Nullable: true}}, []UnionTypeCode{0}),
			true, false,
		},
		{
			SparseUnionOf([]Field{{Name: "u0", Type: PrimitiveTypes.Int32, Nullable: true}}, []UnionTypeCode{0}),
			DenseUnionOf([]Field{{Name: "u0", Type: PrimitiveTypes.Int32, Nullable: true}}, []UnionTypeCode{0}),
			false, false,
		},
		{
			DenseUnionOf([]Field{{Name: "u0", Type: PrimitiveTypes.Int32, Nullable: true}}, []UnionTypeCode{0}),
			DenseUnionOf([]Field{{Name: "u0", Type: PrimitiveTypes.Int32, Nullable: true}}, []UnionTypeCode{5}),
			false, false,
		},
		{
			DenseUnionOf([]Field{{Name: "u0", Type: PrimitiveTypes.Int32, Nullable: true}}, []UnionTypeCode{5}),
			DenseUnionOf([]Field{{Name: "u1", Type: PrimitiveTypes.Int32, Nullable: true}}, []UnionTypeCode{5}),
			false, false,
		},
		{
			&DictionaryType{IndexType: PrimitiveTypes.Int16, ValueType: BinaryTypes.String},
			&DictionaryType{IndexType: PrimitiveTypes.Int16, ValueType: BinaryTypes.String},
			true, false,
		},
		{
			&DictionaryType{IndexType: PrimitiveTypes.Int16, ValueType: BinaryTypes.String},
			&DictionaryType{IndexType: PrimitiveTypes.Int32, ValueType: BinaryTypes.String},
			false, false,
		},
		{
			&DictionaryType{IndexType: PrimitiveTypes.Int16, ValueType: BinaryTypes.String},
			&DictionaryType{IndexType: PrimitiveTypes.Int16, ValueType: BinaryTypes.String, Ordered: true},
			false, false,
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			var opts []TypeEqualOption
			if test.checkMetadata {
				opts = append(opts, CheckMetadata())
			}

			got := TypeEqual(test.left, test.right, opts...)
			if got != test.want {
				t.Fatalf("TypeEqual(%v, %v, checkMetadata=%v): got=%v, want=%v",
					test.left, test.right, test.checkMetadata, got, test.want)
			}
		})
	}
}
