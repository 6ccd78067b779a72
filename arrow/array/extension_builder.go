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

package array

import (
	"github.com/wsf1990/arrow/arrow"
	"github.com/wsf1990/arrow/arrow/memory"
)

// ExtensionBuilderWrapper is an interface that you need to implement in your custom
// extension type if you want to provide a customized builder to be used with your
// extension type. The wrapper is given the storage builder so the custom builder
// can reuse it.
type ExtensionBuilderWrapper interface {
	NewBuilder(bldr *ExtensionBuilder) Builder
}

// CustomExtensionBuilder is the interface an extension type may implement to
// construct its builder entirely itself instead of wrapping the storage builder.
type CustomExtensionBuilder interface {
	NewBuilder(mem memory.Allocator) Builder
}

// ExtensionBuilder incorporates a Builder for the storage type of the
// extension, calls are delegated to it and the resulting array is wrapped
// with the extension type.
type ExtensionBuilder struct {
	Builder
	dt arrow.ExtensionType
}

// NewExtensionBuilder returns a builder using the provided memory allocator for the desired
// extension type. It will internally construct a builder of the storage type for the
// extension type and keep a copy of the extension type. The underlying type builder can then
// be retrieved by calling `StorageBuilder` on this and then type asserting it to the desired
// builder type.
//
// After using the storage builder, calling NewArray or NewExtensionArray will construct
// the appropriate extension array type and set the storage correctly, resetting the builder for
// reuse.
//
// # Example
//
// Simple example assuming an extension type of a UUID defined as a FixedSizeBinary(16) was registered
// using the type name "uuid":
//
//	uuidType := arrow.GetExtensionType("uuid")
//	bldr := array.NewExtensionBuilder(memory.DefaultAllocator, uuidType)
//	defer bldr.Release()
//	uuidBldr := bldr.StorageBuilder().(*array.FixedSizeBinaryBuilder)
//	... build with the fixed size binary builder ...
//	uuidArr := bldr.NewExtensionArray()
//	defer uuidArr.Release()
func NewExtensionBuilder(mem memory.Allocator, dt arrow.ExtensionType) *ExtensionBuilder {
	return &ExtensionBuilder{Builder: NewBuilder(mem, dt.StorageType()), dt: dt}
}

func (b *ExtensionBuilder) Type() arrow.DataType { return b.dt }

// StorageBuilder returns the builder for the underlying storage type.
func (b *ExtensionBuilder) StorageBuilder() Builder { return b.Builder }

// NewArray creates a new array from the memory buffers used by the builder
// and resets the builder so it can be used to build a new array.
func (b *ExtensionBuilder) NewArray() arrow.Array {
	return b.NewExtensionArray()
}

// NewExtensionArray creates an Extension array from the memory buffers used by
// the builder and resets the ExtensionBuilder so it can be used to build a new
// ExtensionArray of the same type.
func (b *ExtensionBuilder) NewExtensionArray() ExtensionArray {
	storage := b.Builder.NewArray()
	defer storage.Release()

	data := storage.Data().(*Data)
	data.dtype = b.dt
	return NewExtensionData(data)
}

var _ Builder = (*ExtensionBuilder)(nil)
