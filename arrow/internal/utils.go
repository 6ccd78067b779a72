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

package internal

import (
	"github.com/wsf1990/arrow/arrow"
	"github.com/wsf1990/arrow/arrow/internal/flatbuf"
)

// DefaultHasValidityBitmap is a convenience function equivalent to
// calling HasValidityBitmap with the latest metadata version.
func DefaultHasValidityBitmap(id arrow.Type) bool {
	return HasValidityBitmap(id, flatbuf.MetadataVersionV5)
}

// HasValidityBitmap returns whether the given type has a validity bitmap
// in a given version of the format.
//
// Typically this is the case for most types except for null and union types.
func HasValidityBitmap(id arrow.Type, version flatbuf.MetadataVersion) bool {
	// in <=V4 Null types had no validity bitmap
	// in >=V5 Null and Union types have no validity bitmap
	if version < flatbuf.MetadataVersionV5 {
		return id != arrow.NULL
	}

	switch id {
	case arrow.NULL, arrow.DENSE_UNION, arrow.SPARSE_UNION:
		return false
	}
	return true
}
