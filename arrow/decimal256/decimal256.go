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

package decimal256 // import "github.com/wsf1990/arrow/arrow/decimal256"

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"

	"github.com/wsf1990/arrow/arrow/decimal128"
)

// Num represents a signed 256-bit integer in two's complement.
// Calculations wrap around and overflow is ignored.
type Num struct {
	// arr is the words of the value in little-endian order, each word
	// being in native endianness.
	arr [4]uint64
}

// New returns a new signed 256-bit integer value where x1 contains
// the highest bits with the rest of the values in order down to the
// lowest bits.
//
//	ie: New(1, 2, 3, 4) returns with the elements in little-endian order
//	    {4, 3, 2, 1} but each value is still represented as the native endianness
func New(x1, x2, x3, x4 uint64) Num {
	return Num{[4]uint64{x4, x3, x2, x1}}
}

func (n Num) Array() [4]uint64 { return n.arr }

func (n Num) LowBits() uint64 { return n.arr[0] }

// FromU64 returns a new signed 256-bit integer value from the provided uint64 one.
func FromU64(v uint64) Num {
	return Num{[4]uint64{v, 0, 0, 0}}
}

// FromI64 returns a new signed 256-bit integer value from the provided int64 one.
func FromI64(v int64) Num {
	switch {
	case v < 0:
		return Num{[4]uint64{uint64(v), ^uint64(0), ^uint64(0), ^uint64(0)}}
	default:
		return Num{[4]uint64{uint64(v), 0, 0, 0}}
	}
}

// FromDecimal128 widens the provided 128-bit value to 256 bits,
// preserving the sign.
func FromDecimal128(n decimal128.Num) Num {
	var topBits uint64
	if n.Sign() < 0 {
		topBits = ^uint64(0)
	}
	return New(topBits, topBits, uint64(n.HighBits()), n.LowBits())
}

func (n Num) negated() Num {
	var carry uint64 = 1
	for i := range n.arr {
		n.arr[i] = ^n.arr[i] + carry
		if n.arr[i] != 0 {
			carry = 0
		}
	}
	return n
}

// Sign returns:
//
// -1 if x <  0
//  0 if x == 0
// +1 if x >  0
func (n Num) Sign() int {
	if n == (Num{}) {
		return 0
	}
	return int(1 | (int64(n.arr[3]) >> 63))
}

func toBigIntPositive(n Num) *big.Int {
	var buf [32]byte
	for i, a := range n.arr {
		binary.BigEndian.PutUint64(buf[8*(3-i):], a)
	}
	return new(big.Int).SetBytes(buf[:])
}

func (n Num) BigInt() *big.Int {
	if n.Sign() < 0 {
		ret := toBigIntPositive(n.negated())
		return ret.Neg(ret)
	}
	return toBigIntPositive(n)
}

func fromBigIntPositive(v *big.Int) Num {
	var buf [32]byte
	v.FillBytes(buf[:])

	var n Num
	for i := range n.arr {
		n.arr[i] = binary.BigEndian.Uint64(buf[8*(3-i):])
	}
	return n
}

func FromBigInt(v *big.Int) Num {
	if v.Sign() < 0 {
		return fromBigIntPositive(new(big.Int).Abs(v)).negated()
	}
	return fromBigIntPositive(v)
}

// FitsInPrecision returns true or false if the value currently held by
// n would fit within precision (0 < prec <= 76) without losing any data.
func (n Num) FitsInPrecision(prec int32) bool {
	mul := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(prec)), nil)
	return n.BigInt().CmpAbs(mul) < 0
}

var pt5 = big.NewFloat(0.5)

func scaleMultiplier(pow int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(pow)), nil)
}

// FromString converts a string representation of a number to the
// two's complement representation with the desired precision and scale,
// erroring if the value cannot be represented exactly.
func FromString(v string, prec, scale int32) (n Num, err error) {
	var out *big.Float
	out, _, err = big.ParseFloat(v, 10, 255, big.ToNearestEven)
	if err != nil {
		return
	}

	val, err := fromBigFloat(out, prec, scale)
	if err != nil {
		return Num{}, fmt.Errorf("invalid decimal value %s: %s", v, err)
	}
	return val, nil
}

// FromFloat32 returns a new Num constructed from the given float32 value
// using the provided precision and scale. Returns an error if the value
// cannot be accurately represented with the desired precision and scale.
func FromFloat32(v float32, prec, scale int32) (Num, error) {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return Num{}, fmt.Errorf("invalid value to convert to decimal: %f", v)
	}
	return fromBigFloat(big.NewFloat(float64(v)), prec, scale)
}

// FromFloat64 returns a new Num constructed from the given float64 value
// using the provided precision and scale. Returns an error if the value
// cannot be accurately represented with the desired precision and scale.
func FromFloat64(v float64, prec, scale int32) (Num, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Num{}, fmt.Errorf("invalid value to convert to decimal: %f", v)
	}
	return fromBigFloat(big.NewFloat(v), prec, scale)
}

func fromBigFloat(v *big.Float, prec, scale int32) (n Num, err error) {
	v.SetPrec(255).Mul(v, (&big.Float{}).SetInt(scaleMultiplier(int(scale))))
	// round rather than truncate so the edge cases line up with what
	// the other implementations produce
	if v.Signbit() {
		v.Sub(v, pt5)
	} else {
		v.Add(v, pt5)
	}

	var tmp big.Int
	val, _ := v.Int(&tmp)
	if val.BitLen() > 255 {
		return Num{}, fmt.Errorf("bitlen too large for decimal256")
	}

	n = FromBigInt(val)
	if !n.FitsInPrecision(prec) {
		err = fmt.Errorf("value %v doesn't fit in precision %d", val, prec)
	}
	return
}

// ToFloat64 returns a float64 value representative of this decimal256.Num,
// but with the given scale.
func (n Num) ToFloat64(scale int32) float64 {
	v, _ := n.ToBigFloat(scale).Float64()
	return v
}

// ToBigFloat returns a big.Float value representative of this decimal256.Num,
// but with the given scale.
func (n Num) ToBigFloat(scale int32) *big.Float {
	f := (&big.Float{}).SetInt(n.BigInt())
	if scale < 0 {
		f.SetPrec(255).Mul(f, (&big.Float{}).SetInt(scaleMultiplier(int(-scale))))
	} else {
		f.SetPrec(255).Quo(f, (&big.Float{}).SetInt(scaleMultiplier(int(scale))))
	}
	return f
}
