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

package decimal128 // import "github.com/wsf1990/arrow/arrow/decimal128"

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
)

var (
	MaxDecimal128 = New(542101086242752217, 687399551400673280-1)

	pt5 = big.NewFloat(0.5)
)

// Num represents a signed 128-bit integer in two's complement.
// Calculations wrap around and overflow is ignored.
//
// For a discussion of the algorithms, look at Knuth's volume 2,
// Semi-numerical Algorithms section 4.3.1.
//
// Adapted from the Apache ORC C++ implementation
type Num struct {
	lo uint64 // low bits
	hi int64  // high bits
}

// New returns a new signed 128-bit integer value.
func New(hi int64, lo uint64) Num {
	return Num{lo: lo, hi: hi}
}

// FromU64 returns a new signed 128-bit integer value from the provided uint64 one.
func FromU64(v uint64) Num {
	return New(0, v)
}

// FromI64 returns a new signed 128-bit integer value from the provided int64 one.
func FromI64(v int64) Num {
	switch {
	case v > 0:
		return New(0, uint64(v))
	case v < 0:
		return New(-1, uint64(v))
	default:
		return Num{}
	}
}

func fromBigIntPositive(v *big.Int) Num {
	var buf [16]byte
	v.FillBytes(buf[:])
	return Num{
		lo: binary.BigEndian.Uint64(buf[8:]),
		hi: int64(binary.BigEndian.Uint64(buf[:8])),
	}
}

func FromBigInt(v *big.Int) Num {
	if v.Sign() < 0 {
		n := fromBigIntPositive((&big.Int{}).Abs(v))
		n.lo = ^n.lo + 1
		n.hi = ^n.hi
		if n.lo == 0 {
			n.hi += 1
		}
		return n
	}
	return fromBigIntPositive(v)
}

// LowBits returns the low bits of the two's complement representation of the number.
func (n Num) LowBits() uint64 { return n.lo }

// HighBits returns the high bits of the two's complement representation of the number.
func (n Num) HighBits() int64 { return n.hi }

// Sign returns:
//
// -1 if x <  0
//  0 if x == 0
// +1 if x >  0
func (n Num) Sign() int {
	if n == (Num{}) {
		return 0
	}
	return int(1 | (n.hi >> 63))
}

func toBigInt(n Num) *big.Int {
	hi := big.NewInt(n.hi)
	return hi.Lsh(hi, 64).Add(hi, (&big.Int{}).SetUint64(n.lo))
}

func (n Num) BigInt() *big.Int {
	if n.Sign() < 0 {
		n.lo = ^n.lo + 1
		n.hi = ^n.hi
		if n.lo == 0 {
			n.hi += 1
		}
		ret := toBigInt(n)
		return ret.Neg(ret)
	}
	return toBigInt(n)
}

func scaleMultiplier(pow int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(pow)), nil)
}

// FitsInPrecision returns true or false if the value currently held by
// n would fit within precision (0 < prec <= 38) without losing any data.
func (n Num) FitsInPrecision(prec int32) bool {
	return n.BigInt().CmpAbs(scaleMultiplier(int(prec))) < 0
}

// FromString converts a string representation of a number to the
// two's complement representation with the desired precision and scale,
// erroring if the value cannot be represented exactly.
func FromString(v string, prec, scale int32) (n Num, err error) {
	var out *big.Float
	out, _, err = big.ParseFloat(v, 10, 128, big.ToNearestEven)
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
	v.SetPrec(128).Mul(v, (&big.Float{}).SetInt(scaleMultiplier(int(scale))))
	// Since we're going to truncate this to get an integer, we need to round
	// the value instead because of edge cases so that we match how other
	// implementations (e.g. C++) handle Decimal values. So if we're negative
	// we'll subtract 0.5 and if we're positive we'll add 0.5.
	if v.Signbit() {
		v.Sub(v, pt5)
	} else {
		v.Add(v, pt5)
	}

	var tmp big.Int
	val, _ := v.Int(&tmp)
	if val.BitLen() > 127 {
		return Num{}, fmt.Errorf("bitlen too large for decimal128")
	}

	n = FromBigInt(val)
	if !n.FitsInPrecision(prec) {
		err = fmt.Errorf("value %v doesn't fit in precision %d", val, prec)
	}
	return
}

// ToFloat64 returns a float64 value representative of this decimal128.Num,
// but with the given scale.
func (n Num) ToFloat64(scale int32) float64 {
	f := (&big.Float{}).SetInt(n.BigInt())
	if scale < 0 {
		f.SetPrec(128).Mul(f, (&big.Float{}).SetInt(scaleMultiplier(int(-scale))))
	} else {
		f.SetPrec(128).Quo(f, (&big.Float{}).SetInt(scaleMultiplier(int(scale))))
	}
	v, _ := f.Float64()
	return v
}

// ToBigFloat returns a big.Float value representative of this decimal128.Num,
// but with the given scale.
func (n Num) ToBigFloat(scale int32) *big.Float {
	f := (&big.Float{}).SetInt(n.BigInt())
	if scale < 0 {
		f.SetPrec(128).Mul(f, (&big.Float{}).SetInt(scaleMultiplier(int(-scale))))
	} else {
		f.SetPrec(128).Quo(f, (&big.Float{}).SetInt(scaleMultiplier(int(scale))))
	}
	return f
}
