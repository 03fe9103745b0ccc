// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfive

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// A Radix classifies the literal form of a Number.
type Radix byte

const (
	Decimal Radix = iota // decimal, with optional fraction and exponent
	Hex                  // hexadecimal integer: 0x1F
	Octal                // octal integer: 0o17
	Binary               // binary integer: 0b101
	Special              // NaN or Infinity, optionally signed
)

var radixStr = [...]string{
	Decimal: "decimal",
	Hex:     "hexadecimal",
	Octal:   "octal",
	Binary:  "binary",
	Special: "special",
}

func (r Radix) String() string {
	if int(r) >= len(radixStr) {
		return "unknown radix"
	}
	return radixStr[r]
}

// bitsPerDigit returns the width of one digit of a power-of-two radix.
func (r Radix) bitsPerDigit() uint {
	switch r {
	case Hex:
		return 4
	case Octal:
		return 3
	case Binary:
		return 1
	}
	panic(fmt.Sprintf("jfive: radix %v has no bit width", r))
}

// maxExponent bounds the decimal exponent accepted by BigInt. Larger values
// would allocate integers of unreasonable size.
const maxExponent = 1 << 20

// ErrNotFinite is reported by conversions of NaN and infinite values to
// arbitrary-precision types.
var ErrNotFinite = errors.New("number is not finite")

type memo uint8

const (
	haveInt32 memo = 1 << iota
	haveInt64
	haveFloat32
	haveFloat64
	haveBigInt
	haveDecimal
)

// A Number is a numeric literal whose conversions are deferred. It keeps
// the literal text exactly as written, and computes each typed value from
// that text the first time it is requested. Converted values are cached.
//
// Integer conversions wrap around in two's complement, as Go's fixed-width
// integer arithmetic does. Fractions are truncated toward zero.
//
// A *Number is safe for concurrent use.
type Number struct {
	text  string
	radix Radix
	sign  byte // '+', '-', or 0 when unsigned
	zero  bool

	mu     sync.Mutex
	have   memo
	i32    int32
	i64    int64
	f32    float32
	f64    float64
	bigInt *big.Int
	bigErr error
	dec    decimal.Decimal
	decErr error
}

// newNumber constructs a Number for a literal already validated by a lexer.
func newNumber(text string, radix Radix) *Number {
	n := &Number{text: text, radix: radix}
	if text != "" && isSign(rune(text[0])) {
		n.sign = text[0]
	}
	n.zero = radix != Special && isZeroLiteral(n.body(), radix)
	return n
}

// IntNumber returns a Number with the value of v.
func IntNumber(v int64) *Number { return newNumber(strconv.FormatInt(v, 10), Decimal) }

// FloatNumber returns a Number with the value of f. NaN and infinities are
// represented by the literals NaN, Infinity and -Infinity.
func FloatNumber(f float64) *Number {
	switch {
	case math.IsNaN(f):
		return newNumber("NaN", Special)
	case math.IsInf(f, 1):
		return newNumber("Infinity", Special)
	case math.IsInf(f, -1):
		return newNumber("-Infinity", Special)
	}
	return newNumber(strconv.FormatFloat(f, 'g', -1, 64), Decimal)
}

// ParseNumber parses s as a single JSON5 numeric literal, surrounded by
// optional white space.
func ParseNumber(s string) (*Number, error) {
	r := NewReader(strings.NewReader(s), Permissive)
	n, err := r.ReadNumber()
	if err != nil {
		return nil, err
	}
	if _, err := r.Expect(End); err != nil {
		return nil, err
	}
	return n, nil
}

// body returns the literal text without its sign.
func (n *Number) body() string {
	if n.sign != 0 {
		return n.text[1:]
	}
	return n.text
}

func isZeroLiteral(s string, radix Radix) bool {
	if radix != Decimal {
		s = s[2:]
	} else if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(s, "0.") == ""
}

// Text returns the literal text of n, exactly as written.
func (n *Number) Text() string { return n.text }

// String returns the literal text of n.
func (n *Number) String() string { return n.text }

// Radix reports the literal form of n.
func (n *Number) Radix() Radix { return n.radix }

// IsNegative reports whether the literal has a leading minus sign.
func (n *Number) IsNegative() bool { return n.sign == '-' }

// IsZero reports whether n denotes zero, of either sign.
func (n *Number) IsZero() bool { return n.zero }

// IsInt reports whether n is written as an integer, that is, as a radix
// literal or as a decimal without fraction or exponent.
func (n *Number) IsInt() bool {
	switch n.radix {
	case Decimal:
		return !strings.ContainsAny(n.text, ".eE")
	case Special:
		return false
	}
	return true
}

// IsNaN reports whether n is NaN.
func (n *Number) IsNaN() bool { return n.radix == Special && n.body() == "NaN" }

// IsInf reports whether n is an infinity of either sign.
func (n *Number) IsInf() bool { return n.radix == Special && n.body() == "Infinity" }

// Int32 returns n converted to an int32. NaN converts to 0 and infinities
// to the largest or smallest int32.
func (n *Number) Int32() int32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.have&haveInt32 == 0 {
		switch {
		case n.IsNaN():
			n.i32 = 0
		case n.IsInf() && n.IsNegative():
			n.i32 = math.MinInt32
		case n.IsInf():
			n.i32 = math.MaxInt32
		default:
			n.i32 = int32(n.wrapped())
		}
		n.have |= haveInt32
	}
	return n.i32
}

// Int64 returns n converted to an int64. NaN converts to 0 and infinities
// to the largest or smallest int64.
func (n *Number) Int64() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.have&haveInt64 == 0 {
		switch {
		case n.IsNaN():
			n.i64 = 0
		case n.IsInf() && n.IsNegative():
			n.i64 = math.MinInt64
		case n.IsInf():
			n.i64 = math.MaxInt64
		default:
			n.i64 = int64(n.wrapped())
		}
		n.have |= haveInt64
	}
	return n.i64
}

// wrapped returns the integer part of a finite n modulo 2^64.
func (n *Number) wrapped() uint64 {
	var v uint64
	if n.radix == Decimal {
		digits, exp := n.decimalParts()
		if exp < 0 {
			keep := int64(len(digits)) + exp
			digits = digits[:max(keep, 0)]
			exp = 0
		}
		if exp >= 64 {
			return 0 // 10^64 is a multiple of 2^64
		}
		for _, c := range digits {
			v = v*10 + uint64(c-'0')
		}
		for range exp {
			v *= 10
		}
	} else {
		shift := n.radix.bitsPerDigit()
		for _, c := range n.body()[2:] {
			v = v<<shift | uint64(hexVal(c))
		}
	}
	if n.IsNegative() {
		v = -v
	}
	return v
}

// Float32 returns the float32 nearest to n.
func (n *Number) Float32() float32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.have&haveFloat32 == 0 {
		switch n.radix {
		case Special:
			n.f32 = float32(n.special())
		case Decimal:
			f, _ := strconv.ParseFloat(n.decimalText(), 32) // range errors give ±Inf or 0
			n.f32 = float32(f)
		default:
			n.f32, _ = new(big.Float).SetInt(n.radixInt()).Float32()
		}
		n.have |= haveFloat32
	}
	return n.f32
}

// Float64 returns the float64 nearest to n.
func (n *Number) Float64() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.have&haveFloat64 == 0 {
		switch n.radix {
		case Special:
			n.f64 = n.special()
		case Decimal:
			n.f64, _ = strconv.ParseFloat(n.decimalText(), 64)
		default:
			n.f64, _ = new(big.Float).SetInt(n.radixInt()).Float64()
		}
		n.have |= haveFloat64
	}
	return n.f64
}

func (n *Number) special() float64 {
	switch {
	case n.IsNaN():
		return math.NaN()
	case n.IsNegative():
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// BigInt returns the integer part of n. It reports ErrNotFinite for NaN and
// infinities, and an error if the exponent of n is too large to expand.
// The caller may modify the result.
func (n *Number) BigInt() (*big.Int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.have&haveBigInt == 0 {
		switch n.radix {
		case Special:
			n.bigErr = ErrNotFinite
		case Decimal:
			n.bigInt, n.bigErr = n.decimalInt()
		default:
			n.bigInt = n.radixInt()
		}
		n.have |= haveBigInt
	}
	if n.bigErr != nil {
		return nil, n.bigErr
	}
	return new(big.Int).Set(n.bigInt), nil
}

// radixInt returns the value of a radix literal.
func (n *Number) radixInt() *big.Int {
	v, ok := new(big.Int).SetString(n.body()[2:], n.radix.base())
	if !ok {
		panic(fmt.Sprintf("jfive: invalid %v literal %q", n.radix, n.text))
	}
	if n.IsNegative() {
		v.Neg(v)
	}
	return v
}

func (r Radix) base() int {
	switch r {
	case Hex:
		return 16
	case Octal:
		return 8
	case Binary:
		return 2
	}
	return 10
}

func (n *Number) decimalInt() (*big.Int, error) {
	digits, exp := n.decimalParts()
	if exp < 0 {
		keep := int64(len(digits)) + exp
		digits = digits[:max(keep, 0)]
		exp = 0
	} else if exp > maxExponent {
		return nil, fmt.Errorf("exponent of %q is too large", n.text)
	}
	v := new(big.Int)
	if digits == "" {
		return v, nil
	}
	v.SetString(digits, 10)
	if exp > 0 {
		v.Mul(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil))
	}
	if n.IsNegative() {
		v.Neg(v)
	}
	return v, nil
}

// Decimal returns the exact value of n as an arbitrary-precision decimal.
// It reports ErrNotFinite for NaN and infinities.
func (n *Number) Decimal() (decimal.Decimal, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.have&haveDecimal == 0 {
		switch n.radix {
		case Special:
			n.decErr = ErrNotFinite
		case Decimal:
			n.dec, n.decErr = n.decimalValue()
		default:
			n.dec = decimal.NewFromBigInt(n.radixInt(), 0)
		}
		n.have |= haveDecimal
	}
	return n.dec, n.decErr
}

func (n *Number) decimalValue() (decimal.Decimal, error) {
	digits, exp := n.decimalParts()
	if digits == "" {
		return decimal.Zero, nil
	} else if exp < math.MinInt32 || exp > math.MaxInt32 {
		return decimal.Decimal{}, fmt.Errorf("exponent of %q is out of range", n.text)
	}
	v, _ := new(big.Int).SetString(digits, 10)
	if n.IsNegative() {
		v.Neg(v)
	}
	return decimal.NewFromBigInt(v, int32(exp)), nil
}

// decimalParts splits a finite decimal literal into its significant digits,
// without leading zeros, and a base-10 exponent, so that the magnitude of n
// is digits × 10^exp. Zero has no digits.
func (n *Number) decimalParts() (digits string, exp int64) {
	mant, e := n.body(), ""
	if i := strings.IndexAny(mant, "eE"); i >= 0 {
		mant, e = mant[:i], mant[i+1:]
	}
	frac := ""
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		mant, frac = mant[:i], mant[i+1:]
	}
	digits = strings.TrimLeft(mant+frac, "0")
	return digits, parseExponent(e) - int64(len(frac))
}

// parseExponent parses the digits of an exponent, saturating at values far
// beyond any that a conversion can use.
func parseExponent(s string) int64 {
	const limit = 1 << 40
	v, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return min(max(v, -limit), limit)
	} else if s == "" {
		return 0
	} else if s[0] == '-' {
		return -limit
	}
	return limit
}

// decimalText returns the literal in the form accepted by strconv: no plus
// sign, and digits on both sides of any decimal point.
func (n *Number) decimalText() string {
	mant, e := n.body(), ""
	if i := strings.IndexAny(mant, "eE"); i >= 0 {
		mant, e = mant[:i], mant[i:]
	}
	if strings.HasPrefix(mant, ".") || mant == "" {
		mant = "0" + mant
	}
	mant = strings.TrimSuffix(mant, ".")
	if n.IsNegative() {
		return "-" + mant + e
	}
	return mant + e
}

// DecimalString returns n as a canonical decimal literal. Radix literals are
// rendered as base-10 integers, so 0x1F becomes 31. Decimal literals lose
// a plus sign and gain digits around a bare decimal point. NaN and the
// infinities render as NaN, Infinity and -Infinity.
func (n *Number) DecimalString() string {
	switch n.radix {
	case Special:
		if n.IsNaN() {
			return "NaN"
		} else if n.IsNegative() {
			return "-Infinity"
		}
		return "Infinity"
	case Decimal:
		return n.decimalText()
	}
	return n.radixInt().String()
}
