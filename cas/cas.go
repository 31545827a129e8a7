// Package cas implements CAS Registry Numbers, the identifiers assigned to
// chemical substances by the Chemical Abstracts Service.
//
// A CAS number is written as three hyphen-separated groups of digits, e.g.
// 58-08-2 for caffeine. The first group has two to seven digits, the second
// has two, and the last is a single check digit. The check digit is the sum
// of the other digits, each weighted by its position counted from the right
// starting at 1, modulo 10.
package cas

import (
	"strconv"
	"strings"
)

const (
	// MinInt is the smallest integer value that can be a CAS number, 10-00-4.
	MinInt = 10004
	// MaxInt is the largest integer value that fits the CAS notation.
	MaxInt = 9999999999
)

// Number is a validated CAS Registry Number. The zero value is not a valid
// number; use Parse, FromInt, or New to create one. Numbers are comparable
// with ==.
type Number struct {
	n int64
}

// Parse parses a CAS number in its hyphenated notation, e.g. "58-08-2".
func Parse(s string) (Number, error) {
	if !wellFormed(s) {
		return Number{}, &InvalidFormatError{Text: s}
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(s, "-", ""), 10, 64)
	if err != nil {
		// wellFormed admits at most ten digits, so this cannot overflow.
		panic("cas: unparseable digits in " + strconv.Quote(s) + ": " + err.Error())
	}
	return FromInt(n)
}

// wellFormed checks that s matches ddd-dd-d with two to seven leading digits.
func wellFormed(s string) bool {
	g := strings.Split(s, "-")
	if len(g) != 3 {
		return false
	}
	if len(g[0]) < 2 || len(g[0]) > 7 || len(g[1]) != 2 || len(g[2]) != 1 {
		return false
	}
	for _, p := range g {
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				return false
			}
		}
	}
	return true
}

// FromInt creates a CAS number from its integer form without hyphens, e.g.
// 58082 for 58-08-2.
func FromInt(n int64) (Number, error) {
	if n < MinInt || n > MaxInt {
		return Number{}, &InvalidRangeError{Value: n}
	}
	r := Number{n: n}
	if want := checksum(n / 10); want != r.CheckDigit() {
		return Number{}, &InvalidChecksumError{Text: r.String(), Found: r.CheckDigit(), Want: want}
	}
	return r, nil
}

// New creates a CAS number from an integer, a hyphenated string, or another
// Number. Any other type of argument, including floating-point numbers,
// results in an *InvalidTypeError.
func New(v any) (Number, error) {
	switch v := v.(type) {
	case Number:
		return FromInt(v.n)
	case *Number:
		if v == nil {
			return Number{}, &InvalidTypeError{Value: v}
		}
		return FromInt(v.n)
	case string:
		return Parse(v)
	case int:
		return FromInt(int64(v))
	case int8:
		return FromInt(int64(v))
	case int16:
		return FromInt(int64(v))
	case int32:
		return FromInt(int64(v))
	case int64:
		return FromInt(v)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return fromUint(uint64(v))
	case uint16:
		return fromUint(uint64(v))
	case uint32:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	default:
		return Number{}, &InvalidTypeError{Value: v}
	}
}

func fromUint(n uint64) (Number, error) {
	if n > MaxInt {
		return Number{}, &InvalidRangeError{Value: MaxInt + 1}
	}
	return FromInt(int64(n))
}

// checksum computes the check digit for the digits of a CAS number other
// than the check digit itself.
func checksum(body int64) int {
	sum := 0
	for pos := 1; body > 0; pos++ {
		sum += pos * int(body%10)
		body /= 10
	}
	return sum % 10
}

// String formats the number in hyphenated notation.
func (c Number) String() string {
	if c.n == 0 {
		return "<invalid CAS number>"
	}
	s := strconv.FormatInt(c.n, 10)
	k := len(s)
	return s[:k-3] + "-" + s[k-3:k-1] + "-" + s[k-1:]
}

// Int returns the number without hyphens as an integer.
func (c Number) Int() int64 {
	return c.n
}

// CheckDigit returns the last digit of the number.
func (c Number) CheckDigit() int {
	return int(c.n % 10)
}

// IsZero reports whether c is the zero Number, which is not a valid CAS
// number.
func (c Number) IsZero() bool {
	return c.n == 0
}

// Equal reports whether c and d are the same number.
func (c Number) Equal(d Number) bool {
	return c.n == d.n
}

// Less reports whether c is numerically less than d.
func (c Number) Less(d Number) bool {
	return c.n < d.n
}

// Compare returns -1, 0, or 1 as c is less than, equal to, or greater than d.
func (c Number) Compare(d Number) int {
	switch {
	case c.n < d.n:
		return -1
	case c.n > d.n:
		return 1
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler using hyphenated notation.
func (c Number) MarshalText() ([]byte, error) {
	if c.n == 0 {
		return nil, &InvalidRangeError{Value: 0}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts hyphenated
// notation as well as plain digits.
func (c *Number) UnmarshalText(text []byte) error {
	s := string(text)
	var (
		r   Number
		err error
	)
	if strings.Contains(s, "-") {
		r, err = Parse(s)
	} else {
		n, perr := strconv.ParseInt(s, 10, 64)
		if perr != nil {
			return &InvalidFormatError{Text: s}
		}
		r, err = FromInt(n)
	}
	if err != nil {
		return err
	}
	*c = r
	return nil
}
