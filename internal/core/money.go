// Package core holds the domain model and the aggregation engine.
//
// Monetary amounts are integer paisa (1/100 of a rupee). Decimal strings
// are parsed to paisa at the ingestion boundary and converted back to
// floating point only when rendering responses, so aggregation never
// accumulates floating-point drift.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// Money is an amount in paisa.
type Money struct {
	Paisa int64
}

// ParseDecimalToPaisa converts a decimal string to paisa with half-up
// rounding on the third decimal place. Both dot and comma separators are
// accepted. Signed, zero, and malformed inputs are rejected: amounts are
// required positive everywhere they are ingested.
//
// Examples:
//
//	ParseDecimalToPaisa("45000") -> 4500000, nil
//	ParseDecimalToPaisa("12,34") -> 1234, nil
//	ParseDecimalToPaisa("12.346") -> 1235, nil
func ParseDecimalToPaisa(s string) (int64, error) {
	paisa, err := parseDecimalPaisa(s)
	if err != nil {
		return 0, err
	}
	if paisa <= 0 {
		return 0, ErrInvalidAmount
	}
	return paisa, nil
}

func parseDecimalPaisa(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Guard the *100 below.
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	var fracPaisa int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracPaisa = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracPaisa += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracPaisa++
			}
		}
	}
	return iv*100 + fracPaisa, nil
}

// ParseMoney is ParseDecimalToPaisa wrapped into a Money value.
func ParseMoney(s string) (Money, error) {
	p, err := ParseDecimalToPaisa(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Paisa: p}, nil
}

// ParseNonNegativeMoney parses like ParseMoney but accepts values that
// are or round to zero. Goal funding legitimately starts at zero.
func ParseNonNegativeMoney(s string) (Money, error) {
	p, err := parseDecimalPaisa(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Paisa: p}, nil
}

// Rupees returns the rupee value as float64 for display. Use paisa for
// calculations.
func (m Money) Rupees() float64 {
	return float64(m.Paisa) / 100.0
}

// String formats the amount as a plain decimal (e.g. "45000.00"), the
// representation used for amounts on the wire.
func (m Money) String() string {
	p := m.Paisa
	neg := p < 0
	if neg {
		p = -p
	}
	s := strconv.FormatInt(p/100, 10) + "." + twoDigits(p%100)
	if neg {
		return "-" + s
	}
	return s
}

func twoDigits(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
