package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits persisted and displayed.
const MoneyScale int32 = 2

var (
	// MaxAmount bounds every monetary magnitude the core accepts.
	MaxAmount = decimal.New(1, 15)

	// ErrArithmetic is the sentinel behind every ArithmeticError.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrAmountIsUnparseable is returned by ParseMoney for text that is not a decimal number.
	ErrAmountIsUnparseable = errs.NewValueIsInvalidError("amount is not a decimal number")
)

// ArithmeticError reports a non-finite or overflowing intermediate value.
// It is never coerced to zero.
type ArithmeticError struct {
	Operation string
	Detail    string
}

func NewArithmeticError(operation, detail string) *ArithmeticError {
	return &ArithmeticError{Operation: operation, Detail: detail}
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrArithmetic, e.Operation, e.Detail)
}

func (e *ArithmeticError) Unwrap() error {
	return ErrArithmetic
}

// Money is a fixed-point decimal amount. Arithmetic never rounds; Round is
// applied only where an amount is persisted or displayed. The zero value is
// a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// Zero returns an amount of 0.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// MoneyFromDecimal wraps d.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// MoneyFromInt builds a whole-unit amount.
func MoneyFromInt(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

// MoneyFromFloat converts a binary float coming from a collaborator.
// NaN and infinities are an ArithmeticError.
func MoneyFromFloat(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, NewArithmeticError("from float", fmt.Sprintf("%v is not finite", f))
	}
	return Money{amount: decimal.NewFromFloat(f)}, nil
}

// ParseMoney parses decimal text such as "1250.50". Surrounding spaces are ignored.
func ParseMoney(raw string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", errors.Join(ErrAmountIsUnparseable, err))
	}
	return Money{amount: d}, nil
}

// ParseMoneyOrZero is ParseMoney for optional upstream fields: anything that
// does not parse is 0.
func ParseMoneyOrZero(raw string) Money {
	m, err := ParseMoney(raw)
	if err != nil {
		return Zero()
	}
	return m
}

// Decimal exposes the underlying value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul multiplies by a rate or weight factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// MulInt multiplies by a quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Equal compares numerically, so 1.5 equals 1.50.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// CheckRange returns an ArithmeticError when |m| exceeds MaxAmount.
func (m Money) CheckRange(operation string) error {
	if m.amount.Abs().GreaterThan(MaxAmount) {
		return NewArithmeticError(operation, fmt.Sprintf("%s exceeds %s", m.amount.String(), MaxAmount.String()))
	}
	return nil
}

// Round rounds half-up to MoneyScale digits.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(MoneyScale)}
}

// String renders the rounded amount with exactly MoneyScale digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// Format renders the rounded amount for display, e.g. "$ 1,234.50".
func (m Money) Format(symbol string) string {
	fixed := m.amount.StringFixed(MoneyScale)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	out := sign + grouped.String() + "." + frac
	if symbol == "" {
		return out
	}
	return symbol + " " + out
}
