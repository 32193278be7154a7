package types

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidMoney reports a wire value that could not be read as a decimal
// amount.
var ErrInvalidMoney = errors.New("invalid money amount")

// Money is a decimal amount that marshals as a bare JSON number, the format
// the storefront sends and expects. Arithmetic stays exact; rounding happens
// only where a caller asks for it.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func MoneyFromFloat(f float64) Money {
	return Money{Decimal: decimal.NewFromFloat(f)}
}

func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("money: %w", err)
	}
	return Money{Decimal: d}, nil
}

func MustMoney(s string) Money {
	return Money{Decimal: decimal.RequireFromString(s)}
}

func ZeroMoney() Money {
	return Money{Decimal: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{Decimal: m.Decimal.Add(other.Decimal)}
}

func (m Money) MulInt(n int) Money {
	return Money{Decimal: m.Decimal.Mul(decimal.NewFromInt(int64(n)))}
}

func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{Decimal: m.Decimal.Mul(rate)}
}

func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// EqualRounded compares two amounts at cent precision. Clients compute
// totals in binary floating point, so exact comparison would reject
// payloads that are off by a sub-cent representation error.
func (m Money) EqualRounded(other Money) bool {
	return m.Decimal.Round(2).Equal(other.Decimal.Round(2))
}

func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	if err := m.Decimal.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMoney, data)
	}
	return nil
}

// Value stores the amount as its canonical decimal string.
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.String(), nil
}

func (m *Money) Scan(value any) error {
	if value == nil {
		m.Decimal = decimal.Zero
		return nil
	}
	switch v := value.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("money: scan %q: %w", v, err)
		}
		m.Decimal = d
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return fmt.Errorf("money: scan %q: %w", v, err)
		}
		m.Decimal = d
	case float64:
		m.Decimal = decimal.NewFromFloat(v)
	case int64:
		m.Decimal = decimal.NewFromInt(v)
	default:
		return fmt.Errorf("money: unsupported scan type %T", value)
	}
	return nil
}
