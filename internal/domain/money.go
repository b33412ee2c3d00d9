package domain

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// MinorUnitDigits — число знаков копеек в денежной сумме.
const MinorUnitDigits = 2

// Money хранит сумму в минимальных единицах (копейках).
type Money int64

// ParseMoney разбирает десятичную строку ("123.45") в копейки.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(ErrValidation, "invalid amount %q", s)
	}
	return moneyFromDecimal(d), nil
}

// MoneyFromMajor переводит целые рубли в копейки.
func MoneyFromMajor(units int64) Money {
	return Money(decimal.NewFromInt(units).Shift(MinorUnitDigits).IntPart())
}

func moneyFromDecimal(d decimal.Decimal) Money {
	return Money(d.Shift(MinorUnitDigits).Round(0).IntPart())
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -MinorUnitDigits)
}

func (m Money) Mul(n int) Money {
	return m * Money(n)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(MinorUnitDigits)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return errors.Wrapf(ErrValidation, "invalid amount %s", string(b))
	}
	*m = moneyFromDecimal(d)
	return nil
}
