package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------
// 単体戦略：金額に一定の率を掛けて割り引く (PercentageDiscount)
// ---------------------------------------------------
type PercentageDiscount struct {
	rate decimal.Decimal
}

func NewPercentageDiscount(rate decimal.Decimal) *PercentageDiscount {
	return &PercentageDiscount{
		rate: rate,
	}
}

// Apply は金額を受け取り、率に応じた割引額を返します。
// マイナス金額は注文として成立しないため、この戦略では入り口で弾きます。
func (p *PercentageDiscount) Apply(input Input) (Result, error) {
	if input.Amount.IsNegative() {
		return Result{}, fmt.Errorf("%w: マイナス金額 %s", ErrInvalidInput, input.Amount)
	}

	return Result{Discount: input.Amount.Mul(p.rate)}, nil
}
