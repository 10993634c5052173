package pricing

import "github.com/shopspring/decimal"

// ---------------------------------------------------
// 単体戦略：金額に関係なく定額を割り引く (FixedDiscount)
// ---------------------------------------------------
type FixedDiscount struct {
	amount decimal.Decimal
}

func NewFixedDiscount(amount decimal.Decimal) *FixedDiscount {
	return &FixedDiscount{
		amount: amount,
	}
}

// Apply は入力の検証を行いません。
// 金額の妥当性をどこまで求めるかは戦略ごとの方針であり、この戦略は常に定額を返します。
func (f *FixedDiscount) Apply(input Input) (Result, error) {
	return Result{Discount: f.amount}, nil
}
