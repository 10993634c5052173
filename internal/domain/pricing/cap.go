package pricing

import "github.com/shopspring/decimal"

// CapConstraint は割引上限を超えないように他の戦略の結果を制御します
type CapConstraint struct {
	baseStrategy Strategy
	maxDiscount  decimal.Decimal
}

func NewCapConstraint(base Strategy, maxDiscount decimal.Decimal) *CapConstraint {
	return &CapConstraint{
		baseStrategy: base,
		maxDiscount:  maxDiscount,
	}
}

func (c *CapConstraint) Apply(input Input) (Result, error) {
	// 1. まずベースとなる戦略の判断を仰ぐ
	result, err := c.baseStrategy.Apply(input)
	if err != nil {
		return Result{}, err
	}

	// 2. 上限チェック（超えていたら上限額で頭打ちにする）
	if result.Discount.GreaterThan(c.maxDiscount) {
		return Result{Discount: c.maxDiscount}, nil
	}

	return result, nil
}
