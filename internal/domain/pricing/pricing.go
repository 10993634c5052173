package pricing

import "github.com/shopspring/decimal"

// Input は、戦略が割引を判断するための「注文の状態」です
type Input struct {
	Amount decimal.Decimal // 割引前の対象金額
}

// Result は戦略がエンジンに返す「割引命令」です
type Result struct {
	Discount decimal.Decimal // 適用する割引額
}

// Strategy はすべての割引ロジックが満たすべき規格です。
// 呼び出し側は具体的な戦略の種類を一切知らず、この規格だけを通して判断を仰ぎます。
type Strategy interface {
	Apply(input Input) (Result, error)
}
