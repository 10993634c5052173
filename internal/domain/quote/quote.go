package quote

import "github.com/shopspring/decimal"

// Request は外部から届く「この注文にこのルールで見積もりを出せ」という依頼です
type Request struct {
	OrderID string          // 注文の識別子（ログ用）
	RuleKey string          // 適用したい割引ルール名
	Amount  decimal.Decimal // 割引前の対象金額
}

// Quote は見積もりの最終結果です
type Quote struct {
	OrderID  string
	RuleKey  string
	Amount   decimal.Decimal
	Discount decimal.Decimal
	Payable  decimal.Decimal // 支払額 = 金額 - 割引額
}
