package usecase

import (
	"sync"

	"discount-engine/internal/dispatcher"
	"discount-engine/internal/domain/pricing"
	"discount-engine/internal/domain/quote"
)

// QuoteUseCase は見積もり依頼を受け取り、該当するルールのディスパッチャーに伝達するユースケースです
type QuoteUseCase struct {
	registry *pricing.Registry

	mu          sync.Mutex
	dispatchers map[string]*dispatcher.Dispatcher // ルール名ごとのディスパッチャー（初回解決時に生成）
}

func NewQuoteUseCase(registry *pricing.Registry) *QuoteUseCase {
	return &QuoteUseCase{
		registry:    registry,
		dispatchers: make(map[string]*dispatcher.Dispatcher),
	}
}

// HandleRequest は依頼されたルールを解決し、見積もりを計算して返します。
// 未登録ルール（ErrNotFound）も入力不正（ErrInvalidInput）も、ここでは握りつぶさずそのまま返します。
func (u *QuoteUseCase) HandleRequest(req quote.Request) (quote.Quote, error) {
	d, err := u.dispatcherFor(req.RuleKey)
	if err != nil {
		return quote.Quote{}, err
	}

	result, err := d.Process(pricing.Input{Amount: req.Amount})
	if err != nil {
		return quote.Quote{}, err
	}

	return quote.Quote{
		OrderID:  req.OrderID,
		RuleKey:  req.RuleKey,
		Amount:   req.Amount,
		Discount: result.Discount,
		Payable:  req.Amount.Sub(result.Discount),
	}, nil
}

// dispatcherFor は該当ルールのディスパッチャーを返します。
// 戦略の解決は毎回レジストリに仰ぎます。ルールが上書き登録されていた場合に、
// 古い束縛のまま見積もりを出し続けないようにするためです。
func (u *QuoteUseCase) dispatcherFor(ruleKey string) (*dispatcher.Dispatcher, error) {
	strategy, err := u.registry.Resolve(ruleKey)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if d, ok := u.dispatchers[ruleKey]; ok {
		// 解決結果が変わっていても Swap なら影響は次回以降の Process だけ
		if err := d.Swap(strategy); err != nil {
			return nil, err
		}
		return d, nil
	}

	d, err := dispatcher.New(strategy)
	if err != nil {
		return nil, err
	}

	u.dispatchers[ruleKey] = d
	return d, nil
}
