package dispatcher

import (
	"sync"

	"discount-engine/internal/domain/pricing"
)

// Dispatcher はただ1つの戦略への参照を持ち、処理の委譲だけを担います。
// 戦略の種類によって分岐したり、結果を加工したりは一切しません。
type Dispatcher struct {
	mu       sync.Mutex // 👈 束縛の読み取りと差し替えが競合しないようにするための鍵
	strategy pricing.Strategy
}

// New は戦略を束縛したディスパッチャーを生成します。
// 戦略なしで組み立てるのは配線ミスなので、初回利用時ではなくここで即失敗させます。
func New(s pricing.Strategy) (*Dispatcher, error) {
	if s == nil {
		return nil, pricing.ErrNilStrategy
	}

	return &Dispatcher{
		strategy: s,
	}, nil
}

// Process は入力をそのまま束縛中の戦略へ渡し、結果もエラーも無加工で返します
func (d *Dispatcher) Process(input pricing.Input) (pricing.Result, error) {
	d.mu.Lock()
	s := d.strategy
	d.mu.Unlock()

	return s.Apply(input)
}

// Swap は束縛する戦略を差し替えます。影響するのは差し替え後の Process だけです。
func (d *Dispatcher) Swap(s pricing.Strategy) error {
	if s == nil {
		return pricing.ErrNilStrategy
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.strategy = s
	return nil
}
