package pricing

import (
	"fmt"
	"sync"
)

// Registry は戦略名と実装の対応表です。
// 起動時の登録とリクエスト毎の解決が別ゴルーチンから走るため、内部で鍵を持ちます。
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Strategy
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Strategy),
	}
}

// Register は戦略を名前付きで登録します。同じ名前への再登録は上書き（後勝ち）です。
func (r *Registry) Register(name string, s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[name] = s
}

// Resolve は名前に対応する戦略を返します。未登録なら ErrNotFound を返します。
func (r *Registry) Resolve(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s, nil
}

// Keys は登録済みの戦略名の一覧を返します（順序は不定）
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for name := range r.entries {
		keys = append(keys, name)
	}
	return keys
}
