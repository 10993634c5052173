package pricing

import (
	"sync"

	"github.com/shopspring/decimal"
)

// KillSwitch は他の戦略をラップし、発動後はすべての割引を止めるデコレーター。
// キャンペーン終了時刻に到達したら、登録済みの戦略を差し替えることなく一斉に無効化できます。
type KillSwitch struct {
	mainLogic   Strategy // 包み込まれる本来の戦略
	mu          sync.Mutex
	isTriggered bool // キルスイッチが押されたか
}

// 本来の戦略を渡してキルスイッチ付き戦略を作る
func NewKillSwitch(mainLogic Strategy) *KillSwitch {
	return &KillSwitch{
		mainLogic:   mainLogic,
		isTriggered: false,
	}
}

// Activate は外部（エンジンの時刻監視など）から手動でキルスイッチを起動します
func (k *KillSwitch) Activate() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.isTriggered = true
}

func (k *KillSwitch) Apply(input Input) (Result, error) {
	k.mu.Lock()
	triggered := k.isTriggered
	k.mu.Unlock()

	// 🚨 キルスイッチ発動中！割引はゼロ固定で応答する
	if triggered {
		return Result{Discount: decimal.Zero}, nil
	}

	// 平常時は、包み込んでいる本来の戦略に判断を丸投げする
	return k.mainLogic.Apply(input)
}
