// cmd/engine/setup.go
package main

import (
	"discount-engine/internal/config"
	"discount-engine/internal/domain/pricing"
	"discount-engine/internal/engine"
	"discount-engine/internal/infra/stream"
	"discount-engine/internal/usecase"
)

// buildEngine は、システム全体を俯瞰する「目次」です
func buildEngine(cfg *config.AppConfig) (*engine.Engine, error) {
	// 1. インフラ層の構築（依頼の受信経路）
	streamer := stream.NewWSStreamer(cfg.FeedURL)

	// 2. ドメイン層（割引ルール）の配備
	registry, switches := deployRules(cfg.Rules)

	// 3. ユースケースの組み立て
	quoteUC := usecase.NewQuoteUseCase(registry)

	// 4. エンジンの完成
	return engine.NewEngine(streamer, quoteUC, switches, cfg.CampaignEndHour, cfg.CampaignEndMinute), nil
}

// ---------------------------------------------------------
// ▼ ここから下は「下請け工場（プライベート関数）」に押し込む
// ---------------------------------------------------------

// deployRules は具体的な戦略を組み立ててレジストリに登録します。
// 新しいルールの追加はここに Register を1行足すだけで、レジストリ本体のコードは触りません。
func deployRules(cfg config.RulesConfig) (*pricing.Registry, []*pricing.KillSwitch) {
	registry := pricing.NewRegistry()
	var switches []*pricing.KillSwitch

	// ルールA: 率による割引（上限付き、キルスイッチ付き）
	percentLogic := pricing.NewPercentageDiscount(cfg.PercentageRate)
	cappedLogic := pricing.NewCapConstraint(percentLogic, cfg.MaxDiscount)
	safePercent := pricing.NewKillSwitch(cappedLogic)
	registry.Register("percentage", safePercent)
	switches = append(switches, safePercent)

	// ルールB: 定額割引（キルスイッチ付き）
	safeFixed := pricing.NewKillSwitch(pricing.NewFixedDiscount(cfg.FixedAmount))
	registry.Register("fixed", safeFixed)
	switches = append(switches, safeFixed)

	return registry, switches
}
