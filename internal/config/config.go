package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// RulesConfig は割引ルールを動かすために必要な設定です
type RulesConfig struct {
	// タグをつけるだけで、ライブラリが勝手に読み込んでくれます
	// （decimal.Decimal は TextUnmarshaler を満たすので文字列のまま指定できます）
	PercentageRate decimal.Decimal `envconfig:"RULE_PERCENTAGE_RATE" default:"0.10"`
	FixedAmount    decimal.Decimal `envconfig:"RULE_FIXED_AMOUNT" default:"15"`
	MaxDiscount    decimal.Decimal `envconfig:"RULE_MAX_DISCOUNT" default:"5000"`
}

// AppConfig はシステム全体の設定です
type AppConfig struct {
	FeedURL string `envconfig:"FEED_URL" default:"ws://localhost:18082/feed"`

	// キャンペーン終了時刻（この時刻を過ぎると全ルールのキルスイッチが作動します）
	CampaignEndHour   int `envconfig:"CAMPAIGN_END_HOUR" default:"23"`
	CampaignEndMinute int `envconfig:"CAMPAIGN_END_MINUTE" default:"59"`

	Rules RulesConfig // ネストされた構造体も、タグに従って自動で読み込まれます
}

// Load は環境変数から設定を自動でマッピングして返します
func Load() (*AppConfig, error) {
	// 1. .envファイルがあれば読み込み、OSの環境変数にセットする
	// ※ 本番環境など .env が存在しない場合もあるため、エラーは無視（_）するのがベストプラクティスです
	_ = godotenv.Load()

	var cfg AppConfig

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
