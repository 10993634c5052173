package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"discount-engine/internal/domain/pricing"
	"discount-engine/internal/domain/quote"
	"discount-engine/internal/usecase"
)

// QuoteStreamer は見積もり依頼の受信経路の規格です（実体はWebSocketでもテスト用チャネルでも良い）
type QuoteStreamer interface {
	Start(ctx context.Context) (<-chan quote.Request, error)
}

// Engine はシステム全体のライフサイクル（初期化、実行、停止）を管理する司令部です
type Engine struct {
	streamer QuoteStreamer
	quoteUC  *usecase.QuoteUseCase

	// キャンペーン終了時刻に一斉停止させるためのキルスイッチ群
	switches  []*pricing.KillSwitch
	endHour   int
	endMinute int
}

func NewEngine(streamer QuoteStreamer, quoteUC *usecase.QuoteUseCase, switches []*pricing.KillSwitch, endHour, endMinute int) *Engine {
	return &Engine{
		streamer:  streamer,
		quoteUC:   quoteUC,
		switches:  switches,
		endHour:   endHour,
		endMinute: endMinute,
	}
}

// Run はシステムの初期化を行い、メインループを開始します
func (e *Engine) Run(ctx context.Context) error {
	reqCh, err := e.streamer.Start(ctx)
	if err != nil {
		return err
	}

	// キャンペーン終了時刻の監視用タイマー（1秒周期）
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()
	campaignClosed := false

	fmt.Println("🚀 見積もり依頼の受付を開始します...")

	// メインループ（すべてを1つのselectで統括する）
	for {
		select {
		case <-ctx.Done(): // OSの終了シグナル (Ctrl+C)
			fmt.Println("\n🚨 システム終了シグナルを検知！受付ループを停止します...")
			return nil

		case t := <-ticker.C: // 時間の監視
			if !campaignClosed && e.campaignEnded(t) {
				fmt.Println("\n⏰【キャンペーン終了】指定時刻到達。全ルールのキルスイッチを作動します！")
				for _, ks := range e.switches {
					ks.Activate()
				}
				// 受付自体は続行する。以降の見積もりは割引ゼロで応答される
				campaignClosed = true
			}

		case req, ok := <-reqCh: // 依頼の受信
			if !ok {
				fmt.Println("📡 依頼ストリームが切断されました。エンジンを停止します。")
				return nil
			}
			e.handleRequest(req)
		}
	}
}

func (e *Engine) campaignEnded(t time.Time) bool {
	if t.Hour() > e.endHour {
		return true
	}
	return t.Hour() == e.endHour && t.Minute() >= e.endMinute
}

// handleRequest は1件の依頼を処理し、結果を運用者向けに表示します
func (e *Engine) handleRequest(req quote.Request) {
	q, err := e.quoteUC.HandleRequest(req)

	switch {
	case err == nil:
		fmt.Printf("✅ [%s] ルール%q適用: 金額%s円 → 割引%s円 → 支払%s円\n",
			q.OrderID, q.RuleKey, q.Amount, q.Discount, q.Payable)

	case errors.Is(err, pricing.ErrNotFound):
		// 設定ミスの可能性が高いので、黙ってスキップせず必ず警告を出す
		fmt.Printf("⚠️ [%s] 未登録のルール%qが指定されました: %v\n", req.OrderID, req.RuleKey, err)

	case errors.Is(err, pricing.ErrInvalidInput):
		fmt.Printf("❌ [%s] 依頼の入力が不正です: %v\n", req.OrderID, err)

	default:
		fmt.Printf("❌ [%s] 見積もり処理エラー: %v\n", req.OrderID, err)
	}
}
