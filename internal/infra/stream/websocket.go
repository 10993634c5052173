package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"

	"discount-engine/internal/domain/quote"
)

// pushMessage はフィードサーバーから届く生のJSONメッセージです
type pushMessage struct {
	OrderID string          `json:"OrderID"`
	RuleKey string          `json:"RuleKey"`
	Amount  decimal.Decimal `json:"Amount"`
}

// WSStreamer はWebSocket経由で見積もり依頼を受信し、統一されたストリームに変換します
type WSStreamer struct {
	url string
}

func NewWSStreamer(url string) *WSStreamer {
	return &WSStreamer{
		url: url,
	}
}

// Start は engine.QuoteStreamer の実装です。
// フィードサーバーに接続し、受信した依頼をチャネルに流し続けます。
func (w *WSStreamer) Start(ctx context.Context) (<-chan quote.Request, error) {
	// 1. サーバーへ接続
	fmt.Printf("WebSocket接続開始: %s\n", w.url)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, w.url, nil)
	if err != nil {
		return nil, fmt.Errorf("WebSocket接続エラー: %w", err)
	}
	fmt.Println("WebSocket接続成功！依頼の受信をスタートします。")

	reqCh := make(chan quote.Request, 100)

	// コンテキストが終了したら接続を閉じ、ReadMessage のブロックを解除する
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	// 2. データの受信ループ（切断されるまで無限ループ）
	go func() {
		defer close(reqCh)

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Printf("WebSocket読み取りエラー (切断されました): %v", err)
				return // ループを抜けてGoroutineを終了
			}

			// 3. 受け取ったJSONを構造体に変換
			var msg pushMessage
			if err := json.Unmarshal(message, &msg); err != nil {
				log.Printf("JSONパースエラー: %v", err)
				continue // エラーが起きても止まらずに次のデータを待つ
			}

			// 4. 「フィード専用データ」を「システム共通データ」に翻訳してエンジンへ送る
			reqCh <- quote.Request{
				OrderID: msg.OrderID,
				RuleKey: msg.RuleKey,
				Amount:  msg.Amount,
			}
		}
	}()

	return reqCh, nil
}
