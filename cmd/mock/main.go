// cmd/mock/main.go
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

func main() {
	// エンドポイントのルーティング
	http.HandleFunc("/feed", handleFeed)

	fmt.Println("[Mock] サーバー起動: モック注文フィードがポート18082で待機中...")
	if err := http.ListenAndServe(":18082", nil); err != nil {
		log.Fatal("サーバー起動エラー:", err)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// mockRequest は配信する見積もり依頼の1件分です
type mockRequest struct {
	OrderID string `json:"OrderID"`
	RuleKey string `json:"RuleKey"`
	Amount  string `json:"Amount"`
}

// handleFeed はWebSocket配信用ハンドラーです
func handleFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("アップグレードエラー:", err)
		return
	}
	defer conn.Close()

	fmt.Println("[Mock] 🎯 エンジンからのWebSocket接続を受け付けました！")

	// テスト用の依頼シナリオを作る
	scenario := []mockRequest{
		{OrderID: "order-001", RuleKey: "percentage", Amount: "100"},   // 🎯 [シナリオ1] 10%なら割引10円になるはず！
		{OrderID: "order-002", RuleKey: "fixed", Amount: "100"},        // 🎯 [シナリオ2] 定額15円の割引になるはず！
		{OrderID: "order-003", RuleKey: "percentage", Amount: "80000"}, // 🎯 [シナリオ3] 上限5000円で頭打ちになるはず！
		{OrderID: "order-004", RuleKey: "unknown", Amount: "100"},      // 🎯 [シナリオ4] 未登録ルールなので警告が出るはず！
		{OrderID: "order-005", RuleKey: "percentage", Amount: "-5"},    // 🎯 [シナリオ5] マイナス金額なので入力不正で弾かれるはず！
		{OrderID: "order-006", RuleKey: "fixed", Amount: "-5"},         // 🎯 [シナリオ6] 定額ルールは検証しないのでそのまま通るはず！
	}

	tick := 0
	for {
		// 配列のインデックスをループさせる
		req := scenario[tick%len(scenario)]
		req.OrderID = fmt.Sprintf("%s-%d", req.OrderID, tick/len(scenario))

		jsonData, _ := json.Marshal(req)
		if err := conn.WriteMessage(websocket.TextMessage, jsonData); err != nil {
			break
		}
		fmt.Printf("🌊 モック依頼配信: %+v \n", req)

		tick++
		time.Sleep(1 * time.Second) // 1秒ごとに依頼を配信
	}
}
