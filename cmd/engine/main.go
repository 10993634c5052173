// cmd/engine/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"discount-engine/internal/config"
)

func main() {
	fmt.Println("システム起動: 初期化プロセスを開始します。")

	// 1. 全体を安全に停止するためのコンテキスト管理
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. 設定の読み込み（.env → 環境変数 → 構造体）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定読み込みエラー: %v", err)
	}
	fmt.Println("✅ 設定読み込み完了")

	// 3. システム全体の組み立て（配線はすべて setup.go に押し込む）
	eng, err := buildEngine(cfg)
	if err != nil {
		log.Fatalf("初期化エラー: %v", err)
	}

	// 4. OSからの終了シグナル（Ctrl+C）を受け取る準備
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n中断シグナルを受信しました。終了処理に入ります。")
		cancel()
	}()

	// 5. メインループの開始
	if err := eng.Run(ctx); err != nil {
		log.Fatalf("エンジン実行エラー: %v", err)
	}

	fmt.Println("システムを安全にシャットダウンしました。お疲れ様でした。")
}
