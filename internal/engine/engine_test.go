package engine

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"discount-engine/internal/domain/pricing"
	"discount-engine/internal/domain/quote"
	"discount-engine/internal/usecase"
)

// fakeStreamer はWebSocketの代わりにテストから直接依頼を流し込むためのストリーマーです
type fakeStreamer struct {
	ch chan quote.Request
}

func (f *fakeStreamer) Start(ctx context.Context) (<-chan quote.Request, error) {
	return f.ch, nil
}

func newTestEngine(streamer QuoteStreamer) *Engine {
	registry := pricing.NewRegistry()
	registry.Register("percentage", pricing.NewPercentageDiscount(decimal.RequireFromString("0.10")))
	uc := usecase.NewQuoteUseCase(registry)
	return NewEngine(streamer, uc, nil, 23, 59)
}

func TestEngine_StopsWhenStreamCloses(t *testing.T) {
	streamer := &fakeStreamer{ch: make(chan quote.Request, 3)}
	streamer.ch <- quote.Request{OrderID: "order-001", RuleKey: "percentage", Amount: decimal.RequireFromString("100")}
	streamer.ch <- quote.Request{OrderID: "order-002", RuleKey: "unknown", Amount: decimal.RequireFromString("100")}
	close(streamer.ch)

	eng := newTestEngine(streamer)

	done := make(chan error, 1)
	go func() {
		done <- eng.Run(context.Background())
	}()

	select {
	case err := <-done:
		require.NoError(t, err, "ストリーム切断でエンジンは正常終了する")
	case <-time.After(3 * time.Second):
		t.Fatal("engine did not stop after the stream closed")
	}
}

func TestEngine_StopsOnContextCancel(t *testing.T) {
	streamer := &fakeStreamer{ch: make(chan quote.Request)}
	eng := newTestEngine(streamer)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- eng.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("engine did not stop after context cancellation")
	}
}

func TestEngine_CampaignEnded(t *testing.T) {
	eng := newTestEngine(&fakeStreamer{ch: make(chan quote.Request)})

	day := func(hour, min int) time.Time {
		return time.Date(2026, 8, 30, hour, min, 0, 0, time.Local)
	}

	require.False(t, eng.campaignEnded(day(10, 0)))
	require.False(t, eng.campaignEnded(day(23, 58)))
	require.True(t, eng.campaignEnded(day(23, 59)))
}
