package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// botServer records every sendMessage payload it receives.
type botServer struct {
	mu       sync.Mutex
	payloads []sendMessageRequest
	failures int // number of initial requests to reject with 500
}

func (b *botServer) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failures > 0 {
			b.failures--
			http.Error(w, `{"ok":false}`, http.StatusInternalServerError)
			return
		}
		b.payloads = append(b.payloads, req)
		w.Write([]byte(`{"ok":true}`))
	}
}

func (b *botServer) received() []sendMessageRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]sendMessageRequest(nil), b.payloads...)
}

func newTestNotifier(srvURL string) *TelegramNotifier {
	n := NewTelegramNotifier("test-token", "42", "")
	n.apiBase = srvURL
	return n
}

func TestTelegramNotifier_Send(t *testing.T) {
	bot := &botServer{}
	srv := httptest.NewServer(bot.handler(t))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	require.NoError(t, n.Send("hello"))

	got := bot.received()
	require.Len(t, got, 1)
	assert.Equal(t, "42", got[0].ChatID)
	assert.Equal(t, "hello", got[0].Text)
	assert.Equal(t, "HTML", got[0].ParseMode)
}

func TestTelegramNotifier_Send_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"ok":false,"description":"bad request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	err := n.Send("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestTelegramNotifier_SendReport_ChunksLongReport(t *testing.T) {
	bot := &botServer{}
	srv := httptest.NewServer(bot.handler(t))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	n.messageLimit = 40

	lines := []string{
		"📊 <b>Report</b>",
		"Period: 2024-01-02 to 2024-06-28",
		"SMA(5): 101.24",
		"Upward runs: 12, downward runs: 9",
		"Max profit: 37.50",
	}
	report := strings.Join(lines, "\n")
	require.NoError(t, n.SendReport(context.Background(), report))

	got := bot.received()
	require.Greater(t, len(got), 1, "oversized report must be split")

	var parts []string
	for _, p := range got {
		assert.LessOrEqual(t, len(p.Text), 40)
		parts = append(parts, p.Text)
	}
	// Chunking splits between lines, never inside one.
	assert.Equal(t, report, strings.Join(parts, "\n"))
}

func TestTelegramNotifier_SendReport_SingleMessageWhenShort(t *testing.T) {
	bot := &botServer{}
	srv := httptest.NewServer(bot.handler(t))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	require.NoError(t, n.SendReport(context.Background(), "short report"))
	assert.Len(t, bot.received(), 1)
}

func TestTelegramNotifier_SendReport_RetriesTransientFailure(t *testing.T) {
	bot := &botServer{failures: 1}
	srv := httptest.NewServer(bot.handler(t))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	n.maxRetries = 1
	require.NoError(t, n.SendReport(context.Background(), "flaky"))

	got := bot.received()
	require.Len(t, got, 1)
	assert.Equal(t, "flaky", got[0].Text)
}

func TestTelegramNotifier_SendReport_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"ok":false}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.SendReport(ctx, "never delivered")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSplitMessage(t *testing.T) {
	t.Run("short text is one chunk", func(t *testing.T) {
		assert.Equal(t, []string{"abc"}, splitMessage("abc", 10))
	})

	t.Run("splits on line boundaries", func(t *testing.T) {
		chunks := splitMessage("aaaa\nbbbb\ncccc", 9)
		assert.Equal(t, []string{"aaaa\nbbbb", "cccc"}, chunks)
	})

	t.Run("hard-splits a single oversized line", func(t *testing.T) {
		chunks := splitMessage(strings.Repeat("x", 25), 10)
		assert.Equal(t, []string{
			strings.Repeat("x", 10),
			strings.Repeat("x", 10),
			strings.Repeat("x", 5),
		}, chunks)
	})

	t.Run("no chunk exceeds the limit", func(t *testing.T) {
		var lines []string
		for i := 0; i < 200; i++ {
			lines = append(lines, strings.Repeat("r", 30))
		}
		for _, chunk := range splitMessage(strings.Join(lines, "\n"), 100) {
			assert.LessOrEqual(t, len(chunk), 100)
			assert.NotEmpty(t, chunk)
		}
	})
}
