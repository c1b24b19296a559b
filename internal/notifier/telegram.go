package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultAPIBase = "https://api.telegram.org"

	// Telegram rejects sendMessage payloads with more than 4096 characters
	// of text. Reports for symbols with long histories can exceed that, so
	// delivery chunks on line boundaries.
	maxMessageLen = 4096

	defaultMaxRetries = 3
)

// TelegramNotifier delivers analysis reports to a Telegram chat.
type TelegramNotifier struct {
	apiBase      string
	botToken     string
	chatID       string
	client       *http.Client
	maxRetries   int
	messageLimit int
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		apiBase:  defaultAPIBase,
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		maxRetries:   defaultMaxRetries,
		messageLimit: maxMessageLen,
	}
}

// sendMessageRequest is the Bot API sendMessage payload.
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send posts a single message to the configured chat. The text must already
// fit the Telegram message limit; report delivery goes through SendReport.
func (t *TelegramNotifier) Send(text string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.botToken)
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    t.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := t.client.Post(endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(body))
	}
	return nil
}

// SendReport delivers a full report, splitting it into chat-sized chunks and
// retrying each chunk with exponential backoff. Chunks are sent in order; a
// chunk that exhausts its retries aborts the rest of the report.
func (t *TelegramNotifier) SendReport(ctx context.Context, text string) error {
	chunks := splitMessage(text, t.messageLimit)
	for i, chunk := range chunks {
		if err := t.sendWithBackoff(ctx, chunk); err != nil {
			return fmt.Errorf("deliver chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}
	return nil
}

func (t *TelegramNotifier) sendWithBackoff(ctx context.Context, text string) error {
	var lastErr error
	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			log.Printf("[WARN] Telegram send failed (attempt %d/%d): %v, retrying in %v",
				attempt, t.maxRetries+1, lastErr, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
		if err := t.Send(text); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("all %d attempts failed: %w", t.maxRetries+1, lastErr)
}

// splitMessage breaks text into pieces of at most limit characters,
// preferring line boundaries. A single line longer than the limit is
// hard-split.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			chunks = append(chunks, b.String())
			b.Reset()
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for len(line) > limit {
			flush()
			chunks = append(chunks, line[:limit])
			line = line[limit:]
		}
		if b.Len() > 0 && b.Len()+1+len(line) > limit {
			flush()
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	flush()
	return chunks
}
