package notifier

import (
	"context"
	"log"
)

// Notifier delivers analysis output to wherever the operator reads it.
type Notifier interface {
	// Send delivers one short message.
	Send(text string) error
	// SendReport delivers a full report, handling transport message-size
	// limits and transient failures.
	SendReport(ctx context.Context, text string) error
}

// LogNotifier writes reports to the process log. Used when no Telegram
// credentials are configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) Send(text string) error {
	log.Printf("[INFO] report:\n%s", text)
	return nil
}

func (n *LogNotifier) SendReport(_ context.Context, text string) error {
	return n.Send(text)
}
