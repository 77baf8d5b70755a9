package push

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogNotifier is the fire-and-forget push provider. Delivery failures
// are observed and ignored; nothing here may fail a redemption.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Push(_ context.Context, recipientID uuid.UUID, topic, message string) {
	slog.Info("push notification",
		"recipient_id", recipientID,
		"topic", topic,
		"message", message)
}
