package notify

import (
	"context"
	"log"
)

// LogPushSender stands in for a real push provider (Expo in the mobile
// client) and just logs the delivery.
type LogPushSender struct{}

func NewLogPushSender() *LogPushSender {
	return &LogPushSender{}
}

func (p *LogPushSender) SendPush(_ context.Context, userID, title, body string) error {
	log.Printf("PUSH to user %s: %s - %s", userID, title, body)
	return nil
}
