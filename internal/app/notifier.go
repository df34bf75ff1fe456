package app

import (
	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier delivers plain-text messages to the configured chat.
type Notifier struct {
	client domainTelegram.Client
	chatID int64
	log    *logrus.Entry
}

func NewNotifier(client domainTelegram.Client, chatID int64, log *logrus.Entry) *Notifier {
	return &Notifier{
		client: client,
		chatID: chatID,
		log:    log,
	}
}

// Send delivers text to the chat and reports whether delivery succeeded.
// A delivery failure is logged and swallowed here — it must never crash the
// poll loop — so callers get a bool instead of an error.
func (n *Notifier) Send(text string) bool {
	if err := n.client.SendMessage(n.chatID, text); err != nil {
		n.log.WithError(err).Error("Failed to send Telegram message")
		return false
	}
	n.log.WithField("text", text).Info("Telegram message sent")
	return true
}
