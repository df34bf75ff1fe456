package telegram

// Client defines an interface for sending messages via a Telegram bot.
// This keeps the notification logic decoupled from the specific bot library.
type Client interface {
	SendMessage(recipientChatID int64, text string) error
}
