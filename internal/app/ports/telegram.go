package ports

import "context"

type TelegramPort interface {
	DeleteMessage(ctx context.Context, botToken string, chatID, messageID int64) error
}
