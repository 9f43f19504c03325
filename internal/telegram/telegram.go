package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Client interface {
	GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()

	SendMessage(chatID int64, text string) (int, error)
	SendMarkdown(chatID int64, text string) (int, error)

	SendMessageToDefaultChat(msg string)
	SendMarkdownToDefaultChat(msg string)
}
