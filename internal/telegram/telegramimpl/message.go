package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendMessage sends a plain text message to a specific chat ID
func (tg *TelegramImpl) SendMessage(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message",
			"chatID", chatID,
			"error", err)
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	return sentMsg.MessageID, nil
}

// SendMarkdown sends a MarkdownV2 formatted message to a specific chat ID.
// The caller is responsible for escaping, see formatter.EscapeMarkdownV2.
func (tg *TelegramImpl) SendMarkdown(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending markdown message",
			"chatID", chatID,
			"error", err)
		return 0, fmt.Errorf("failed to send markdown message: %w", err)
	}

	return sentMsg.MessageID, nil
}

// SendMessageToDefaultChat sends a text message to the configured digest chat
func (tg *TelegramImpl) SendMessageToDefaultChat(message string) {
	if _, err := tg.SendMessage(tg.Config.Telegram.Chat, message); err != nil {
		tg.Logger.Error("Error sending message to default chat",
			"chatID", tg.Config.Telegram.Chat,
			"error", err)
	}
}

// SendMarkdownToDefaultChat sends a MarkdownV2 message to the configured digest chat
func (tg *TelegramImpl) SendMarkdownToDefaultChat(message string) {
	if _, err := tg.SendMarkdown(tg.Config.Telegram.Chat, message); err != nil {
		tg.Logger.Error("Error sending markdown to default chat",
			"chatID", tg.Config.Telegram.Chat,
			"error", err)
	}
}

// GetUpdatesChan wraps the bot's GetUpdatesChan method
func (tg *TelegramImpl) GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return tg.TgBot.GetUpdatesChan(u)
}

// StopReceivingUpdates wraps the bot's StopReceivingUpdates method
func (tg *TelegramImpl) StopReceivingUpdates() {
	tg.TgBot.StopReceivingUpdates()
}
