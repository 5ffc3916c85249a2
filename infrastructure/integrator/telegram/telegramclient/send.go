package telegramclient

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendMessage envia um texto formatado em Markdown para o chat
func (c *TelegramClient) SendMessage(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := c.botFor(ctx).Send(msg); err != nil {
		return fmt.Errorf("erro ao enviar mensagem: %w", err)
	}

	return nil
}

// SendPhoto envia a imagem como anexo de foto
func (c *TelegramClient) SendPhoto(ctx context.Context, chatID int64, name string, data []byte) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  name,
		Bytes: data,
	})

	if _, err := c.botFor(ctx).Send(photo); err != nil {
		return fmt.Errorf("erro ao enviar foto: %w", err)
	}

	return nil
}
