package telegram

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/feed-report-bot/infrastructure/integrator/telegram/telegramclient"
	"github.com/vfg2006/feed-report-bot/internal/config"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// TelegramIntegrator entrega conteúdo no canal configurado
type TelegramIntegrator interface {
	SendText(ctx context.Context, text string) error
	SendPhoto(ctx context.Context, name string, data []byte) error
}

type TelegramService struct {
	chatID int64
	Client telegramclient.Client
}

func New(cfg *config.Config, client telegramclient.Client) TelegramIntegrator {
	return &TelegramService{
		chatID: cfg.Telegram.ChatID,
		Client: client,
	}
}

func (s *TelegramService) SendText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.Client.SendMessage(ctx, s.chatID, text); err != nil {
		logrus.WithError(err).WithField("chat_id", s.chatID).Error("Erro ao enviar mensagem para o Telegram")
		return err
	}

	return nil
}

func (s *TelegramService) SendPhoto(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.Client.SendPhoto(ctx, s.chatID, name, data); err != nil {
		logrus.WithError(err).WithField("chat_id", s.chatID).Error("Erro ao enviar foto para o Telegram")
		return err
	}

	return nil
}
