package telegramclient

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/feed-report-bot/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

type Client interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, name string, data []byte) error
}

type TelegramClient struct {
	bot        *tgbotapi.BotAPI
	httpClient tgbotapi.HTTPClient
}

// NewClient cria o cliente do bot e valida o token com getMe
func NewClient(cfg *config.Config) (Client, error) {
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
	}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.Telegram.Token, cfg.Telegram.APIEndpoint, httpClient)
	if err != nil {
		return nil, err
	}

	logrus.WithField("bot", bot.Self.UserName).Info("Bot do Telegram autenticado")

	return &TelegramClient{bot: bot, httpClient: httpClient}, nil
}

// contextClient amarra as requisições do tgbotapi ao contexto da chamada
type contextClient struct {
	ctx    context.Context
	client tgbotapi.HTTPClient
}

func (c contextClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req.WithContext(c.ctx))
}

// botFor devolve uma cópia do bot cujas requisições são canceladas junto com ctx.
// O tgbotapi não aceita contexto em Send.
func (c *TelegramClient) botFor(ctx context.Context) *tgbotapi.BotAPI {
	bot := *c.bot
	bot.Client = contextClient{ctx: ctx, client: c.httpClient}
	return &bot
}
