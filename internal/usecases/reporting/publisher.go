package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/feed-report-bot/infrastructure/integrator/telegram"
	"github.com/vfg2006/feed-report-bot/internal/domain"
	"github.com/vfg2006/feed-report-bot/pkg/log"
)

type TelegramPublisher struct {
	telegram telegram.TelegramIntegrator
}

func NewPublisher(telegramService telegram.TelegramIntegrator) Publisher {
	return &TelegramPublisher{
		telegram: telegramService,
	}
}

// Publish envia primeiro o resumo e depois o gráfico; sem o texto a foto não é enviada
func (p *TelegramPublisher) Publish(ctx context.Context, payload *domain.ReportPayload) error {
	if payload == nil || payload.Summary == "" || len(payload.Chart) == 0 {
		return ErrMissingPayload
	}

	if err := p.telegram.SendText(ctx, payload.Summary); err != nil {
		return errors.Wrap(err, "erro ao enviar resumo do relatório")
	}

	if err := p.telegram.SendPhoto(ctx, payload.ChartName, payload.Chart); err != nil {
		return errors.Wrap(err, "erro ao enviar gráfico do relatório")
	}

	log.ForContext(ctx).WithField("day", payload.Day.Format(time.DateOnly)).Info("Relatório enviado ao Telegram")

	return nil
}
