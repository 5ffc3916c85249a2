package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/feed-report-bot/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Extractor obtém as métricas diárias da janela que termina ontem
type Extractor interface {
	Extract(ctx context.Context, now time.Time) (domain.MetricsWindow, error)
}

// Renderer transforma a janela no resumo em texto e no gráfico
type Renderer interface {
	Render(ctx context.Context, window domain.MetricsWindow) (*domain.ReportPayload, error)
}

// Publisher entrega o relatório no canal configurado
type Publisher interface {
	Publish(ctx context.Context, payload *domain.ReportPayload) error
}

// Recorder recebe as observações das execuções do pipeline
type Recorder interface {
	ObserveAttempt()
	ObserveStep(step string, duration time.Duration, err error)
	ObserveRun(err error, completedAt time.Time)
}
