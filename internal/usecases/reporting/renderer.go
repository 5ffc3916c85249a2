package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/feed-report-bot/internal/domain"
	"github.com/vfg2006/feed-report-bot/pkg/chart"
	"github.com/vfg2006/feed-report-bot/pkg/log"
)

const chartTitle = "Métricas principais da semana"

type ChartRenderer struct{}

func NewRenderer() Renderer {
	return &ChartRenderer{}
}

// Render gera o resumo do último dia e o gráfico 2x2 da janela inteira
func (r *ChartRenderer) Render(ctx context.Context, window domain.MetricsWindow) (*domain.ReportPayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	last, ok := window.Last()
	if !ok {
		return nil, ErrEmptyWindow
	}

	// dias anteriores sem visualizações viram lacuna no painel de CTR; só o resumo exige CTR finito
	if !last.HasFiniteCTR() {
		return nil, fmt.Errorf("%w: dia %s", ErrNonFiniteCTR, last.Day.Format(time.DateOnly))
	}

	png, err := chart.RenderPNG(BuildChart(window))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao desenhar gráfico do relatório")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"day":        last.Day.Format(time.DateOnly),
		"chart_size": len(png),
	}).Info("Relatório renderizado")

	return &domain.ReportPayload{
		Day:       last.Day,
		Summary:   BuildSummary(last),
		Chart:     png,
		ChartName: ChartFileName(last.Day),
	}, nil
}

// BuildChart distribui as séries na grade: DAU, Visualizações, Curtidas e CTR
func BuildChart(window domain.MetricsWindow) chart.Chart {
	series := []struct {
		title string
		value func(domain.MetricsRow) float64
	}{
		{"DAU", func(r domain.MetricsRow) float64 { return float64(r.DAU) }},
		{"Visualizações", func(r domain.MetricsRow) float64 { return float64(r.Views) }},
		{"Curtidas", func(r domain.MetricsRow) float64 { return float64(r.Likes) }},
		{"CTR", func(r domain.MetricsRow) float64 { return r.CTR }},
	}

	c := chart.Chart{
		Title:  chartTitle,
		Panels: make([]chart.Panel, 0, len(series)),
	}
	for _, s := range series {
		panel := chart.Panel{
			Title:  s.title,
			Points: make([]chart.Point, 0, window.Len()),
		}
		for _, row := range window {
			panel.Points = append(panel.Points, chart.Point{Day: row.Day, Value: s.value(row)})
		}
		c.Panels = append(c.Panels, panel)
	}

	return c
}
