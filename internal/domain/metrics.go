// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"math"
	"time"
)

// WindowDays é o tamanho fixo da janela do relatório (D-7 até D-1)
const WindowDays = 7

// MetricsRow representa as métricas agregadas de um dia do feed
type MetricsRow struct {
	Day   time.Time `json:"day"`
	DAU   int64     `json:"dau"`
	Likes int64     `json:"likes"`
	Views int64     `json:"views"`
	CTR   float64   `json:"ctr"`
}

// NewMetricsRow monta uma linha calculando o CTR como likes/views.
// Com views = 0 o CTR fica NaN ou +Inf, sem valor substituto.
func NewMetricsRow(day time.Time, dau, likes, views int64) MetricsRow {
	return MetricsRow{
		Day:   day,
		DAU:   dau,
		Likes: likes,
		Views: views,
		CTR:   float64(likes) / float64(views),
	}
}

// HasFiniteCTR indica se o CTR da linha pode ser exibido
func (r MetricsRow) HasFiniteCTR() bool {
	return !math.IsNaN(r.CTR) && !math.IsInf(r.CTR, 0)
}

// MetricsWindow é a sequência de dias da janela, em ordem crescente de data
type MetricsWindow []MetricsRow

func (w MetricsWindow) Len() int {
	return len(w)
}

// Last retorna a linha mais recente da janela ("ontem")
func (w MetricsWindow) Last() (MetricsRow, bool) {
	if len(w) == 0 {
		return MetricsRow{}, false
	}
	return w[len(w)-1], true
}

// Days retorna as datas da janela na mesma ordem das linhas
func (w MetricsWindow) Days() []time.Time {
	days := make([]time.Time, 0, len(w))
	for _, row := range w {
		days = append(days, row.Day)
	}
	return days
}
