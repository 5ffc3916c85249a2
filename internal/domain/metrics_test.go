package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMetricsRow(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		likes      int64
		views      int64
		wantCTR    float64
		wantFinite bool
	}{
		{name: "CTR calculado como likes/views", likes: 50, views: 200, wantCTR: 0.25, wantFinite: true},
		{name: "Sem likes", likes: 0, views: 10, wantCTR: 0, wantFinite: true},
		{name: "Sem views e sem likes gera NaN", likes: 0, views: 0, wantFinite: false},
		{name: "Sem views com likes gera Inf", likes: 3, views: 0, wantFinite: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := NewMetricsRow(day, 100, tt.likes, tt.views)

			assert.Equal(t, tt.wantFinite, row.HasFiniteCTR())
			if tt.wantFinite {
				assert.InDelta(t, tt.wantCTR, row.CTR, 1e-9)
			} else {
				assert.True(t, math.IsNaN(row.CTR) || math.IsInf(row.CTR, 0))
			}
		})
	}
}

func TestMetricsWindow_Last(t *testing.T) {
	var empty MetricsWindow
	_, ok := empty.Last()
	assert.False(t, ok)

	start := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	window := MetricsWindow{}
	for i := 0; i < WindowDays; i++ {
		window = append(window, NewMetricsRow(start.AddDate(0, 0, i), int64(100+10*i), 10, 100))
	}

	last, ok := window.Last()
	assert.True(t, ok)
	assert.Equal(t, window[len(window)-1], last)
	assert.Equal(t, int64(160), last.DAU)
	assert.Len(t, window.Days(), WindowDays)
	assert.Equal(t, start, window.Days()[0])
}
