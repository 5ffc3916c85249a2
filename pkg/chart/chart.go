// Package chart desenha gráficos de linha em grade 2x2 e devolve o PNG em memória.
//
// Cada painel é desenhado separadamente com gonum/plot e os painéis são
// compostos numa única imagem com disintegration/imaging, abaixo de uma faixa
// de título.
package chart

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Dimensões em pixels da imagem final
const (
	GridColumns = 2
	GridRows    = 2

	PanelWidth  = 900
	PanelHeight = 650
	TitleHeight = 100

	Width  = GridColumns * PanelWidth
	Height = TitleHeight + GridRows*PanelHeight

	DPI = 100
)

var (
	ErrPanelCount    = errors.New("chart: quantidade de painéis inválida")
	ErrEmptyPanel    = errors.New("chart: painel sem pontos")
	ErrNonFiniteData = errors.New("chart: painel sem nenhum valor finito")
)

type Point struct {
	Day   time.Time
	Value float64
}

type Panel struct {
	Title  string
	Points []Point
}

type Chart struct {
	Title  string
	Panels []Panel
}

// Validate garante que o gráfico preenche a grade e que cada painel tem ao menos um valor plotável.
// Valores NaN ou infinitos viram lacunas na linha.
func (c Chart) Validate() error {
	if len(c.Panels) != GridColumns*GridRows {
		return fmt.Errorf("%w: esperado %d, recebido %d", ErrPanelCount, GridColumns*GridRows, len(c.Panels))
	}

	for _, panel := range c.Panels {
		if len(panel.Points) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyPanel, panel.Title)
		}
		if len(panel.Segments()) == 0 {
			return fmt.Errorf("%w: %s", ErrNonFiniteData, panel.Title)
		}
	}

	return nil
}

// Segments divide os pontos do painel em trechos contínuos de valores finitos
func (p Panel) Segments() [][]Point {
	var (
		segments [][]Point
		current  []Point
	)
	for _, point := range p.Points {
		if !isFinite(point.Value) {
			if len(current) > 0 {
				segments = append(segments, current)
				current = nil
			}
			continue
		}
		current = append(current, point)
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}

	return segments
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
