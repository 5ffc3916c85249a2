package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/disintegration/imaging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// tab:gray do matplotlib
var seriesColor = color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}

// RenderPNG desenha o gráfico completo e retorna os bytes do PNG
func RenderPNG(c Chart) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	canvas := imaging.New(Width, Height, color.White)

	canvas = imaging.Paste(canvas, drawTitle(c.Title), image.Pt(0, 0))

	for i, panel := range c.Panels {
		img, err := drawPanel(panel)
		if err != nil {
			return nil, fmt.Errorf("chart: erro ao desenhar painel %q: %w", panel.Title, err)
		}

		x := (i % GridColumns) * PanelWidth
		y := TitleHeight + (i/GridColumns)*PanelHeight
		canvas = imaging.Paste(canvas, img, image.Pt(x, y))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("chart: erro ao codificar PNG: %w", err)
	}

	return buf.Bytes(), nil
}

func drawPanel(panel Panel) (image.Image, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	p.Title.TextStyle.Font.Size = vg.Points(15)
	p.Title.Padding = vg.Points(8)

	loc := panel.Points[0].Day.Location()
	p.X.Tick.Marker = plot.TimeTicks{
		Format: "01-02",
		Time: func(t float64) time.Time {
			return time.Unix(int64(t), 0).In(loc)
		},
	}

	p.Add(plotter.NewGrid())

	// plotter rejeita NaN, então cada trecho finito vira uma linha própria
	for _, segment := range panel.Segments() {
		xys := make(plotter.XYs, len(segment))
		for i, point := range segment {
			xys[i].X = float64(point.Day.Unix())
			xys[i].Y = point.Value
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		line.Color = seriesColor
		line.Width = vg.Points(3)
		points.Shape = draw.CircleGlyph{}
		points.Color = seriesColor
		points.Radius = vg.Points(4)

		p.Add(line, points)
	}

	// o eixo X cobre a janela inteira, inclusive os dias sem valor
	p.X.Min = float64(panel.Points[0].Day.Unix())
	p.X.Max = float64(panel.Points[len(panel.Points)-1].Day.Unix())

	return drawPlot(p, PanelWidth, PanelHeight), nil
}

func drawTitle(text string) image.Image {
	p := plot.New()
	p.Title.Text = text
	p.Title.TextStyle.Font.Size = vg.Points(19)
	p.HideAxes()

	return drawPlot(p, Width, TitleHeight)
}

func drawPlot(p *plot.Plot, widthPx, heightPx int) image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(pixels(widthPx), pixels(heightPx)),
		vgimg.UseDPI(DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(draw.New(c))
	return c.Image()
}

func pixels(px int) vg.Length {
	return vg.Length(px) * vg.Inch / DPI
}
