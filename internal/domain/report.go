package domain

import "time"

// ReportPayload é o resultado da renderização entregue ao publicador
type ReportPayload struct {
	Day       time.Time
	Summary   string
	Chart     []byte // PNG
	ChartName string
}

// ReportWindow delimita o período consultado: [Start, End)
type ReportWindow struct {
	Start time.Time
	End   time.Time
}
