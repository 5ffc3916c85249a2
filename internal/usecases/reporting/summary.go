package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/feed-report-bot/internal/domain"
	"github.com/vfg2006/feed-report-bot/pkg/utils"
)

// BuildSummary monta a mensagem do dia mais recente em Markdown do Telegram
func BuildSummary(row domain.MetricsRow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Relatório de *%s*\n", row.Day.Format(time.DateOnly))
	fmt.Fprintf(&b, "• DAU: *%d*\n", row.DAU)
	fmt.Fprintf(&b, "• Visualizações: *%d*\n", row.Views)
	fmt.Fprintf(&b, "• Curtidas: *%d*\n", row.Likes)
	fmt.Fprintf(&b, "• CTR: *%s*", utils.FormatPercent(row.CTR))

	return b.String()
}

// ChartFileName retorna o nome do anexo enviado junto ao gráfico
func ChartFileName(day time.Time) string {
	return fmt.Sprintf("report_%s.png", day.Format(time.DateOnly))
}
