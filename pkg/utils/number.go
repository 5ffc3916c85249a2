package utils

import "fmt"

// FormatPercent formata uma razão (0.25) como porcentagem com duas casas ("25.00%")
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}
