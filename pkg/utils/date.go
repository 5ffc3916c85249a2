package utils

import "time"

// StartOfDay retorna a meia-noite do dia de t no fuso informado
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// TrailingDays retorna o intervalo [início, fim) dos `days` dias anteriores a t,
// terminando em ontem
func TrailingDays(t time.Time, days int, loc *time.Location) (time.Time, time.Time) {
	end := StartOfDay(t, loc)
	return end.AddDate(0, 0, -days), end
}
