// Package alert clasifica productos por fecha de validez.
package alert

import (
	"math"
	"time"

	"github.com/jhoicas/donaciones-api/internal/domain/entity"
)

// DefaultExpiringWindowDays días antes del vencimiento en que un producto pasa a "por vencer".
const DefaultExpiringWindowDays = 30

// DaysUntilExpiry = ceil((validity - now) / 24h). Cero o negativo: vencido.
func DaysUntilExpiry(validity, now time.Time) int {
	return int(math.Ceil(validity.Sub(now).Hours() / 24))
}

// Classify devuelve el tipo de alerta para la fecha de validez, o "" si no aplica.
func Classify(validity, now time.Time, windowDays int) string {
	if validity.IsZero() {
		return ""
	}
	days := DaysUntilExpiry(validity, now)
	switch {
	case days <= 0:
		return entity.NotificationExpired
	case days <= windowDays:
		return entity.NotificationExpiring
	}
	return ""
}

// Cutoff último instante de validez que todavía genera alerta.
func Cutoff(now time.Time, windowDays int) time.Time {
	return now.Add(time.Duration(windowDays) * 24 * time.Hour)
}
