// Package jitter разбрасывает длительности задержек: имитации операций витрины
// не срабатывают строго синхронно, а повторы запросов к внешним сервисам не идут пачкой.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultJitter — коэффициент для повторов запросов к внешним сервисам (50%)
const DefaultJitter = 0.5

// Duration возвращает d, увеличенную на случайную долю из [0, factor).
// factor вне диапазона (0, 1] приводится к границе; factor <= 0 возвращает d без изменений.
func Duration(d time.Duration, factor float64) time.Duration {
	if factor <= 0 || d <= 0 {
		return d
	}
	if factor > 1 {
		factor = 1
	}

	return d + time.Duration(rand.Float64()*factor*float64(d))
}

// Backoff — экспоненциальная задержка перед попыткой attempt (с нуля), не больше max, с jitter.
func Backoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt && backoff < max; i++ {
		backoff *= 2
	}
	if backoff > max {
		backoff = max
	}

	return Duration(backoff, factor)
}
