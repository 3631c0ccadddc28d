package systems

import (
	"ants-bot/internal/domain"
	"ants-bot/pkg/logger"
	"math"

	"github.com/sirupsen/logrus"
)

// VisionOffsets возвращает все смещения (dr, dc), которые видит муравей:
// 0 < dr² + dc² <= radius2. Центр не входит.
//
// Радиус не меняется всю игру, поэтому результат считается один раз
// при создании мира и дальше только читается.
func VisionOffsets(radius2 int) []domain.Point {
	if radius2 <= 0 {
		return nil
	}

	mx := isqrt(radius2)
	offsets := make([]domain.Point, 0, (2*mx+1)*(2*mx+1))
	for dr := -mx; dr <= mx; dr++ {
		for dc := -mx; dc <= mx; dc++ {
			d := dr*dr + dc*dc
			if 0 < d && d <= radius2 {
				offsets = append(offsets, domain.Point{Row: dr, Col: dc})
			}
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component":   "vision_system",
		"viewradius2": radius2,
		"offsets":     len(offsets),
	}).Debug("Vision offsets computed.")

	return offsets
}

// isqrt - floor(sqrt(n)) без ошибок округления float
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// RevealAround помечает как пустую землю все НЕИЗВЕСТНЫЕ клетки в радиусе обзора center.
// Уже известные клетки не трогает, поэтому повторный вызов и пересечение
// радиусов нескольких муравьев ничего не портят.
// Возвращает количество клеток, ставших известными.
func RevealAround(m *domain.Map, center domain.Point, offsets []domain.Point) int {
	revealed := 0
	for _, off := range offsets {
		visible := center.Add(off)
		if _, known := m.Get(visible); known {
			continue
		}
		m.Set(visible, domain.LandTile())
		revealed++
	}
	return revealed
}
