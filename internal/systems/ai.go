package systems

import (
	"ants-bot/internal/domain"
	"ants-bot/pkg/logger"

	"github.com/sirupsen/logrus"
)

// NearestFood возвращает ближайшую (на торе) еду к ant.
// ok == false, если еды не видно.
func NearestFood(m *domain.Map, ant domain.Point, food []domain.Point) (domain.Point, bool) {
	best, bestDist := domain.Point{}, -1
	for _, f := range food {
		d := domain.DistanceSquared(ant, f, m.Rows(), m.Cols())
		if bestDist < 0 || d < bestDist {
			best, bestDist = f, d
		}
	}
	return best, bestDist >= 0
}

// ComputeForageMove выбирает шаг муравья к ближайшей еде.
// Это жадный шаг, а не поиск пути: если прямой шаг заблокирован,
// пробуем вторую ось ("скольжение"), иначе стоим.
// reserved - клетки, куда уже отправлены другие наши муравьи в этом ходу.
func ComputeForageMove(m *domain.Map, ant domain.Point, food []domain.Point, reserved map[domain.Point]bool) (domain.Direction, bool) {
	target, ok := NearestFood(m, ant, food)
	if !ok {
		return domain.North, false
	}

	delta := domain.Delta(ant, target, m.Rows(), m.Cols())
	candidates := axisSteps(delta)

	for _, dir := range candidates {
		res := CalculateMove(m, ant, dir)
		if !res.HasMoved || reserved[res.To] {
			continue
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "forage_ai",
			"ant":       ant,
			"food":      target,
			"dir":       dir.String(),
		}).Debug("Forage step chosen.")
		return dir, true
	}

	return domain.North, false // Тупик
}

// axisSteps возвращает направления к цели: сначала по более длинной оси
func axisSteps(delta domain.Point) []domain.Direction {
	var vertical, horizontal []domain.Direction
	switch {
	case delta.Row < 0:
		vertical = []domain.Direction{domain.North}
	case delta.Row > 0:
		vertical = []domain.Direction{domain.South}
	}
	switch {
	case delta.Col < 0:
		horizontal = []domain.Direction{domain.West}
	case delta.Col > 0:
		horizontal = []domain.Direction{domain.East}
	}

	if abs(delta.Col) > abs(delta.Row) {
		return append(horizontal, vertical...)
	}
	return append(vertical, horizontal...)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
