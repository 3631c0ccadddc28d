package systems

import (
	"ants-bot/internal/domain"
)

// MovementResult - результат проверки хода
type MovementResult struct {
	To       domain.Point // Клетка назначения (уже завернутая)
	HasMoved bool
	IsWater  bool         // Если уперлись в воду
	Blocker  *domain.Tile // Если клетка занята (еда, живой муравей, муравейник)
}

// CalculateMove проверяет ход муравья из from в направлении dir. Не меняет карту!
//
// Неизвестная клетка считается проходимой землей: мы ее просто не видим.
// Это только подсказка стратегии, окончательно ход разрешает движок.
func CalculateMove(m *domain.Map, from domain.Point, dir domain.Direction) MovementResult {
	to := from.Step(dir).Wrap(m.Rows(), m.Cols())
	res := MovementResult{To: to}

	tile, known := m.Get(to)
	if !known {
		res.HasMoved = true
		return res
	}

	// 1. Вода непроходима навсегда
	if !tile.IsPassable() {
		res.IsWater = true
		return res
	}

	// 2. Занятая клетка (мертвые муравьи не мешают)
	if !tile.IsUnoccupied() {
		res.Blocker = &tile
		return res
	}

	res.HasMoved = true
	return res
}

// CanMove - короткая форма CalculateMove
func CanMove(m *domain.Map, from domain.Point, dir domain.Direction) bool {
	return CalculateMove(m, from, dir).HasMoved
}
