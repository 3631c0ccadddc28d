package domain

import (
	"fmt"
	"iter"
	"strings"
)

// Cell - слот карты с флагом присутствия.
// Known == false означает "сейчас не наблюдается", Tile в этом случае не используется.
type Cell struct {
	Tile  Tile `json:"tile"`
	Known bool `json:"known"`
}

// Map - тороидальная сетка фиксированного размера.
// Размеры задаются при создании и больше не меняются.
type Map struct {
	rows  int
	cols  int
	cells []Cell
}

// NewMap создает карту rows x cols, все клетки неизвестны
func NewMap(rows, cols int) (*Map, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", rows, cols)
	}
	return &Map{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

func (m *Map) Rows() int { return m.rows }
func (m *Map) Cols() int { return m.cols }

// index заворачивает точку и возвращает индекс в плоском слайсе.
// Ключ: Row * cols + Col
func (m *Map) index(p Point) int {
	w := p.Wrap(m.rows, m.cols)
	return w.Row*m.cols + w.Col
}

// Get возвращает содержимое клетки. ok == false, если клетка сейчас неизвестна.
func (m *Map) Get(p Point) (Tile, bool) {
	c := m.cells[m.index(p)]
	return c.Tile, c.Known
}

// Set записывает известное содержимое клетки
func (m *Map) Set(p Point, t Tile) {
	m.cells[m.index(p)] = Cell{Tile: t, Known: true}
}

// Forget делает клетку снова неизвестной
func (m *Map) Forget(p Point) {
	m.cells[m.index(p)] = Cell{}
}

// All обходит все клетки ровно один раз (построчно).
// Можно вызывать повторно, каждый вызов начинает новый проход.
func (m *Map) All() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for i, c := range m.cells {
			p := Point{Row: i / m.cols, Col: i % m.cols}
			if !yield(p, c) {
				return
			}
		}
	}
}

// ClearExceptWater забывает все клетки, кроме воды.
// Вода постоянна, все остальное устаревает к следующему ходу.
func (m *Map) ClearExceptWater() {
	for p, c := range m.All() {
		if c.Known && c.Tile.Kind == TileWater {
			continue
		}
		m.Forget(p)
	}
}

// Known возвращает количество известных клеток
func (m *Map) Known() int {
	n := 0
	for _, c := range m.cells {
		if c.Known {
			n++
		}
	}
	return n
}

// Render рисует карту в ASCII (неизвестные клетки - '?')
func (m *Map) Render() string {
	var b strings.Builder
	b.Grow((m.cols + 1) * m.rows)
	for i, c := range m.cells {
		if c.Known {
			b.WriteByte(c.Tile.Glyph())
		} else {
			b.WriteByte('?')
		}
		if (i+1)%m.cols == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
