package engine

import (
	"ants-bot/internal/domain"
	"ants-bot/internal/systems"
	"ants-bot/pkg/logger"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Order - приказ муравью в клетке Point сделать шаг в направлении Dir
type Order struct {
	Point domain.Point
	Dir   domain.Direction
}

// String возвращает строку протокола: "o <row> <col> <n|s|e|w>"
func (o Order) String() string {
	return "o " + o.Point.String() + " " + o.Dir.String()
}

// World - все, что бот знает об игре.
//
// Жизненный цикл хода:
//  1. Clear -> забываем все, кроме воды.
//  2. Update (по строке) -> применяем дифф от движка, обзор своих муравьев пересчитывается сразу.
//  3. Стратегия читает карту и вызывает Order.
//  4. Драйвер забирает приказы (TakeOrders) и отправляет их вместе с "go".
type World struct {
	params  domain.Params
	turn    int
	gameMap *domain.Map

	// Смещения обзора считаются один раз: радиус не меняется всю игру
	visionOffsets []domain.Point

	orders []Order
	log    *logrus.Entry
}

// NewWorld создает мир по параметрам игры
func NewWorld(params domain.Params) (*World, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	m, err := domain.NewMap(params.Rows, params.Cols)
	if err != nil {
		return nil, err
	}

	w := &World{
		params:        params,
		gameMap:       m,
		visionOffsets: systems.VisionOffsets(params.ViewRadius2),
		log:           logger.Log.WithField("component", "world"),
	}

	w.log.WithFields(logrus.Fields{
		"rows":           params.Rows,
		"cols":           params.Cols,
		"turns":          params.Turns,
		"vision_offsets": len(w.visionOffsets),
	}).Info("World created.")

	return w, nil
}

// Params возвращает параметры игры (копию)
func (w *World) Params() domain.Params { return w.params }

// Map возвращает карту. Стратегии могут ее читать, писать в нее должен только World.
func (w *World) Map() *domain.Map { return w.gameMap }

// Turn возвращает номер текущего хода
func (w *World) Turn() int { return w.turn }

// VisionOffsets возвращает копию закэшированных смещений обзора
func (w *World) VisionOffsets() []domain.Point {
	out := make([]domain.Point, len(w.visionOffsets))
	copy(out, w.visionOffsets)
	return out
}

// Clear забывает все клетки, кроме воды (вода не меняется между ходами).
// Вызывается один раз в начале каждого хода, до его диффов.
func (w *World) Clear() {
	w.gameMap.ClearExceptWater()
}

// Update применяет одну строку диффа от движка.
//
// Пустые строки и "go" сюда не передаются, их обрабатывает драйвер.
// Строка сначала разбирается целиком и только потом пишется в карту,
// поэтому ошибка разбора карту не меняет.
func (w *World) Update(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return &domain.ParseError{Line: line, Err: domain.ErrUnexpectedLine}
	}

	if fields[0] == "turn" {
		if len(fields) != 2 {
			return &domain.ParseError{Line: line, Err: domain.ErrUnknownCommand}
		}
		turn, err := parseField("turn", fields[1])
		if err != nil {
			return &domain.ParseError{Line: line, Err: err}
		}
		w.turn = turn
		w.log.WithField("turn", turn).Debug("Turn started.")
		return nil
	}

	point, tile, err := parseTileLine(fields)
	if err != nil {
		return &domain.ParseError{Line: line, Err: err}
	}

	// Разбор успешен, теперь можно писать.
	// Смещения обзора прибавляются к уже завернутой точке, иначе огромные координаты переполнятся.
	point = point.Wrap(w.params.Rows, w.params.Cols)
	w.gameMap.Set(point, tile)
	if tile.IsMyAnt() {
		revealed := systems.RevealAround(w.gameMap, point, w.visionOffsets)
		w.log.WithFields(logrus.Fields{
			"ant":      point,
			"revealed": revealed,
		}).Debug("Vision refreshed.")
	}
	return nil
}

// parseTileLine разбирает "w r c", "f r c", "h r c o", "a r c o", "d r c o"
func parseTileLine(fields []string) (domain.Point, domain.Tile, error) {
	var (
		point domain.Point
		tile  domain.Tile
	)

	kind := fields[0]
	arity := 0
	switch kind {
	case "w", "f":
		arity = 3
	case "h", "a", "d":
		arity = 4
	default:
		return point, tile, fmt.Errorf("%w: %q", domain.ErrUnknownCommand, kind)
	}
	if len(fields) != arity {
		return point, tile, fmt.Errorf("%w: %q expects %d fields, got %d", domain.ErrUnknownCommand, kind, arity, len(fields))
	}

	row, err := parseField("row", fields[1])
	if err != nil {
		return point, tile, err
	}
	col, err := parseField("col", fields[2])
	if err != nil {
		return point, tile, err
	}
	point = domain.Point{Row: row, Col: col}

	switch kind {
	case "w":
		return point, domain.WaterTile(), nil
	case "f":
		return point, domain.FoodTile(), nil
	}

	owner, err := domain.ParsePlayer(fields[3])
	if err != nil {
		return point, tile, err
	}
	switch kind {
	case "h":
		tile = domain.HillTile(owner)
	case "a":
		tile = domain.AntTile(domain.Ant{Alive: true, Owner: owner})
	default:
		tile = domain.AntTile(domain.Ant{Alive: false, Owner: owner})
	}
	return point, tile, nil
}

func parseField(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", domain.ErrBadInteger, name, s, err)
	}
	return n, nil
}

// Order записывает приказ для муравья в клетке p.
// World не проверяет, что там есть наш муравей и что шаг возможен:
// это забота стратегии, конфликты разрешает движок.
func (w *World) Order(p domain.Point, dir domain.Direction) {
	w.orders = append(w.orders, Order{
		Point: p.Wrap(w.params.Rows, w.params.Cols),
		Dir:   dir,
	})
}

// Orders возвращает приказы текущего хода (без очистки)
func (w *World) Orders() []Order {
	out := make([]Order, len(w.orders))
	copy(out, w.orders)
	return out
}

// TakeOrders возвращает приказы текущего хода и очищает буфер
func (w *World) TakeOrders() []Order {
	out := w.orders
	w.orders = nil
	return out
}

// MyAnts возвращает клетки наших живых муравьев (построчно)
func (w *World) MyAnts() []domain.Point {
	var ants []domain.Point
	for p, c := range w.gameMap.All() {
		if c.Known && c.Tile.IsMyAnt() {
			ants = append(ants, p)
		}
	}
	return ants
}

// Food возвращает все видимые клетки с едой
func (w *World) Food() []domain.Point {
	var food []domain.Point
	for p, c := range w.gameMap.All() {
		if c.Known && c.Tile.Kind == domain.TileFood {
			food = append(food, p)
		}
	}
	return food
}
