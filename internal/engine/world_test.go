package engine

import (
	"ants-bot/internal/domain"
	"ants-bot/pkg/logger"
	"errors"
	"fmt"
	"math"
	"testing"
)

// exampleParams - параметры из стандартного хендшейка
func exampleParams() domain.Params {
	return domain.Params{
		LoadTime:      3000,
		TurnTime:      1000,
		Rows:          20,
		Cols:          20,
		Turns:         500,
		ViewRadius2:   55,
		AttackRadius2: 5,
		SpawnRadius2:  1,
		PlayerSeed:    42,
	}
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	logger.Silence()
	w, err := NewWorld(exampleParams())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func mustUpdate(t *testing.T, w *World, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if err := w.Update(line); err != nil {
			t.Fatalf("Update(%q): %v", line, err)
		}
	}
}

// snapshot копирует состояние карты для сравнения
func snapshot(w *World) map[domain.Point]domain.Cell {
	out := make(map[domain.Point]domain.Cell)
	for p, c := range w.Map().All() {
		out[p] = c
	}
	return out
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(t)
	if w.Turn() != 0 {
		t.Errorf("Turn() = %d, want 0", w.Turn())
	}
	if w.Map().Rows() != 20 || w.Map().Cols() != 20 {
		t.Errorf("map size %dx%d", w.Map().Rows(), w.Map().Cols())
	}
	if w.Map().Known() != 0 {
		t.Errorf("fresh world knows %d cells", w.Map().Known())
	}
	if len(w.VisionOffsets()) != 176 {
		t.Errorf("vision offsets = %d, want 176", len(w.VisionOffsets()))
	}

	// Копия не должна влиять на кэш
	offsets := w.VisionOffsets()
	offsets[0] = domain.Point{Row: 100, Col: 100}
	if w.VisionOffsets()[0] == offsets[0] {
		t.Error("VisionOffsets returned the internal slice")
	}
}

func TestNewWorld_InvalidParams(t *testing.T) {
	logger.Silence()
	p := exampleParams()
	p.Rows = 0
	if _, err := NewWorld(p); !errors.Is(err, domain.ErrBadParameter) {
		t.Errorf("NewWorld error = %v, want ErrBadParameter", err)
	}
}

func TestWorld_EndToEndTurn(t *testing.T) {
	w := newTestWorld(t)
	mustUpdate(t, w, "turn 1", "a 3 4 0", "w 0 0")

	if w.Turn() != 1 {
		t.Errorf("Turn() = %d, want 1", w.Turn())
	}
	if tile, ok := w.Map().Get(domain.Point{Row: 0, Col: 0}); !ok || tile != domain.WaterTile() {
		t.Errorf("(0,0) = %v, %v; want water", tile, ok)
	}
	ant := domain.Point{Row: 3, Col: 4}
	if tile, ok := w.Map().Get(ant); !ok || !tile.IsMyAnt() {
		t.Errorf("(3,4) = %v, %v; want my living ant", tile, ok)
	}

	for p, c := range w.Map().All() {
		d := domain.DistanceSquared(ant, p, 20, 20)
		if d > 0 && d <= 55 && !c.Known {
			t.Fatalf("%v is within vision of %v but unknown", p, ant)
		}
	}
}

func TestWorld_TileVariants(t *testing.T) {
	w := newTestWorld(t)
	mustUpdate(t, w, "f 1 1", "h 2 2 1", "a 3 3 2", "d 4 4 0", "w -1 -1")

	tests := []struct {
		p    domain.Point
		want domain.Tile
	}{
		{domain.Point{Row: 1, Col: 1}, domain.FoodTile()},
		{domain.Point{Row: 2, Col: 2}, domain.HillTile(1)},
		{domain.Point{Row: 3, Col: 3}, domain.AntTile(domain.Ant{Alive: true, Owner: 2})},
		{domain.Point{Row: 4, Col: 4}, domain.AntTile(domain.Ant{Alive: false, Owner: domain.Me})},
		{domain.Point{Row: 19, Col: 19}, domain.WaterTile()},
	}
	for _, tt := range tests {
		if got, ok := w.Map().Get(tt.p); !ok || got != tt.want {
			t.Errorf("Get(%v) = %v, %v; want %v", tt.p, got, ok, tt.want)
		}
	}

	// Ни чужие, ни мертвые свои муравьи обзор не дают
	if w.Map().Known() != 5 {
		t.Errorf("Known() = %d, want 5", w.Map().Known())
	}
}

func TestWorld_VisionIdempotent(t *testing.T) {
	once := newTestWorld(t)
	mustUpdate(t, once, "a 5 5 0")

	twice := newTestWorld(t)
	mustUpdate(t, twice, "a 5 5 0", "a 5 5 0")

	a, b := snapshot(once), snapshot(twice)
	for p, c := range a {
		if b[p] != c {
			t.Fatalf("cell %v: once=%v twice=%v", p, c, b[p])
		}
	}
}

func TestWorld_VisionDoesNotOverwrite(t *testing.T) {
	w := newTestWorld(t)
	food := domain.Point{Row: 5, Col: 7}
	enemy := domain.Point{Row: 6, Col: 5}
	mustUpdate(t, w, "f 5 7", "a 6 5 1", "a 5 5 0", "a 5 6 0")

	if tile, _ := w.Map().Get(food); tile != domain.FoodTile() {
		t.Errorf("food overwritten with %v", tile)
	}
	if tile, _ := w.Map().Get(enemy); tile.Kind != domain.TileAnt {
		t.Errorf("enemy ant overwritten with %v", tile)
	}
}

func TestWorld_VisionOrderInsensitive(t *testing.T) {
	// Еда до муравья и после муравья дает одинаковое состояние
	before := newTestWorld(t)
	mustUpdate(t, before, "f 5 7", "a 5 5 0", "a 8 8 0")

	after := newTestWorld(t)
	mustUpdate(t, after, "a 8 8 0", "a 5 5 0", "f 5 7")

	a, b := snapshot(before), snapshot(after)
	for p, c := range a {
		if b[p] != c {
			t.Fatalf("cell %v: %v vs %v", p, c, b[p])
		}
	}
}

func TestWorld_Clear(t *testing.T) {
	w := newTestWorld(t)
	mustUpdate(t, w, "turn 1", "w 0 0", "f 1 1", "a 3 4 0")
	w.Clear()

	if w.Map().Known() != 1 {
		t.Errorf("Known() after clear = %d, want 1", w.Map().Known())
	}
	if _, ok := w.Map().Get(domain.Point{Row: 1, Col: 1}); ok {
		t.Error("food should be forgotten")
	}
	if w.Turn() != 1 {
		t.Error("Clear must not touch the turn counter")
	}
}

func TestWorld_UpdateErrorsLeaveMapUntouched(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"x 1 2", domain.ErrUnknownCommand},
		{"a 1 2", domain.ErrUnknownCommand},
		{"w 1 2 3", domain.ErrUnknownCommand},
		{"turn", domain.ErrUnknownCommand},
		{"turn one", domain.ErrBadInteger},
		{"f one 2", domain.ErrBadInteger},
		{"a 1 2 me", domain.ErrBadInteger},
		{"   ", domain.ErrUnexpectedLine},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			w := newTestWorld(t)
			mustUpdate(t, w, "turn 3", "w 0 0", "a 3 4 0")
			before := snapshot(w)

			err := w.Update(tt.line)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Update(%q) error = %v, want %v", tt.line, err, tt.want)
			}
			var perr *domain.ParseError
			if !errors.As(err, &perr) || perr.Line != tt.line {
				t.Errorf("error should be a *ParseError for the line, got %T", err)
			}

			after := snapshot(w)
			for p, c := range before {
				if after[p] != c {
					t.Fatalf("cell %v changed: %v -> %v", p, c, after[p])
				}
			}
			if w.Turn() != 3 {
				t.Errorf("turn changed to %d", w.Turn())
			}
		})
	}
}

func TestWorld_Orders(t *testing.T) {
	w := newTestWorld(t)
	w.Order(domain.Point{Row: 3, Col: 4}, domain.North)
	w.Order(domain.Point{Row: 3, Col: 4}, domain.East) // дубликаты разрешены
	w.Order(domain.Point{Row: -1, Col: 21}, domain.West)

	want := []string{"o 3 4 n", "o 3 4 e", "o 19 1 w"}
	got := w.TakeOrders()
	if len(got) != len(want) {
		t.Fatalf("got %d orders, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("order %d = %q, want %q", i, got[i].String(), want[i])
		}
	}
	if len(w.Orders()) != 0 {
		t.Error("TakeOrders should drain the buffer")
	}
}

func TestWorld_MyAntsAndFood(t *testing.T) {
	w := newTestWorld(t)
	mustUpdate(t, w, "a 2 2 0", "a 1 1 0", "a 3 3 1", "d 4 4 0", "f 9 9", "f 0 5")

	ants := w.MyAnts()
	if len(ants) != 2 || ants[0] != (domain.Point{Row: 1, Col: 1}) || ants[1] != (domain.Point{Row: 2, Col: 2}) {
		t.Errorf("MyAnts() = %v", ants)
	}
	food := w.Food()
	if len(food) != 2 || food[0] != (domain.Point{Row: 0, Col: 5}) {
		t.Errorf("Food() = %v", food)
	}
}

func TestWorld_HugeCoordinatesWrapBeforeVision(t *testing.T) {
	w := newTestWorld(t)
	mustUpdate(t, w, fmt.Sprintf("a %d %d 0", math.MaxInt, math.MinInt))

	center := domain.Point{Row: math.MaxInt, Col: math.MinInt}.Wrap(20, 20)
	if ants := w.MyAnts(); len(ants) != 1 || ants[0] != center {
		t.Fatalf("MyAnts() = %v, want [%v]", ants, center)
	}

	// Вся окрестность считается от завернутого центра
	for _, off := range w.VisionOffsets() {
		p := center.Add(off)
		if tile, ok := w.Map().Get(p); !ok || tile != domain.LandTile() {
			t.Fatalf("cell %v (offset %v) should be revealed land", p.Wrap(20, 20), off)
		}
	}
	if got, want := w.Map().Known(), len(w.VisionOffsets())+1; got != want {
		t.Errorf("Known() = %d, want %d", got, want)
	}
}
