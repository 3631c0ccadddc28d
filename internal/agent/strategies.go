package agent

import (
	"ants-bot/internal/domain"
	"ants-bot/internal/engine"
	"ants-bot/internal/systems"
	"ants-bot/pkg/utils"
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Фабрики стратегий по имени (для флага -strategy и конфига)
var strategyFactories = map[string]func(seed int64) Bot{
	"north":   func(int64) Bot { return &NorthBot{} },
	"random":  func(seed int64) Bot { return &RandomBot{Seed: seed} },
	"forager": func(seed int64) Bot { return &ForagerBot{Seed: seed} },
}

// NewBot создает стратегию по имени (без учета регистра).
// seed == 0 - взять player_seed из хендшейка.
func NewBot(name string, seed int64) (Bot, error) {
	factory, ok := strategyFactories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (available: %s)", name, strings.Join(Strategies(), ", "))
	}
	return factory(seed), nil
}

// Strategies возвращает имена всех стратегий (по алфавиту)
func Strategies() []string {
	names := make([]string, 0, len(strategyFactories))
	for name := range strategyFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NorthBot - простейшая стратегия: каждый наш муравей идет на север,
// если клетка не вода и не занята (неизвестная клетка считается землей).
type NorthBot struct{}

func (b *NorthBot) DoTurn(_ context.Context, w *engine.World) error {
	for _, ant := range w.MyAnts() {
		if systems.CanMove(w.Map(), ant, domain.North) {
			w.Order(ant, domain.North)
		}
	}
	return nil
}

// RandomBot - каждый муравей делает случайный возможный шаг.
// Генератор сеется из Seed или из player_seed, так что партия воспроизводима.
type RandomBot struct {
	Seed int64
	rng  *rand.Rand
}

func (b *RandomBot) Start(params domain.Params) error {
	b.rng = utils.NewRand(pickSeed(b.Seed, params))
	return nil
}

func (b *RandomBot) DoTurn(ctx context.Context, w *engine.World) error {
	if b.rng == nil {
		b.rng = utils.NewRand(pickSeed(b.Seed, w.Params()))
	}
	reserved := make(map[domain.Point]bool)
	for _, ant := range w.MyAnts() {
		if ctx.Err() != nil {
			break // Время хода вышло, отправляем то, что успели
		}
		if dir, ok := randomStep(b.rng, w.Map(), ant, reserved); ok {
			w.Order(ant, dir)
		}
	}
	return nil
}

// ForagerBot - жадно ведет каждого муравья к ближайшей видимой еде.
// Муравьи без цели бродят случайно.
type ForagerBot struct {
	Seed int64
	rng  *rand.Rand
}

func (b *ForagerBot) Start(params domain.Params) error {
	b.rng = utils.NewRand(pickSeed(b.Seed, params))
	return nil
}

func (b *ForagerBot) DoTurn(ctx context.Context, w *engine.World) error {
	if b.rng == nil {
		b.rng = utils.NewRand(pickSeed(b.Seed, w.Params()))
	}
	food := w.Food()
	reserved := make(map[domain.Point]bool)

	for _, ant := range w.MyAnts() {
		if ctx.Err() != nil {
			break
		}

		dir, ok := systems.ComputeForageMove(w.Map(), ant, food, reserved)
		if !ok {
			dir, ok = randomStep(b.rng, w.Map(), ant, reserved)
		}
		if !ok {
			continue
		}
		reserved[ant.Step(dir).Wrap(w.Map().Rows(), w.Map().Cols())] = true
		w.Order(ant, dir)
	}
	return nil
}

// randomStep выбирает случайное свободное направление и резервирует клетку назначения
func randomStep(rng *rand.Rand, m *domain.Map, ant domain.Point, reserved map[domain.Point]bool) (domain.Direction, bool) {
	dirs := domain.Directions
	rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	for _, dir := range dirs {
		res := systems.CalculateMove(m, ant, dir)
		if !res.HasMoved || reserved[res.To] {
			continue
		}
		reserved[res.To] = true
		return dir, true
	}
	return domain.North, false
}

func pickSeed(seed int64, params domain.Params) int64 {
	if seed != 0 {
		return seed
	}
	return params.PlayerSeed
}
