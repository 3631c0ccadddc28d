package domain

// TileKind - вариант содержимого клетки
type TileKind uint8

const (
	TileLand  TileKind = iota // Подтвержденная пустая земля
	TileWater                 // Непроходимая вода. Не меняется до конца игры.
	TileFood
	TileAnt
	TileHill
)

var tileKindToString = map[TileKind]string{
	TileLand:  "LAND",
	TileWater: "WATER",
	TileFood:  "FOOD",
	TileAnt:   "ANT",
	TileHill:  "HILL",
}

func (k TileKind) String() string {
	if val, ok := tileKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// Tile - содержимое одной клетки (закрытый набор вариантов).
// Ant заполнен только для TileAnt, Owner - только для TileHill.
// Создавайте через конструкторы ниже, тогда сравнение через == корректно.
type Tile struct {
	Kind  TileKind `json:"kind"`
	Ant   Ant      `json:"ant"`
	Owner Player   `json:"owner,omitempty"`
}

func LandTile() Tile  { return Tile{Kind: TileLand} }
func WaterTile() Tile { return Tile{Kind: TileWater} }
func FoodTile() Tile  { return Tile{Kind: TileFood} }

func AntTile(a Ant) Tile {
	return Tile{Kind: TileAnt, Ant: a}
}

func HillTile(owner Player) Tile {
	return Tile{Kind: TileHill, Owner: owner}
}

// IsPassable - может ли муравей когда-либо пройти через клетку
func (t Tile) IsPassable() bool {
	return t.Kind != TileWater
}

// IsUnoccupied - на клетке ничего нет (кроме, возможно, мертвых муравьев)
func (t Tile) IsUnoccupied() bool {
	switch t.Kind {
	case TileLand:
		return true
	case TileAnt:
		return !t.Ant.Alive
	default:
		return false
	}
}

// IsMyAnt - живой муравей нашего бота
func (t Tile) IsMyAnt() bool {
	return t.Kind == TileAnt && t.Ant.Alive && t.Ant.Owner.IsMe()
}

// Glyph возвращает символ для ASCII-рендера карты.
// Свои муравьи - 'A', чужие - 'a', мертвые - 'x', муравейники - 'H'/'h'.
func (t Tile) Glyph() byte {
	switch t.Kind {
	case TileWater:
		return '%'
	case TileFood:
		return '*'
	case TileAnt:
		if !t.Ant.Alive {
			return 'x'
		}
		if t.Ant.Owner.IsMe() {
			return 'A'
		}
		return 'a'
	case TileHill:
		if t.Owner.IsMe() {
			return 'H'
		}
		return 'h'
	default:
		return '.'
	}
}

func (t Tile) String() string {
	switch t.Kind {
	case TileAnt:
		state := "alive"
		if !t.Ant.Alive {
			state = "dead"
		}
		return t.Kind.String() + "(" + state + "," + t.Ant.Owner.String() + ")"
	case TileHill:
		return t.Kind.String() + "(" + t.Owner.String() + ")"
	default:
		return t.Kind.String()
	}
}
