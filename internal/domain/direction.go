package domain

import "strings"

// Direction - одно из четырех направлений хода. Диагоналей нет.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions - все направления в фиксированном порядке (для перебора стратегиями)
var Directions = [4]Direction{North, South, East, West}

var directionVectors = map[Direction]Point{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	East:  {Row: 0, Col: 1},
	West:  {Row: 0, Col: -1},
}

// Маппинг для протокола Domain -> String
var directionToString = map[Direction]string{
	North: "n",
	South: "s",
	East:  "e",
	West:  "w",
}

var directionStringToType = map[string]Direction{
	"n": North,
	"s": South,
	"e": East,
	"w": West,
}

// Vector возвращает единичное смещение для направления
func (d Direction) Vector() Point {
	return directionVectors[d]
}

// String реализует Stringer. Возвращает букву протокола (n/s/e/w).
func (d Direction) String() string {
	if val, ok := directionToString[d]; ok {
		return val
	}
	return "?"
}

// ParseDirection конвертирует букву протокола в Direction
func ParseDirection(s string) (Direction, bool) {
	d, ok := directionStringToType[strings.ToLower(s)]
	return d, ok
}
