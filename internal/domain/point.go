package domain

import "strconv"

// Point - координата клетки на торе (строка, столбец).
// Сама по себе не нормализуется: заворачивание делается в момент обращения к Map.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// wrap - настоящий модуль, а не остаток от деления: wrap(-1, 5) == 4
func wrap(n, max int) int {
	n %= max
	if n < 0 {
		n += max
	}
	return n
}

// Wrap нормализует координату в [0, rows) x [0, cols)
func (p Point) Wrap(rows, cols int) Point {
	return Point{Row: wrap(p.Row, rows), Col: wrap(p.Col, cols)}
}

// Add складывает покомпонентно. Результат НЕ заворачивается.
func (p Point) Add(other Point) Point {
	return Point{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

// Step возвращает соседнюю клетку в направлении d (без заворачивания)
func (p Point) Step(d Direction) Point {
	return p.Add(d.Vector())
}

// String возвращает координату в формате протокола: "<row> <col>"
func (p Point) String() string {
	return strconv.Itoa(p.Row) + " " + strconv.Itoa(p.Col)
}

// DistanceSquared возвращает квадрат расстояния между точками на торе.
// По каждой оси берется кратчайший путь (через край карты или напрямую).
func DistanceSquared(a, b Point, rows, cols int) int {
	dr := axisDelta(a.Row, b.Row, rows)
	dc := axisDelta(a.Col, b.Col, cols)
	return dr*dr + dc*dc
}

// Delta возвращает кратчайшее смещение от a к b на торе (со знаком)
func Delta(a, b Point, rows, cols int) Point {
	return Point{
		Row: signedDelta(a.Row, b.Row, rows),
		Col: signedDelta(a.Col, b.Col, cols),
	}
}

func axisDelta(a, b, size int) int {
	d := wrap(b-a, size)
	if size-d < d {
		return size - d
	}
	return d
}

func signedDelta(a, b, size int) int {
	d := wrap(b-a, size)
	if d > size/2 {
		return d - size
	}
	return d
}
