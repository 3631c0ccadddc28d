package domain

import (
	"fmt"
	"strconv"
)

// Player - владелец муравья или муравейника.
// В протоколе 0 всегда означает нас (Me), остальные числа - соперников.
type Player uint8

// Me - наш бот
const Me Player = 0

// ParsePlayer разбирает десятичный литерал владельца из протокола
func ParsePlayer(s string) (Player, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return Me, fmt.Errorf("%w: player %q: %w", ErrBadInteger, s, err)
	}
	return Player(n), nil
}

// IsMe сообщает, принадлежит ли объект нам
func (p Player) IsMe() bool {
	return p == Me
}

func (p Player) String() string {
	if p.IsMe() {
		return "me"
	}
	return "p" + strconv.Itoa(int(p))
}

// Ant - муравей. Несколько мертвых муравьев в одной клетке схлопываются в одно значение.
type Ant struct {
	Alive bool   `json:"alive"`
	Owner Player `json:"owner"`
}

// parseInt - общий хелпер для целочисленных полей протокола
func parseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", ErrBadInteger, field, s, err)
	}
	return n, nil
}
