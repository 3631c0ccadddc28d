package domain

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// LineReader - источник строк протокола. На конце ввода возвращает io.EOF.
type LineReader interface {
	ReadLine() (string, error)
}

// Params - параметры игры, присылаются один раз до первого хода
type Params struct {
	LoadTime      int   `json:"loadtime" yaml:"loadtime"` // мс на подготовку
	TurnTime      int   `json:"turntime" yaml:"turntime"` // мс на ход
	Rows          int   `json:"rows" yaml:"rows"`
	Cols          int   `json:"cols" yaml:"cols"`
	Turns         int   `json:"turns" yaml:"turns"`
	ViewRadius2   int   `json:"viewradius2" yaml:"viewradius2"`
	AttackRadius2 int   `json:"attackradius2" yaml:"attackradius2"`
	SpawnRadius2  int   `json:"spawnradius2" yaml:"spawnradius2"`
	PlayerSeed    int64 `json:"player_seed" yaml:"player_seed"`
}

// ReadParams читает хендшейк: "turn 0", затем пары "ключ значение", затем "ready"
func ReadParams(r LineReader) (Params, error) {
	var params Params

	first, err := r.ReadLine()
	if err != nil {
		return params, handshakeReadErr(err)
	}
	if strings.TrimSpace(first) != "turn 0" {
		return params, parseErr(first, ErrUnexpectedLine)
	}

	for {
		line, err := r.ReadLine()
		if err != nil {
			return params, handshakeReadErr(err)
		}
		line = strings.TrimSpace(line)
		if line == "ready" {
			return params, nil
		}
		if err := params.Update(line); err != nil {
			return params, err
		}
	}
}

func handshakeReadErr(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("setup: %w", ErrUnexpectedEOF)
	}
	return IOError("setup", err)
}

// Update разбирает одну строку настроек и обновляет себя
func (p *Params) Update(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return parseErr(line, ErrBadParameter)
	}
	key, val := fields[0], fields[1]

	if key == "player_seed" {
		seed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return parseErr(line, fmt.Errorf("%w: %s %q: %w", ErrBadInteger, key, val, err))
		}
		p.PlayerSeed = seed
		return nil
	}

	var dst *int
	switch key {
	case "loadtime":
		dst = &p.LoadTime
	case "turntime":
		dst = &p.TurnTime
	case "rows":
		dst = &p.Rows
	case "cols":
		dst = &p.Cols
	case "turns":
		dst = &p.Turns
	case "viewradius2":
		dst = &p.ViewRadius2
	case "attackradius2":
		dst = &p.AttackRadius2
	case "spawnradius2":
		dst = &p.SpawnRadius2
	default:
		return parseErr(line, ErrBadParameter)
	}

	n, err := parseInt(key, val)
	if err != nil {
		return parseErr(line, err)
	}
	*dst = n
	return nil
}

// Validate проверяет, что из параметров можно построить мир
func (p Params) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: map size %dx%d", ErrBadParameter, p.Rows, p.Cols)
	}
	if p.ViewRadius2 < 0 || p.AttackRadius2 < 0 || p.SpawnRadius2 < 0 {
		return fmt.Errorf("%w: negative radius", ErrBadParameter)
	}
	if p.LoadTime < 0 || p.TurnTime < 0 {
		return fmt.Errorf("%w: negative time limit", ErrBadParameter)
	}
	return nil
}

// LoadTimeout - время на подготовку. Только для информации, ядро его не соблюдает.
func (p Params) LoadTimeout() time.Duration {
	return time.Duration(p.LoadTime) * time.Millisecond
}

// TurnTimeout - время на один ход
func (p Params) TurnTimeout() time.Duration {
	return time.Duration(p.TurnTime) * time.Millisecond
}
