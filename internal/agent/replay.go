package agent

import (
	"ants-bot/internal/domain"
	"ants-bot/internal/network"
	"context"
	"errors"
)

// ReplayResult - итог проигрывания записи
type ReplayResult struct {
	Output   []string // Что ответил бот сейчас
	Recorded []string // Что бот ответил в записанной партии
	// Diverged - индекс первой несовпавшей строки вывода, -1 если все совпало
	Diverged int
	Turns    int
}

func (r ReplayResult) Matches() bool {
	return r.Diverged < 0
}

// Replay заново играет записанную партию тем же ботом и сравнивает ответы.
// Обрыв записи (нет "end") ошибкой не считается.
func Replay(ctx context.Context, t *domain.Transcript, bot Bot) (ReplayResult, error) {
	conn := network.NewReplayConn(t)
	runner := NewRunner(conn, bot)

	err := runner.Run(ctx)
	if errors.Is(err, domain.ErrUnexpectedEOF) {
		err = nil
	}

	res := ReplayResult{Output: conn.Output, Diverged: -1}
	for _, e := range t.Entries {
		if e.Dir == domain.DirOut {
			res.Recorded = append(res.Recorded, e.Line)
		}
	}
	if w := runner.World(); w != nil {
		res.Turns = w.Turn()
	}

	n := min(len(res.Output), len(res.Recorded))
	for i := 0; i < n; i++ {
		if res.Output[i] != res.Recorded[i] {
			res.Diverged = i
			break
		}
	}
	if res.Diverged < 0 && len(res.Output) != len(res.Recorded) {
		res.Diverged = n
	}
	return res, err
}
