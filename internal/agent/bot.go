package agent

import (
	"ants-bot/internal/domain"
	"ants-bot/internal/engine"
	"ants-bot/internal/network"
	"ants-bot/internal/version"
	"ants-bot/pkg/logger"
	"ants-bot/pkg/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Bot - стратегия бота: "по текущему миру отдать ноль или больше приказов".
// Вызывается ровно один раз за ход, когда весь ввод хода уже применен.
//
// ctx несет дедлайн хода (turntime). Ядро ничего не прерывает принудительно,
// следить за временем - забота стратегии.
type Bot interface {
	DoTurn(ctx context.Context, w *engine.World) error
}

// Starter - необязательная подготовка стратегии после хендшейка
// (например, посев генератора случайных чисел из player_seed).
type Starter interface {
	Start(params domain.Params) error
}

// Runner - драйвер ходов. Читает протокол, ведет World и вызывает Bot.
//
// Жизненный цикл:
//  1. Хендшейк: "turn 0", параметры, "ready" -> создаем World, отвечаем "go".
//  2. Строки хода -> World.Update.
//  3. "go" -> Bot.DoTurn, отправка приказов и "go", World.Clear.
//  4. "end" или конец ввода между ходами -> партия окончена.
type Runner struct {
	Conn network.Conn
	Bot  Bot
	// Transcript - необязательная запись партии (nil = не записывать)
	Transcript *domain.Transcript

	world *engine.World
	// midTurn - после последнего "go" уже пришли строки хода
	midTurn bool
	log     *logrus.Entry
}

func NewRunner(conn network.Conn, bot Bot) *Runner {
	return &Runner{
		Conn: conn,
		Bot:  bot,
		log:  newRunnerLog(),
	}
}

// Каждая партия получает свой id, чтобы логи нескольких ботов можно было разделить
func newRunnerLog() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "runner",
		"game":      utils.GenerateID(),
	})
}

// World возвращает мир текущей партии (nil до хендшейка)
func (r *Runner) World() *engine.World {
	return r.world
}

// Run играет одну партию до "end" или конца ввода
func (r *Runner) Run(ctx context.Context) error {
	if r.log == nil {
		r.log = newRunnerLog()
	}
	if r.Bot == nil {
		return errors.New("runner: bot is nil")
	}

	// --- ШАГ 1: ХЕНДШЕЙК ---
	params, err := domain.ReadParams(lineReaderFunc(r.readLine))
	if err != nil {
		return err
	}
	world, err := engine.NewWorld(params)
	if err != nil {
		return err
	}
	r.world = world

	if r.Transcript != nil {
		r.Transcript.Seed = params.PlayerSeed
		r.Transcript.Rows = params.Rows
		r.Transcript.Cols = params.Cols
	}

	if s, ok := r.Bot.(Starter); ok {
		if err := s.Start(params); err != nil {
			return fmt.Errorf("start bot: %w", err)
		}
	}

	if err := r.send(nil); err != nil {
		return err
	}
	r.log.WithFields(version.Current().Fields()).WithFields(logrus.Fields{
		"rows":     params.Rows,
		"cols":     params.Cols,
		"turns":    params.Turns,
		"loadtime": params.LoadTimeout(),
		"turntime": params.TurnTimeout(),
	}).Info("Setup complete, game started.")

	// --- ШАГ 2: ЦИКЛ ХОДОВ ---
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := r.readLine()
		if errors.Is(err, io.EOF) {
			if !r.midTurn {
				r.log.WithField("turn", world.Turn()).Info("Input closed, game over.")
				return nil
			}
			// Мир остается в последнем согласованном состоянии
			return fmt.Errorf("turn %d: %w", world.Turn(), domain.ErrUnexpectedEOF)
		}
		if err != nil {
			return domain.IOError(fmt.Sprintf("turn %d", world.Turn()), err)
		}

		switch line {
		case "":
			continue
		case "go":
			if err := r.playTurn(ctx); err != nil {
				return err
			}
		case "end":
			r.log.WithField("turn", world.Turn()).Info("Game over.")
			return nil
		default:
			r.midTurn = true
			if err := world.Update(line); err != nil {
				return fmt.Errorf("turn %d: %w", world.Turn(), err)
			}
		}
	}
}

// playTurn вызывает стратегию и отправляет ее приказы
func (r *Runner) playTurn(ctx context.Context) error {
	world := r.world

	turnCtx, cancel := ctx, context.CancelFunc(func() {})
	if timeout := world.Params().TurnTimeout(); timeout > 0 {
		turnCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	start := time.Now()
	err := r.Bot.DoTurn(turnCtx, world)
	cancel()
	if err != nil {
		return fmt.Errorf("turn %d: bot: %w", world.Turn(), err)
	}
	elapsed := time.Since(start)

	orders := world.TakeOrders()
	if err := r.send(orders); err != nil {
		return err
	}

	turnLog := r.log.WithFields(logrus.Fields{
		"turn":    world.Turn(),
		"orders":  len(orders),
		"elapsed": elapsed,
	})
	if timeout := world.Params().TurnTimeout(); timeout > 0 && elapsed > timeout {
		turnLog.Warn("Turn took longer than turntime.")
	} else {
		turnLog.Debug("Turn complete.")
	}

	// Следующий ход начинается с чистого листа (кроме воды)
	world.Clear()
	r.midTurn = false
	return nil
}

// send пишет приказы и "go", затем сбрасывает буфер транспорта
func (r *Runner) send(orders []engine.Order) error {
	turn := r.turn()
	for _, o := range orders {
		if err := r.writeLine(turn, o.String()); err != nil {
			return err
		}
	}
	if err := r.writeLine(turn, "go"); err != nil {
		return err
	}
	if err := r.Conn.Flush(); err != nil {
		return domain.IOError("flush", err)
	}
	return nil
}

func (r *Runner) writeLine(turn int, line string) error {
	r.Transcript.Record(turn, domain.DirOut, line)
	if err := r.Conn.WriteLine(line); err != nil {
		return domain.IOError("write", err)
	}
	return nil
}

func (r *Runner) readLine() (string, error) {
	line, err := r.Conn.ReadLine()
	if err != nil {
		return "", err
	}
	r.Transcript.Record(r.turn(), domain.DirIn, line)
	return line, nil
}

func (r *Runner) turn() int {
	if r.world == nil {
		return 0
	}
	return r.world.Turn()
}

// lineReaderFunc адаптирует функцию к domain.LineReader
type lineReaderFunc func() (string, error)

func (f lineReaderFunc) ReadLine() (string, error) {
	return f()
}
