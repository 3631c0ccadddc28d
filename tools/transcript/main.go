package main

import (
	"ants-bot/internal/domain"
	"ants-bot/internal/engine"
	"ants-bot/internal/infrastructure/storage"
	"ants-bot/internal/network"
	"ants-bot/pkg/logger"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}
	logger.Silence()

	t, err := storage.NewTranscriptService("").Load(os.Args[2])
	if err != nil {
		fmt.Printf("Failed to load %s: %v\n", os.Args[2], err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "show":
		for _, e := range t.Entries {
			fmt.Printf("%4d %-3s %s\n", e.Turn, e.Dir, e.Line)
		}
	case "stats":
		fmt.Print(collectStats(t))
	case "map":
		if len(os.Args) < 4 {
			fmt.Println("Usage: transcript map <file.antr> <turn>")
			return
		}
		turn, err := strconv.Atoi(os.Args[3])
		if err != nil {
			fmt.Printf("Invalid turn: %v\n", err)
			return
		}
		out, err := renderTurn(t, turn)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Print(out)
	default:
		printHelp()
	}
}

// Stats - сводка по записанной партии
type Stats struct {
	Seed       int64
	Rows, Cols int
	Turns      int
	In, Out    int
	Orders     int
	MaxOrders  int // Больше всего приказов за один ход
	ByDir      [len(domain.Directions)]int
	Finished   bool
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"seed:     %d\nmap:      %dx%d\nturns:    %d (finished: %t)\nlines:    %d in / %d out\norders:   %d (max %d per turn)\nmoves:    n %d, s %d, e %d, w %d\n",
		s.Seed, s.Rows, s.Cols, s.Turns, s.Finished, s.In, s.Out, s.Orders, s.MaxOrders,
		s.ByDir[domain.North], s.ByDir[domain.South], s.ByDir[domain.East], s.ByDir[domain.West],
	)
}

func collectStats(t *domain.Transcript) Stats {
	s := Stats{Seed: t.Seed, Rows: t.Rows, Cols: t.Cols}
	perTurn := make(map[int]int)

	for _, e := range t.Entries {
		if e.Turn > s.Turns {
			s.Turns = e.Turn
		}
		if e.Dir == domain.DirIn {
			s.In++
			if e.Line == "end" {
				s.Finished = true
			}
			continue
		}
		s.Out++
		fields := strings.Fields(e.Line)
		if len(fields) == 4 && fields[0] == "o" {
			s.Orders++
			perTurn[e.Turn]++
			s.MaxOrders = max(s.MaxOrders, perTurn[e.Turn])
			if dir, ok := domain.ParseDirection(fields[3]); ok {
				s.ByDir[dir]++
			}
		}
	}
	return s
}

// renderTurn восстанавливает карту, какой бот видел ее на момент "go" хода turn
func renderTurn(t *domain.Transcript, turn int) (string, error) {
	conn := network.NewReplayConn(t)
	params, err := domain.ReadParams(conn)
	if err != nil {
		return "", err
	}
	w, err := engine.NewWorld(params)
	if err != nil {
		return "", err
	}

	for {
		line, err := conn.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		switch line {
		case "":
			continue
		case "end":
			return "", fmt.Errorf("turn %d not found (game ended at turn %d)", turn, w.Turn())
		case "go":
			if w.Turn() == turn {
				return fmt.Sprintf("turn %d, ants %d, food %d\n%s", turn, len(w.MyAnts()), len(w.Food()), w.Map().Render()), nil
			}
			w.Clear()
		default:
			if err := w.Update(line); err != nil {
				return "", err
			}
		}
	}
	return "", fmt.Errorf("turn %d not found (transcript ends at turn %d)", turn, w.Turn())
}

func printHelp() {
	fmt.Println(`Transcript - просмотр записей партий (.antr)
Commands:
  show <file>            - все строки протокола с номерами ходов
  stats <file>           - сводка: ходы, строки, приказы
  map <file> <turn>      - карта, которую бот видел на ходу turn`)
}
