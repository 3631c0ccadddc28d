package domain

// TranscriptDir - направление строки протокола
type TranscriptDir uint8

const (
	DirIn  TranscriptDir = iota // от движка к боту
	DirOut                      // от бота к движку
)

func (d TranscriptDir) String() string {
	if d == DirOut {
		return "out"
	}
	return "in"
}

// TranscriptEntry - одна строка протокола с номером хода
type TranscriptEntry struct {
	Turn int           `json:"turn"`
	Dir  TranscriptDir `json:"dir"`
	Line string        `json:"line"`
}

// Transcript - полная запись одной партии (вход и выход бота)
type Transcript struct {
	Seed      int64             `json:"seed"`
	Timestamp int64             `json:"timestamp"`
	Rows      int               `json:"rows"`
	Cols      int               `json:"cols"`
	Entries   []TranscriptEntry `json:"entries"`
}

// Record добавляет строку в запись. Безопасно вызывать на nil.
func (t *Transcript) Record(turn int, dir TranscriptDir, line string) {
	if t == nil {
		return
	}
	t.Entries = append(t.Entries, TranscriptEntry{Turn: turn, Dir: dir, Line: line})
}

// Input возвращает только входящие строки в исходном порядке
func (t *Transcript) Input() []string {
	var lines []string
	for _, e := range t.Entries {
		if e.Dir == DirIn {
			lines = append(lines, e.Line)
		}
	}
	return lines
}
