package version

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Program - имя бота в логах, User-Agent и выводе -version
const Program = "ants-bot"

// Заполняются через -ldflags "-X ants-bot/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// Номер сборки - число дней от начала проекта
var buildEpoch = time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)

var errNoDate = errors.New("BuildDate is empty")

// Build - метаданные сборки. Err != nil, если номер сборки не вычислен.
type Build struct {
	ID     int
	Date   string
	Commit string
	Branch string
	CI     string
	Err    error
}

func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, errNoDate
	}
	t, err := time.ParseInLocation(time.DateOnly, BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before %s", BuildDate, buildEpoch.Format(time.DateOnly))
	}
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Current собирает метаданные текущего бинарника
func Current() Build {
	id, err := CalculateBuildID()
	return Build{
		ID:     id,
		Date:   BuildDate,
		Commit: or(BuildCommit, "unknown"),
		Branch: or(BuildBranch, "unknown"),
		CI:     or(BuildCI, "local"),
		Err:    err,
	}
}

func (b Build) String() string {
	if b.Err != nil {
		return fmt.Sprintf("%s build unknown (%s)", Program, b.Err)
	}
	return fmt.Sprintf("%s build %d (%s) commit[%s] branch[%s] ci[%s]",
		Program, b.ID, b.Date, b.Commit, b.Branch, b.CI)
}

// Fields - метаданные для структурных логов
func (b Build) Fields() logrus.Fields {
	f := logrus.Fields{
		"program": Program,
		"commit":  b.Commit,
	}
	if b.Err == nil {
		f["build"] = b.ID
	}
	return f
}

// UserAgent - заголовок для подключения к ретранслятору: "ants-bot/<build>" или "ants-bot/dev"
func (b Build) UserAgent() string {
	if b.Err != nil {
		return Program + "/dev"
	}
	return fmt.Sprintf("%s/%d", Program, b.ID)
}

// String - короткая форма Current().String()
func String() string {
	return Current().String()
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
