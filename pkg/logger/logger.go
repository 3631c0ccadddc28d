package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с уровнем info, чтобы тесты и утилиты не падали на nil.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
}

// Init инициализирует глобальный логгер.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
//
// ВАЖНО: stdout занят протоколом игры, поэтому логи идут только в stderr
// (или в файл из LOG_FILE).
func Init() {
	// 1. Уровень логирования из переменной окружения. По умолчанию - "info".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер. "json" - для сбора логов, "text" - для разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			// Цвета только в терминале: движок обычно перенаправляет stderr в файл
			DisableColors: os.Getenv("LOG_COLORS") == "",
		})
	}

	// 3. Куда писать
	Log.SetOutput(output(os.Getenv("LOG_FILE")))
}

func output(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		Log.WithError(err).Warn("failed to open LOG_FILE, falling back to stderr")
		return os.Stderr
	}
	return f
}

// Silence отключает вывод (для тестов с большим количеством debug-логов)
func Silence() {
	Log.SetOutput(io.Discard)
}
