package main

import (
	"ants-bot/internal/agent"
	"ants-bot/internal/domain"
	"ants-bot/internal/engine"
	"ants-bot/internal/infrastructure/storage"
	"ants-bot/internal/network"
	"ants-bot/internal/version"
	"ants-bot/pkg/logger"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env не обязателен: на турнирном сервере его нет
	envErr := godotenv.Load()
	logger.Init()
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logger.Log.WithError(envErr).Warn("Failed to load .env")
	}

	// 1. Парсинг конфигурации
	var (
		configPath  string
		strategy    string
		seed        int64
		engineURL   string
		recordDir   string
		replayPath  string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config")
	flag.StringVar(&strategy, "strategy", "", fmt.Sprintf("Bot strategy %v", agent.Strategies()))
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use player_seed from the engine)")
	flag.StringVar(&engineURL, "ws", "", "Websocket relay URL (empty = stdin/stdout)")
	flag.StringVar(&recordDir, "record", "", "Directory to save the game transcript")
	flag.StringVar(&replayPath, "replay", "", "Path to .antr transcript to replay")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}
	if err := cfg.ApplyEnv(); err != nil {
		logger.Log.WithError(err).Fatal("Invalid environment")
	}
	// Флаги важнее файла и окружения
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strategy":
			cfg.Strategy = strategy
		case "seed":
			cfg.Seed = seed
		case "ws":
			cfg.EngineURL = engineURL
		case "record":
			cfg.ReplayDir = recordDir
		}
	})

	logger.Log.Info(version.String())

	bot, err := agent.NewBot(cfg.Strategy, cfg.Seed)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create bot")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var code int
	if replayPath != "" {
		// РЕЖИМ РЕПЛЕЯ
		code = runReplay(ctx, replayPath, bot)
	} else {
		code = runGame(ctx, cfg, bot)
	}
	stop()
	os.Exit(code)
}

func runGame(ctx context.Context, cfg engine.Config, bot agent.Bot) int {
	var conn network.Conn
	if cfg.EngineURL != "" {
		ws, err := network.DialWS(cfg.EngineURL)
		if err != nil {
			logger.Log.WithError(err).WithField("url", cfg.EngineURL).Error("Failed to connect to engine")
			return 1
		}
		defer ws.Close()
		conn = ws
	} else {
		conn = network.NewStdioConn(os.Stdin, os.Stdout)
	}

	runner := agent.NewRunner(conn, bot)
	if cfg.ReplayDir != "" {
		runner.Transcript = &domain.Transcript{Timestamp: time.Now().Unix()}
	}

	runErr := runner.Run(ctx)

	// Запись сохраняем даже после ошибки: ради нее она и нужна
	if runner.Transcript != nil {
		path, err := storage.NewTranscriptService(cfg.ReplayDir).Save(runner.Transcript)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to save transcript")
		} else {
			logger.Log.WithField("path", path).Info("Transcript saved.")
		}
	}

	if runErr != nil {
		logger.Log.WithError(runErr).Error("Game aborted")
		return 1
	}
	return 0
}

func runReplay(ctx context.Context, path string, bot agent.Bot) int {
	log := logger.Log.WithField("replay", path)

	t, err := storage.NewTranscriptService("").Load(path)
	if err != nil {
		log.WithError(err).Error("Failed to load transcript")
		return 1
	}

	res, err := agent.Replay(ctx, t, bot)
	if err != nil {
		log.WithError(err).Error("Replay failed")
		return 1
	}

	fields := logrus.Fields{
		"turns":    res.Turns,
		"seed":     t.Seed,
		"output":   len(res.Output),
		"recorded": len(res.Recorded),
	}
	if !res.Matches() {
		fields["diverged_at"] = res.Diverged
		log.WithFields(fields).Warn("Replay diverged from recording.")
		return 2
	}
	log.WithFields(fields).Info("Replay matches recording.")
	return 0
}
