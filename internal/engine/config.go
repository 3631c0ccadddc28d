package engine

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска бота (не путать с domain.Params, которые присылает движок)
type Config struct {
	// Strategy - имя стратегии из реестра agent (north, random, forager)
	Strategy string `yaml:"strategy"`
	// Seed - зерно для случайных стратегий. 0 = взять player_seed из хендшейка.
	Seed int64 `yaml:"seed"`
	// EngineURL - адрес websocket-ретранслятора. Пусто = stdin/stdout.
	EngineURL string `yaml:"engine_url"`
	// ReplayDir - куда сохранять запись партии. Пусто = не записывать.
	ReplayDir string `yaml:"replay_dir"`
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		Strategy: "forager",
	}
}

// LoadConfig читает YAML поверх значений по умолчанию.
// Пустой path - просто дефолты.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv переопределяет поля из переменных окружения (ANTS_*)
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ANTS_STRATEGY"); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv("ANTS_ENGINE_URL"); v != "" {
		c.EngineURL = v
	}
	if v := os.Getenv("ANTS_REPLAY_DIR"); v != "" {
		c.ReplayDir = v
	}
	if v := os.Getenv("ANTS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ANTS_SEED: %w", err)
		}
		c.Seed = seed
	}
	return nil
}
