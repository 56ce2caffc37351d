package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/sosgame/internal/dependencies/clock"
	"github.com/mcoot/sosgame/internal/dependencies/random"
	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/services/bot"
	"github.com/mcoot/sosgame/internal/services/game"
	"github.com/mcoot/sosgame/internal/storage"
	"github.com/mcoot/sosgame/internal/storage/memory"
	redisstorage "github.com/mcoot/sosgame/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	GameController *game.Controller
	BotService     *bot.Service
	Strategies     map[string]bot.Strategy
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// RandomSeed makes game IDs and computer moves reproducible (optional)
	RandomSeed *uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.RandomSeed != nil {
		rnd = random.NewSeeded(*cfg.RandomSeed)
	}

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	strategies := map[string]bot.Strategy{
		model.BotStrategyEasy: bot.NewEasyStrategy(rnd),
	}

	gameController := game.NewController(store, clk, rnd, logger)
	botService := bot.NewService(gameController, strategies, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		GameController: gameController,
		BotService:     botService,
		Strategies:     strategies,
	}
}

// Close releases resources held by the storage backend
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
