package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/coworkhq/coworkbot/internal/common/clock"
	"github.com/coworkhq/coworkbot/internal/config"
	"github.com/coworkhq/coworkbot/internal/handlers/discord"
	sessionRepo "github.com/coworkhq/coworkbot/internal/repositories/session"
	"github.com/coworkhq/coworkbot/internal/services/tracker"
)

func main() {
	// Load configuration; a missing DISCORD_TOKEN aborts startup here
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Open the session database. One long-lived handle is shared by every
	// command; GORM pools the underlying connections.
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to access database handle", zap.Error(err))
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("error closing database", zap.Error(err))
		}
	}()

	// Initialize the session repository; this migrates the schema
	repo, err := sessionRepo.NewGorm(&sessionRepo.Config{
		DB:     db,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("failed to create session repository", zap.Error(err))
	}

	// Initialize the tracker service
	trackerSvc, err := tracker.New(&tracker.Config{
		SessionRepo: repo,
		Clock:       &clock.DefaultClock{},
	})
	if err != nil {
		logger.Fatal("failed to create tracker service", zap.Error(err))
	}

	// Initialize the Discord bot
	bot, err := discord.New(&discord.Config{
		Token:          cfg.Token,
		ApplicationID:  cfg.ApplicationID,
		GuildID:        cfg.GuildID,
		TrackerService: trackerSvc,
		Clock:          &clock.DefaultClock{},
		LogoutTimeout:  cfg.LogoutTimeout,
		Logger:         logger,
	})
	if err != nil {
		logger.Fatal("failed to create Discord bot", zap.Error(err))
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		logger.Fatal("failed to start Discord bot", zap.Error(err))
	}

	logger.Info("CoWorkBot is online",
		zap.String("database", cfg.DatabasePath),
		zap.Duration("logout_timeout", cfg.LogoutTimeout))

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", zap.Error(err))
	}

	logger.Info("bot has been shut down")
}

// newLogger builds the process logger; debug switches to development output
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
