package discord

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/coworkhq/coworkbot/internal/common/clock"
	"github.com/coworkhq/coworkbot/internal/services/tracker"
)

// watchStatus is shown in the member list as "Watching ..."
const watchStatus = "productivity (/cowork)"

// Bot represents the Discord bot instance
type Bot struct {
	session        *discordgo.Session
	commands       map[string]CommandHandler
	commandIDs     map[string]string // Maps command name to command ID
	trackerService tracker.Service
	collector      *descriptionCollector
	clock          clock.Clock
	logger         *zap.Logger
	config         *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Tracker service
	TrackerService tracker.Service

	// Clock supplies end timestamps for logout; defaults to the system clock
	Clock clock.Clock

	// LogoutTimeout is how long logout waits for a description reply
	LogoutTimeout time.Duration

	// Logger for operator-facing diagnostics
	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.TrackerService == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}

	if cfg.LogoutTimeout <= 0 {
		cfg.LogoutTimeout = 60 * time.Second
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Reading description replies requires the message content intent
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	bot := &Bot{
		session:        session,
		commands:       make(map[string]CommandHandler),
		commandIDs:     make(map[string]string),
		trackerService: cfg.TrackerService,
		collector:      newDescriptionCollector(),
		clock:          cfg.Clock,
		logger:         cfg.Logger,
		config:         cfg,
	}

	// Register the interaction and message handlers
	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register the cowork command
	coworkCmd := NewCoworkCommand(b.trackerService, b.collector, b.clock, b.config.LogoutTimeout, b.logger)
	if err := b.RegisterCommand(coworkCmd); err != nil {
		return fmt.Errorf("failed to register cowork command: %w", err)
	}

	// Presence is cosmetic; a failure should not stop the bot
	if err := b.session.UpdateWatchStatus(0, watchStatus); err != nil {
		b.logger.Warn("failed to set presence", zap.Error(err))
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		} else {
			b.logger.Info("deleted command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// Register the command with Discord
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
		b.logger.Info("registering command for guild",
			zap.String("command", cmd.GetName()),
			zap.String("guild_id", guildID))
	} else {
		b.logger.Info("registering command globally",
			zap.String("command", cmd.GetName()))
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
		if err := h.Handle(s, i); err != nil {
			b.logger.Error("error handling command",
				zap.String("command", i.ApplicationCommandData().Name),
				zap.Error(err))
		}
	}
}

// handleMessageCreate feeds channel messages to any command waiting for a
// follow-up reply from that user.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	b.collector.Deliver(m.ChannelID, m.Author.ID, m.Content)
}
