package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/coworkhq/coworkbot/internal/common/clock"
	"github.com/coworkhq/coworkbot/internal/services/tracker"
)

// timeoutDescription is saved when the user never replies to the logout prompt
const timeoutDescription = "No description provided (Timed out)."

// CoworkCommand handles the /cowork command and its subcommands
type CoworkCommand struct {
	BaseCommand
	trackerService tracker.Service
	collector      *descriptionCollector
	clock          clock.Clock
	logoutTimeout  time.Duration
	logger         *zap.Logger
}

// NewCoworkCommand creates a new cowork command handler
func NewCoworkCommand(trackerService tracker.Service, collector *descriptionCollector, clk clock.Clock, logoutTimeout time.Duration, logger *zap.Logger) *CoworkCommand {
	return &CoworkCommand{
		BaseCommand: BaseCommand{
			Name:        "cowork",
			Description: "Work session tracking commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "login",
					Description: "Start a new work session",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "logout",
					Description: "End your work session and describe what you worked on",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show how long your current session has been running",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the top 10 users by total work time",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "report",
					Description: "(Admin) Work stats for a user or the whole server",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "User to report on; omit for the server summary",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "export",
					Description: "(Admin) Export all session data as CSV",
				},
			},
		},
		trackerService: trackerService,
		collector:      collector,
		clock:          clk,
		logoutTimeout:  logoutTimeout,
		logger:         logger,
	}
}

// Handle processes a Discord interaction for the cowork command
func (c *CoworkCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	// Get the channel ID and user information
	channelID := i.ChannelID
	user, nick := interactionUser(i)
	if user == nil {
		return errors.New("interaction carries no user")
	}
	userID := user.ID
	username := user.Username
	if nick != "" {
		username = nick
	}

	var err error
	switch data.Options[0].Name {
	case "login":
		err = c.handleLogin(s, i, userID, username)
	case "logout":
		err = c.handleLogout(s, i, channelID, userID)
	case "status":
		err = c.handleStatus(s, i, userID)
	case "leaderboard":
		err = c.handleLeaderboard(s, i)
	case "report":
		err = c.handleReport(s, i)
	case "export":
		err = c.handleExport(s, i)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleLogin handles the login subcommand
func (c *CoworkCommand) handleLogin(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	ctx := context.Background()

	_, err := c.trackerService.Login(ctx, &tracker.LoginInput{
		UserID:   userID,
		Username: username,
	})
	if err != nil {
		var alreadyActive *tracker.AlreadyActiveError
		if errors.As(err, &alreadyActive) {
			return RespondWithEmbed(s, i, "⚠️ Already Logged In",
				fmt.Sprintf("You are already clocked in since **%s** (UTC). Please use `/cowork logout` to end your current session.",
					formatClockTime(alreadyActive.StartedAt)),
				ColorInfo)
		}

		c.logger.Error("failed to open session", zap.String("user_id", userID), zap.Error(err))
		return RespondWithError(s, i, "Error", "Something went wrong starting your session. Please try again.")
	}

	return RespondWithEmbed(s, i, "✅ Clocked In!",
		"Happy working! Use `/cowork logout` when you finish.", ColorInfo)
}

// handleLogout handles the logout subcommand. The end timestamp is captured
// before the description prompt so waiting to type does not inflate the
// session duration.
func (c *CoworkCommand) handleLogout(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	ctx := context.Background()
	endTime := c.clock.Now()

	// Verify there is a session to close before prompting
	_, err := c.trackerService.Status(ctx, &tracker.StatusInput{UserID: userID})
	if err != nil {
		if errors.Is(err, tracker.ErrNotActive) {
			return RespondWithError(s, i, "❌ Not Logged In",
				"You are not currently clocked in. Use `/cowork login` to start a session.")
		}

		c.logger.Error("failed to check session before logout", zap.String("user_id", userID), zap.Error(err))
		return RespondWithError(s, i, "Error", "Something went wrong. Please try again.")
	}

	// Prompt for the task description
	err = RespondWithMessage(s, i,
		fmt.Sprintf("🛑 Clocking out... 📝 **What did you work on?** (Reply in this channel within %d seconds)",
			int(c.logoutTimeout.Seconds())))
	if err != nil {
		return err
	}

	// Only this command's goroutine blocks here; other users' commands
	// keep flowing while we wait.
	description, replied := c.collector.Await(ctx, channelID, userID, c.logoutTimeout, timeoutDescription)
	if !replied {
		if err := FollowupWithMessage(s, i,
			fmt.Sprintf("Timeout reached. Saving session with description: **%s**", timeoutDescription)); err != nil {
			c.logger.Warn("failed to send timeout notice", zap.Error(err))
		}
	}

	out, err := c.trackerService.Logout(ctx, &tracker.LogoutInput{
		UserID:      userID,
		EndTime:     endTime,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, tracker.ErrNotActive) {
			return FollowupWithEmbed(s, i, "❌ Not Logged In",
				"Your session was already closed.", ColorError)
		}

		c.logger.Error("failed to close session", zap.String("user_id", userID), zap.Error(err))
		return FollowupWithEmbed(s, i, "Error",
			"Something went wrong saving your session. Please try again.", ColorError)
	}

	return FollowupWithEmbed(s, i, "✅ Session Logged!",
		fmt.Sprintf("**Duration:** %s\n**Task:** %s", formatDuration(out.DurationMinutes), out.Description),
		ColorSuccess)
}

// handleStatus handles the status subcommand
func (c *CoworkCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	out, err := c.trackerService.Status(ctx, &tracker.StatusInput{UserID: userID})
	if err != nil {
		if errors.Is(err, tracker.ErrNotActive) {
			return RespondWithEmbed(s, i, "🔄 Status Check",
				"You are currently **clocked out**. Use `/cowork login` to start a session.", ColorInfo)
		}

		c.logger.Error("failed to get status", zap.String("user_id", userID), zap.Error(err))
		return RespondWithError(s, i, "Error", "Something went wrong. Please try again.")
	}

	return RespondWithEmbed(s, i, "🔄 Status Check",
		fmt.Sprintf("You have been working for **%s**.\nClocked in since: %s (UTC)",
			formatDuration(out.DurationMinutes), formatClockTime(out.StartedAt)),
		ColorInfo)
}

// handleLeaderboard handles the leaderboard subcommand
func (c *CoworkCommand) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.trackerService.GetLeaderboard(ctx, &tracker.GetLeaderboardInput{})
	if err != nil {
		c.logger.Error("failed to get leaderboard", zap.Error(err))
		return RespondWithError(s, i, "Error", "Something went wrong. Please try again.")
	}

	if len(out.Entries) == 0 {
		return RespondWithMessage(s, i, "No completed sessions logged yet!")
	}

	return RespondWithEmbed(s, i, "🏆 CoWorkBot Leaderboard (Top 10)",
		renderLeaderboard(out.Entries), ColorInfo)
}

// handleReport handles the admin-only report subcommand
func (c *CoworkCommand) handleReport(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !isAdministrator(i.Member) {
		return RespondWithMessage(s, i,
			"❌ **Error:** You need Administrator permissions to run the `/cowork report` command.")
	}

	ctx := context.Background()

	target := resolveUserOption(s, i)
	if target == nil {
		return c.handleServerReport(ctx, s, i)
	}
	if target.ID == "" || target.Username == "" {
		return RespondWithMessage(s, i,
			"❌ **Error:** Could not find that member. Please select them from the user picker.")
	}

	out, err := c.trackerService.GetUserReport(ctx, &tracker.GetUserReportInput{UserID: target.ID})
	if err != nil {
		c.logger.Error("failed to get user report", zap.String("target_id", target.ID), zap.Error(err))
		return RespondWithMessage(s, i, "❌ An unexpected error occurred while running the report.")
	}

	if !out.Found {
		return RespondWithEmbed(s, i, fmt.Sprintf("📊 Report for %s", target.Username),
			"No completed work sessions found.", ColorInfo)
	}

	return RespondWithEmbed(s, i, fmt.Sprintf("📊 Work Report for %s", target.Username),
		fmt.Sprintf("**Total Sessions:** %d\n**Total Time Logged:** %s",
			out.SessionCount, formatDuration(out.TotalMinutes)),
		ColorInfo)
}

// handleServerReport renders the server-wide top-5 summary
func (c *CoworkCommand) handleServerReport(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.trackerService.GetServerReport(ctx, &tracker.GetServerReportInput{})
	if err != nil {
		c.logger.Error("failed to get server report", zap.Error(err))
		return RespondWithMessage(s, i, "❌ An unexpected error occurred while running the report.")
	}

	if len(out.Totals) == 0 {
		return RespondWithMessage(s, i, "No completed sessions logged in the database yet.")
	}

	return RespondWithEmbed(s, i, "🌐 Server Work Summary (Top 5)",
		renderServerReport(out.Totals), ColorInfo)
}

// handleExport handles the admin-only export subcommand
func (c *CoworkCommand) handleExport(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !isAdministrator(i.Member) {
		return RespondWithMessage(s, i,
			"❌ **Error:** You need Administrator permissions to run the `/cowork export` command.")
	}

	ctx := context.Background()

	out, err := c.trackerService.ExportSessions(ctx, &tracker.ExportSessionsInput{})
	if err != nil {
		c.logger.Error("failed to export sessions", zap.Error(err))
		return RespondWithMessage(s, i, "❌ An unexpected error occurred while exporting.")
	}

	if len(out.Sessions) == 0 {
		return RespondWithMessage(s, i, "The database is empty. Nothing to export.")
	}

	data, err := renderSessionsCSV(out.Sessions)
	if err != nil {
		c.logger.Error("failed to render export", zap.Error(err))
		return RespondWithMessage(s, i, "❌ An unexpected error occurred while exporting.")
	}

	return RespondWithFile(s, i, "📊 **Data Export**", &discordgo.File{
		Name:        "coworkbot_data.csv",
		ContentType: "text/csv",
		Reader:      bytes.NewReader(data),
	})
}

// interactionUser returns the invoking user and their guild nickname. Guild
// interactions carry a Member; DM interactions carry only a User.
func interactionUser(i *discordgo.InteractionCreate) (*discordgo.User, string) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User, i.Member.Nick
	}
	return i.User, ""
}

// isAdministrator reports whether the invoking member has the Administrator
// permission in the current channel.
func isAdministrator(member *discordgo.Member) bool {
	return member != nil && member.Permissions&discordgo.PermissionAdministrator != 0
}

// resolveUserOption returns the report target, or nil when no user option
// was supplied. A present but unresolvable option yields a user with an
// empty ID.
func resolveUserOption(s *discordgo.Session, i *discordgo.InteractionCreate) *discordgo.User {
	options := i.ApplicationCommandData().Options[0].Options
	for _, opt := range options {
		if opt.Name == "user" && opt.Type == discordgo.ApplicationCommandOptionUser {
			user := opt.UserValue(s)
			if user == nil {
				return &discordgo.User{}
			}
			return user
		}
	}
	return nil
}
