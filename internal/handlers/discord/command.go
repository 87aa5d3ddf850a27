package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Embed colors. Teal for informational embeds, green for success, red for
// errors, matching the bot's palette.
const (
	ColorInfo    = 0x0FA3B1
	ColorSuccess = 0x00FF00
	ColorError   = 0xFF0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// RespondWithMessage sends a simple text message response to an interaction
func RespondWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
}

// RespondWithEmbed sends an embed response with the given color to an interaction
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string, color int) error {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// RespondWithError sends a red error embed response to an interaction
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, title, errorMessage string) error {
	return RespondWithEmbed(s, i, title, errorMessage, ColorError)
}

// RespondWithFile sends a message with a file attachment to an interaction
func RespondWithFile(s *discordgo.Session, i *discordgo.InteractionCreate, message string, file *discordgo.File) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Files:   []*discordgo.File{file},
		},
	})
}

// FollowupWithEmbed sends an embed as a follow-up message after the initial
// interaction response has already been sent
func FollowupWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string, color int) error {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}

	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	return err
}

// FollowupWithMessage sends a plain text follow-up message
func FollowupWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: message,
	})
	return err
}
