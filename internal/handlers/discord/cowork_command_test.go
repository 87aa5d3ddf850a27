package discord

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/coworkhq/coworkbot/internal/common/clock"
	"github.com/coworkhq/coworkbot/internal/services/tracker"
	trackerMocks "github.com/coworkhq/coworkbot/internal/services/tracker/mocks"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// newStubSession returns a Discord session whose REST calls succeed without
// touching the network.
func newStubSession(t *testing.T) *discordgo.Session {
	t.Helper()

	s, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	s.Client = &http.Client{
		Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader("{}")),
				Header:     make(http.Header),
			}, nil
		}),
	}

	return s
}

// coworkInteraction builds a /cowork subcommand interaction. Guild
// interactions carry a member; DM interactions carry only a user.
func coworkInteraction(sub string, member *discordgo.Member, user *discordgo.User) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: "chan-1",
			Member:    member,
			User:      user,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "cowork",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: sub, Type: discordgo.ApplicationCommandOptionSubCommand},
				},
			},
		},
	}
}

func newTestCommand(t *testing.T) (*CoworkCommand, *trackerMocks.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := trackerMocks.NewMockService(ctrl)
	cmd := NewCoworkCommand(svc, newDescriptionCollector(), &clock.DefaultClock{}, time.Minute, zap.NewNop())
	return cmd, svc
}

func TestHandleLoginFromDM(t *testing.T) {
	// A command arriving from a DM has no Member, only a User
	cmd, svc := newTestCommand(t)

	svc.EXPECT().
		Login(gomock.Any(), &tracker.LoginInput{UserID: "dm-user", Username: "Dee"}).
		Return(&tracker.LoginOutput{SessionID: 1, StartedAt: time.Now().UTC()}, nil)

	i := coworkInteraction("login", nil, &discordgo.User{ID: "dm-user", Username: "Dee"})

	require.NotPanics(t, func() {
		require.NoError(t, cmd.Handle(newStubSession(t), i))
	})
}

func TestHandleStatusFromDM(t *testing.T) {
	cmd, svc := newTestCommand(t)

	svc.EXPECT().
		Status(gomock.Any(), &tracker.StatusInput{UserID: "dm-user"}).
		Return(nil, tracker.ErrNotActive)

	i := coworkInteraction("status", nil, &discordgo.User{ID: "dm-user", Username: "Dee"})

	require.NotPanics(t, func() {
		require.NoError(t, cmd.Handle(newStubSession(t), i))
	})
}

func TestHandleReportFromDMDenied(t *testing.T) {
	// No member means no Administrator permission; the admin gate answers
	// with the denial message instead of dereferencing a nil member.
	cmd, _ := newTestCommand(t)

	i := coworkInteraction("report", nil, &discordgo.User{ID: "dm-user", Username: "Dee"})

	require.NotPanics(t, func() {
		require.NoError(t, cmd.Handle(newStubSession(t), i))
	})
}

func TestHandleLoginFromGuildUsesNick(t *testing.T) {
	cmd, svc := newTestCommand(t)

	svc.EXPECT().
		Login(gomock.Any(), &tracker.LoginInput{UserID: "guild-user", Username: "Nickname"}).
		Return(&tracker.LoginOutput{SessionID: 2, StartedAt: time.Now().UTC()}, nil)

	member := &discordgo.Member{
		User: &discordgo.User{ID: "guild-user", Username: "Original"},
		Nick: "Nickname",
	}
	i := coworkInteraction("login", member, nil)

	require.NoError(t, cmd.Handle(newStubSession(t), i))
}

func TestHandleInteractionWithoutUser(t *testing.T) {
	cmd, _ := newTestCommand(t)

	i := coworkInteraction("login", nil, nil)

	require.NotPanics(t, func() {
		require.Error(t, cmd.Handle(newStubSession(t), i))
	})
}
