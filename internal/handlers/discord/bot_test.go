package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	trackerMocks "github.com/coworkhq/coworkbot/internal/services/tracker/mocks"
)

func TestNewRequiresConfig(t *testing.T) {
	bot, err := New(nil)
	require.Error(t, err)
	require.Nil(t, bot)
}

func TestNewRequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)

	bot, err := New(&Config{
		TrackerService: trackerMocks.NewMockService(ctrl),
	})
	require.Error(t, err)
	require.Nil(t, bot)
}

func TestNewRequiresTrackerService(t *testing.T) {
	bot, err := New(&Config{Token: "test-token"})
	require.Error(t, err)
	require.Nil(t, bot)
}

func TestNewAppliesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)

	bot, err := New(&Config{
		Token:          "test-token",
		TrackerService: trackerMocks.NewMockService(ctrl),
	})
	require.NoError(t, err)

	require.NotNil(t, bot.clock)
	require.NotNil(t, bot.logger)
	require.NotNil(t, bot.collector)
	require.Equal(t, 60*time.Second, bot.config.LogoutTimeout)
}

func TestWatchStatusText(t *testing.T) {
	// The presence set on startup points members at the slash command
	require.Equal(t, "productivity (/cowork)", watchStatus)
}
