package discord

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coworkhq/coworkbot/internal/models"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h 0m", formatDuration(0))
	assert.Equal(t, "0h 30m", formatDuration(30))
	assert.Equal(t, "1h 0m", formatDuration(60))
	assert.Equal(t, "2h 30m", formatDuration(150))
}

func TestFormatClockTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	at := time.Date(2025, 6, 2, 12, 30, 45, 0, loc)

	// Always rendered in UTC
	assert.Equal(t, "09:30:45", formatClockTime(at))
}

func TestRenderLeaderboard(t *testing.T) {
	entries := []*models.UserTotal{
		{Username: "Carol", TotalMinutes: 150},
		{Username: "Alice", TotalMinutes: 120},
		{Username: "Bob", TotalMinutes: 90},
	}

	lines := strings.Split(renderLeaderboard(entries), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "**#1:** Carol - 2h 30m", lines[0])
	assert.Equal(t, "**#2:** Alice - 2h 0m", lines[1])
	assert.Equal(t, "**#3:** Bob - 1h 30m", lines[2])
}

func TestRenderServerReport(t *testing.T) {
	totals := []*models.UserTotal{
		{Username: "Alice", TotalMinutes: 185, SessionCount: 4},
	}

	assert.Equal(t, "**Alice**: 3h 5m across 4 sessions", renderServerReport(totals))
}

func TestRenderSessionsCSV(t *testing.T) {
	end := int64(1700001800)
	minutes := 30
	desc := "wrote spec, with commas"
	sessions := []*models.Session{
		{
			ID:              2,
			UserID:          "user-1",
			Username:        "Alice#1234",
			StartTS:         1700000000,
			EndTS:           &end,
			DurationMinutes: &minutes,
			Description:     &desc,
			CreatedAt:       1700000000,
		},
	}

	data, err := renderSessionsCSV(sessions)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,user_id,username,start_ts,end_ts,duration_minutes,description,created_at", lines[0])
	assert.Equal(t, `2,user-1,Alice#1234,1700000000,1700001800,30,"wrote spec, with commas",1700000000`, lines[1])
}

func TestRenderSessionsCSVEmpty(t *testing.T) {
	data, err := renderSessionsCSV(nil)
	require.NoError(t, err)

	assert.Equal(t, "id,user_id,username,start_ts,end_ts,duration_minutes,description,created_at", strings.TrimSpace(string(data)))
}
