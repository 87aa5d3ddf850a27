package discord

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/coworkhq/coworkbot/internal/models"
)

// csvHeader is the fixed column order of the export file
var csvHeader = []string{"id", "user_id", "username", "start_ts", "end_ts", "duration_minutes", "description", "created_at"}

// formatDuration renders total minutes as "Xh Ym"
func formatDuration(totalMinutes int) string {
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// formatClockTime renders a timestamp as HH:MM:SS in UTC
func formatClockTime(t time.Time) string {
	return t.UTC().Format("15:04:05")
}

// renderLeaderboard renders ranked leaderboard lines, one per user
func renderLeaderboard(entries []*models.UserTotal) string {
	var buf bytes.Buffer
	for i, entry := range entries {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "**#%d:** %s - %s", i+1, entry.Username, formatDuration(entry.TotalMinutes))
	}
	return buf.String()
}

// renderServerReport renders per-user summary lines for the server report
func renderServerReport(totals []*models.UserTotal) string {
	var buf bytes.Buffer
	for i, total := range totals {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "**%s**: %s across %d sessions", total.Username, formatDuration(total.TotalMinutes), total.SessionCount)
	}
	return buf.String()
}

// renderSessionsCSV renders completed sessions as a CSV document with the
// fixed export header, one row per session.
func renderSessionsCSV(sessions []*models.Session) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, s := range sessions {
		row := []string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.UserID,
			s.Username,
			strconv.FormatInt(s.StartTS, 10),
			formatNullableInt64(s.EndTS),
			formatNullableInt(s.DurationMinutes),
			formatNullableString(s.Description),
			strconv.FormatInt(s.CreatedAt, 10),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func formatNullableInt64(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatNullableInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatNullableString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
