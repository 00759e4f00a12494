package domain

import "time"

// DefaultRetentionWindow is how long an application stays out of the archival
// sweep after creation.
const DefaultRetentionWindow = 2 * 365 * 24 * time.Hour

// RetentionCutoff returns the archival cutoff for a sweep run at now.
// Applications created before the cutoff are flagged.
func RetentionCutoff(now time.Time, window time.Duration) time.Time {
	if window <= 0 {
		window = DefaultRetentionWindow
	}
	return now.Add(-window)
}

// ArchiveExpired flags every unarchived application created before cutoff.
// The flag is never reversed. Returns the updated applications and how many
// were newly flagged; re-running with the same cutoff is a no-op.
func ArchiveExpired(apps []Application, cutoff time.Time) ([]Application, int) {
	archived := 0
	out := make([]Application, len(apps))
	for i, app := range apps {
		if !app.Archived && app.CreatedAt.Before(cutoff) {
			app.Archived = true
			archived++
		}
		out[i] = app
	}
	return out, archived
}
