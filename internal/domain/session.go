package domain

import "time"

// SessionState is the per-session pointer data kept alongside the profiles.
type SessionState struct {
	ActiveDogID string // empty until the first dog is added
	LastSeed    *int64
	UpdatedAt   time.Time
}
