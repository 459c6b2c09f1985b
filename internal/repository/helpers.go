package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/alexanderramin/pawplan/internal/domain"
)

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// nullableString stores nil as SQL NULL.
func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func stringPtrFromNull(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// encodeFlags stores a flag set as comma-separated codes.
func encodeFlags(f domain.FlagSet) string {
	return strings.Join(f.Codes(), ",")
}

// decodeFlags is the inverse of encodeFlags. Unknown codes are dropped so a
// stale row never blocks loading a profile.
func decodeFlags(s string) domain.FlagSet {
	var flags []domain.SpecialFlag
	for _, code := range strings.Split(s, ",") {
		if f, err := domain.ParseSpecialFlag(code); err == nil {
			flags = append(flags, f)
		}
	}
	return domain.NewFlagSet(flags...)
}
