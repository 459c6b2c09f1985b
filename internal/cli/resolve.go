package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/repository"
)

const minIDPrefix = 4

// resolveDog finds a profile by 1-based position, id, unique id prefix or
// case-insensitive name. An empty reference means the active dog.
func resolveDog(ctx context.Context, app *App, ref string) (*domain.DogProfile, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return app.Dogs.Active(ctx)
	}

	dogs, err := app.Dogs.List(ctx)
	if err != nil {
		return nil, err
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(dogs) {
			return dogs[n-1], nil
		}
		return nil, fmt.Errorf("no dog at position %d (have %d): %w", n, len(dogs), repository.ErrNotFound)
	}

	var matches []*domain.DogProfile
	for _, d := range dogs {
		if d.ID == ref {
			return d, nil
		}
		if len(ref) >= minIDPrefix && strings.HasPrefix(d.ID, ref) {
			matches = append(matches, d)
			continue
		}
		if strings.EqualFold(d.DisplayName(), ref) {
			matches = append(matches, d)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("dog %q: %w", ref, repository.ErrNotFound)
	default:
		return nil, fmt.Errorf("dog %q is ambiguous (%d matches); use the position or id", ref, len(matches))
	}
}
