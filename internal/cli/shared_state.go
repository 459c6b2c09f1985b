package cli

import "context"

// sharedState is the shell state visible to every view and the command bar.
type sharedState struct {
	App    *App
	Width  int
	Height int

	// ActiveDogName is refreshed after each command so the prompt tracks
	// "dog use" and "dog remove".
	ActiveDogName string
}

func (s *sharedState) refreshActiveDog() {
	if s.App == nil || s.App.Dogs == nil {
		return
	}
	d, err := s.App.Dogs.Active(context.Background())
	if err != nil {
		s.ActiveDogName = ""
		return
	}
	s.ActiveDogName = d.DisplayName()
}

// ContentHeight is the height left for view content after the header (2
// lines), the status bar (2 lines) and the command bar (1 line).
func (s *sharedState) ContentHeight() int {
	return max(s.Height-5, 1)
}
