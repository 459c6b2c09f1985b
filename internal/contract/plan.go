package contract

import (
	"time"

	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/planner"
)

type WeekPlanRequest struct {
	DogID          string // empty means the active dog
	Ratio          RatioChoice
	Pantry         planner.Pools
	SmartRotation  bool
	PantryOnly     bool
	UseTaste       bool
	IncludeToppers bool
	Seed           int64
}

func NewWeekPlanRequest(seed int64) WeekPlanRequest {
	return WeekPlanRequest{
		Ratio:          RatioChoice{PresetKey: catalog.DefaultPresetKey},
		SmartRotation:  true,
		UseTaste:       true,
		IncludeToppers: true,
		Seed:           seed,
	}
}

// AllowExpansion reports whether pools may grow beyond the pantry.
func (r WeekPlanRequest) AllowExpansion() bool {
	return r.SmartRotation && !r.PantryOnly
}

type WeekPlanResponse struct {
	GeneratedAt time.Time
	Dog         *domain.DogProfile
	Seed        int64
	Ratio       domain.Ratio
	RatioLabel  string
	Energy      planner.EnergyEstimate
	DailyGrams  float64
	Days        []domain.RotationPlanDay
	Shopping    planner.ShoppingList
	Preferences planner.PreferenceMaps
	Warnings    []string
}

type PlanErrorCode string

const (
	ErrInvalidInput       PlanErrorCode = "INVALID_INPUT"
	ErrEmptyCandidatePool PlanErrorCode = "EMPTY_CANDIDATE_POOL"
	ErrDogNotFound        PlanErrorCode = "DOG_NOT_FOUND"
	ErrInternalError      PlanErrorCode = "INTERNAL_ERROR"
)

// PlanError is returned by plan generation. Err keeps the underlying cause
// for errors.Is checks.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *PlanError) Unwrap() error {
	return e.Err
}
