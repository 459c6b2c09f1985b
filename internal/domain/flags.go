package domain

import (
	"fmt"
	"strings"
)

type SpecialFlag string

const (
	FlagNone          SpecialFlag = "none"
	FlagWeightLoss    SpecialFlag = "weight_loss"
	FlagSensitiveGut  SpecialFlag = "sensitive_stomach"
	FlagPancreatitis  SpecialFlag = "pancreatitis"
	FlagSkinCoat      SpecialFlag = "skin_coat"
	FlagPickyEater    SpecialFlag = "picky_eater"
	FlagKidney        SpecialFlag = "kidney"
	FlagFoodAllergy   SpecialFlag = "food_allergy"
	FlagJointMobility SpecialFlag = "joint_mobility"
)

// SpecialFlags is the canonical flag order. FlagSet keeps its members in
// this order regardless of insertion order.
var SpecialFlags = []SpecialFlag{
	FlagNone,
	FlagWeightLoss,
	FlagSensitiveGut,
	FlagPancreatitis,
	FlagSkinCoat,
	FlagPickyEater,
	FlagKidney,
	FlagFoodAllergy,
	FlagJointMobility,
}

var flagLabels = map[SpecialFlag]string{
	FlagNone:          "None",
	FlagWeightLoss:    "Overweight / Weight loss goal",
	FlagSensitiveGut:  "Sensitive stomach",
	FlagPancreatitis:  "Pancreatitis risk / Needs lower fat",
	FlagSkinCoat:      "Skin/coat concern",
	FlagPickyEater:    "Very picky eater",
	FlagKidney:        "Kidney concern (vet-managed)",
	FlagFoodAllergy:   "Food allergy suspected",
	FlagJointMobility: "Joint/mobility support focus",
}

// Label returns the human-readable name of the flag.
func (f SpecialFlag) Label() string {
	if l, ok := flagLabels[f]; ok {
		return l
	}
	return string(f)
}

// ParseSpecialFlag accepts either the code ("weight_loss") or the label.
func ParseSpecialFlag(s string) (SpecialFlag, error) {
	s = strings.TrimSpace(s)
	for _, f := range SpecialFlags {
		if strings.EqualFold(s, string(f)) || strings.EqualFold(s, flagLabels[f]) {
			return f, nil
		}
	}
	return "", NewValidationError("special_flags", fmt.Sprintf("unknown special consideration %q", s))
}

// FlagSet is a set of special considerations with a reserved None member.
// It is never empty and is either exactly {None} or contains no None.
// The zero value reads as {None}.
type FlagSet struct {
	members map[SpecialFlag]bool
}

// NewFlagSet builds a set from a batch selection. When None is selected
// together with real flags the real flags win, and an empty selection
// becomes {None}.
func NewFlagSet(flags ...SpecialFlag) FlagSet {
	s := FlagSet{members: make(map[SpecialFlag]bool)}
	for _, f := range flags {
		if f == FlagNone || f == "" {
			continue
		}
		s.members[f] = true
	}
	return s
}

// ParseFlagSet parses flag codes or labels into a FlagSet.
func ParseFlagSet(values []string) (FlagSet, error) {
	flags := make([]SpecialFlag, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		f, err := ParseSpecialFlag(v)
		if err != nil {
			return FlagSet{}, err
		}
		flags = append(flags, f)
	}
	return NewFlagSet(flags...), nil
}

// Add selects a flag. Selecting None clears every other flag; selecting a
// real flag clears None.
func (s *FlagSet) Add(f SpecialFlag) {
	if f == FlagNone {
		s.members = make(map[SpecialFlag]bool)
		return
	}
	if s.members == nil {
		s.members = make(map[SpecialFlag]bool)
	}
	s.members[f] = true
}

// Remove deselects a flag. Removing the last real flag leaves {None}.
func (s *FlagSet) Remove(f SpecialFlag) {
	delete(s.members, f)
}

// Has reports membership. Has(FlagNone) is true only for the empty selection.
func (s FlagSet) Has(f SpecialFlag) bool {
	if f == FlagNone {
		return len(s.members) == 0
	}
	return s.members[f]
}

// IsNone reports whether no special considerations are selected.
func (s FlagSet) IsNone() bool {
	return len(s.members) == 0
}

// Flags returns the members in canonical order.
func (s FlagSet) Flags() []SpecialFlag {
	if len(s.members) == 0 {
		return []SpecialFlag{FlagNone}
	}
	out := make([]SpecialFlag, 0, len(s.members))
	for _, f := range SpecialFlags {
		if s.members[f] {
			out = append(out, f)
		}
	}
	return out
}

// Codes returns the member codes, suitable for storage.
func (s FlagSet) Codes() []string {
	flags := s.Flags()
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = string(f)
	}
	return out
}

// Labels returns the member labels for display.
func (s FlagSet) Labels() []string {
	flags := s.Flags()
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = f.Label()
	}
	return out
}

func (s FlagSet) String() string {
	return strings.Join(s.Labels(), ", ")
}
