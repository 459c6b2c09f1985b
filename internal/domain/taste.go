package domain

import "time"

// TasteEntry is one observation of how a dog responded to a protein and/or
// vegetable. The snapshot fields are informational only.
type TasteEntry struct {
	ID         string
	DogID      string
	Protein    *string
	Veg        *string
	Preference PreferenceLabel
	Note       string

	DogName     string
	DogBreed    string
	DogAgeYears float64
	DogWeightKg float64

	CreatedAt time.Time
}
