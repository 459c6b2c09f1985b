package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/cli/formatter"
	"github.com/alexanderramin/pawplan/internal/domain"
)

// pawplanHuhTheme returns a huh theme using the formatter palette.
func pawplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// dogFormValues backs the profile wizard. Numeric fields are strings so
// the inputs can validate free text.
type dogFormValues struct {
	name        string
	breed       string
	age         string
	weight      string
	neutered    bool
	activity    domain.ActivityLevel
	flags       []domain.SpecialFlag
	current     domain.FlagSet
	meals       int
	kcalPerGram string
}

func newDogFormValues(d *domain.DogProfile) *dogFormValues {
	v := &dogFormValues{
		name:        d.Name,
		breed:       d.Breed,
		age:         strconv.FormatFloat(d.AgeYears, 'f', -1, 64),
		weight:      strconv.FormatFloat(d.WeightKg, 'f', -1, 64),
		neutered:    d.Neutered,
		activity:    d.Activity,
		current:     d.Flags,
		meals:       d.MealsPerDay,
		kcalPerGram: strconv.FormatFloat(d.KcalPerGram, 'f', -1, 64),
	}
	if !d.Flags.IsNone() {
		v.flags = d.Flags.Flags()
	}
	return v
}

// patch converts the form into a full profile patch.
func (v *dogFormValues) patch() (domain.DogPatch, error) {
	age, err := parsePositive("age", v.age)
	if err != nil {
		return domain.DogPatch{}, err
	}
	weight, err := parsePositive("weight", v.weight)
	if err != nil {
		return domain.DogPatch{}, err
	}
	kcal, err := parsePositive("kcal_per_gram", v.kcalPerGram)
	if err != nil {
		return domain.DogPatch{}, err
	}
	name := strings.TrimSpace(v.name)
	breed := domain.CoalesceStr(v.breed, domain.DefaultBreed)
	neutered := v.neutered
	activity := v.activity
	flags := v.flagSet()
	meals := v.meals
	return domain.DogPatch{
		Name:        &name,
		Breed:       &breed,
		AgeYears:    &age,
		WeightKg:    &weight,
		Neutered:    &neutered,
		Activity:    &activity,
		Flags:       &flags,
		MealsPerDay: &meals,
		KcalPerGram: &kcal,
	}, nil
}

// flagSet applies the multi-select to a copy of the profile's flags, adding
// what is checked and removing what is not.
func (v *dogFormValues) flagSet() domain.FlagSet {
	set := domain.NewFlagSet(v.current.Flags()...)
	checked := make(map[domain.SpecialFlag]bool, len(v.flags))
	for _, f := range v.flags {
		checked[f] = true
	}
	for _, f := range domain.SpecialFlags {
		if f == domain.FlagNone {
			continue
		}
		if checked[f] {
			set.Add(f)
		} else {
			set.Remove(f)
		}
	}
	return set
}

func parsePositive(field, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, domain.NewValidationError(field, fmt.Sprintf("%q is not a number", s))
	}
	if f <= 0 {
		return 0, domain.NewValidationError(field, fmt.Sprintf("must be positive, got %g", f))
	}
	return f, nil
}

func validatePositive(field string) func(string) error {
	return func(s string) error {
		_, err := parsePositive(field, s)
		return err
	}
}

func validateEnergyDensity(s string) error {
	f, err := parsePositive("kcal_per_gram", s)
	if err != nil {
		return err
	}
	if f < domain.MinEnergyDensity || f > domain.MaxEnergyDensity {
		return fmt.Errorf("must be between %g and %g", domain.MinEnergyDensity, domain.MaxEnergyDensity)
	}
	return nil
}

// wizardDogProfile builds the add/edit profile form over v.
func wizardDogProfile(v *dogFormValues) *huh.Form {
	breeds := catalog.Breeds()
	breedOpts := make([]huh.Option[string], 0, len(breeds))
	for _, b := range breeds {
		breedOpts = append(breedOpts, huh.NewOption(b.Name, b.Name))
	}

	activityOpts := make([]huh.Option[domain.ActivityLevel], 0, len(domain.ActivityLevels))
	for _, a := range domain.ActivityLevels {
		activityOpts = append(activityOpts, huh.NewOption(string(a), a))
	}

	var flagOpts []huh.Option[domain.SpecialFlag]
	for _, f := range domain.SpecialFlags {
		if f == domain.FlagNone {
			continue
		}
		flagOpts = append(flagOpts, huh.NewOption(f.Label(), f))
	}

	mealOpts := make([]huh.Option[int], 0, domain.MaxMealsPerDay)
	for n := domain.MinMealsPerDay; n <= domain.MaxMealsPerDay; n++ {
		mealOpts = append(mealOpts, huh.NewOption(strconv.Itoa(n), n))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("Leave blank to show as \"Dog N\"").
				Value(&v.name),
			huh.NewSelect[string]().
				Title("Breed").
				Options(breedOpts...).
				Filtering(true).
				Height(8).
				Value(&v.breed),
			huh.NewInput().
				Title("Age (years)").
				Value(&v.age).
				Validate(validatePositive("age")),
			huh.NewInput().
				Title("Weight (kg)").
				Value(&v.weight).
				Validate(validatePositive("weight")),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Spayed/neutered?").
				Value(&v.neutered),
			huh.NewSelect[domain.ActivityLevel]().
				Title("Activity").
				Options(activityOpts...).
				Value(&v.activity),
			huh.NewMultiSelect[domain.SpecialFlag]().
				Title("Special considerations").
				Description("Select none for no special considerations").
				Options(flagOpts...).
				Value(&v.flags),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Meals per day").
				Options(mealOpts...).
				Value(&v.meals),
			huh.NewInput().
				Title("Energy density (kcal per gram of cooked mix)").
				Value(&v.kcalPerGram).
				Validate(validateEnergyDensity),
		),
	).WithTheme(pawplanHuhTheme()).WithShowHelp(false)
}

// tasteFormValues backs the taste log wizard. Empty ingredient names mean
// "not part of this observation".
type tasteFormValues struct {
	protein    string
	veg        string
	preference domain.PreferenceLabel
	note       string
}

func newTasteFormValues() *tasteFormValues {
	return &tasteFormValues{preference: domain.PrefNeutral}
}

func (v *tasteFormValues) entry(dogID string) (*domain.TasteEntry, error) {
	if v.protein == "" && v.veg == "" && strings.TrimSpace(v.note) == "" {
		return nil, fmt.Errorf("nothing to log; pick a protein, a vegetable or write a note")
	}
	return &domain.TasteEntry{
		DogID:      dogID,
		Protein:    optionalString(v.protein),
		Veg:        optionalString(v.veg),
		Preference: v.preference,
		Note:       strings.TrimSpace(v.note),
	}, nil
}

func ingredientOptions(cat domain.Category) []huh.Option[string] {
	names := catalog.NamesIn(cat)
	opts := make([]huh.Option[string], 0, len(names)+1)
	opts = append(opts, huh.NewOption("(none)", ""))
	for _, n := range names {
		opts = append(opts, huh.NewOption(n, n))
	}
	return opts
}

// wizardTasteLog builds the taste observation form over v.
func wizardTasteLog(dogName string, v *tasteFormValues) *huh.Form {
	prefOpts := make([]huh.Option[domain.PreferenceLabel], 0, len(domain.PreferenceLabels))
	for _, p := range domain.PreferenceLabels {
		prefOpts = append(prefOpts, huh.NewOption(string(p), p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Protein served to " + dogName).
				Options(ingredientOptions(domain.CategoryMeat)...).
				Height(8).
				Value(&v.protein),
			huh.NewSelect[string]().
				Title("Vegetable served").
				Options(ingredientOptions(domain.CategoryVeg)...).
				Height(8).
				Value(&v.veg),
			huh.NewSelect[domain.PreferenceLabel]().
				Title("Reaction").
				Options(prefOpts...).
				Value(&v.preference),
			huh.NewInput().
				Title("Note").
				Placeholder("optional").
				Value(&v.note),
		),
	).WithTheme(pawplanHuhTheme()).WithShowHelp(false)
}
