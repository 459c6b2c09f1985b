package catalog

import "strings"

type Supplement struct {
	Name     string
	Why      string
	BestFor  []string
	Cautions string
	Pairing  string
}

const (
	suppOmega3     = "Omega-3 (Fish Oil)"
	suppProbiotics = "Probiotics"
	suppPrebiotic  = "Prebiotic Fiber (e.g., inulin, MOS)"
	suppCalcium    = "Calcium Support (for home-cooked)"
	suppMultivit   = "Canine Multivitamin"
	suppJoint      = "Joint Support (Glucosamine/Chondroitin/UC-II)"
	suppVitaminE   = "Vitamin E (as guided)"
	suppDental     = "Dental Additives (vet-approved)"
	suppCarnitine  = "L-Carnitine (vet-guided)"
)

var supplements = []Supplement{
	{Name: suppOmega3, Why: "Supports skin/coat, joint comfort, and inflammatory balance.",
		BestFor:  []string{"Dry/itchy skin", "Senior dogs", "Joint support plans"},
		Cautions: "Dose carefully; may loosen stool. Check with vet if on clotting-related meds.",
		Pairing:  "Pairs well with lean proteins and antioxidant-rich vegetables."},
	{Name: suppProbiotics, Why: "May improve gut resilience and stool stability.",
		BestFor:  []string{"Sensitive stomach", "Diet transitions", "Stress-related GI changes"},
		Cautions: "Choose canine-specific options.",
		Pairing:  "Works nicely with pumpkin, oats, and gentle proteins."},
	{Name: suppPrebiotic, Why: "Supports beneficial gut bacteria and stool quality.",
		BestFor:  []string{"Soft stools", "Gut resilience goals"},
		Cautions: "Too much can cause gas.",
		Pairing:  "Often paired with probiotics."},
	{Name: suppCalcium, Why: "Home-cooked diets commonly need calcium balancing.",
		BestFor:  []string{"Puppies", "Long-term cooked routines"},
		Cautions: "Over/under supplementation can be risky; vet nutritionist advised.",
		Pairing:  "Essential when meals are fully home-prepared."},
	{Name: suppMultivit, Why: "Helps cover micronutrient gaps in simplified recipes.",
		BestFor:  []string{"Limited ingredient variety", "Long-term home cooking"},
		Cautions: "Avoid human multivitamins unless approved.",
		Pairing:  "Best with weekly rotation."},
	{Name: suppJoint, Why: "May support mobility and cartilage health.",
		BestFor:  []string{"Large breeds", "Senior dogs", "Highly active dogs"},
		Cautions: "Effects vary and take time.",
		Pairing:  "Pairs with omega-3 and weight control."},
	{Name: suppVitaminE, Why: "Antioxidant support often used alongside omega-3.",
		BestFor:  []string{"Dogs on long-term fish oil"},
		Cautions: "Avoid excessive dosing.",
		Pairing:  "Consider with fatty acid protocols."},
	{Name: suppDental, Why: "Helps reduce plaque when brushing is difficult.",
		BestFor:  []string{"Small breeds", "Dental-prone dogs"},
		Cautions: "Not a substitute for brushing.",
		Pairing:  "Pair with safe chewing strategies."},
	{Name: suppCarnitine, Why: "May assist some weight or cardiac strategies.",
		BestFor:  []string{"Vet-supervised weight plans"},
		Cautions: "Use under professional advice.",
		Pairing:  "Best with lean protein + veggie-heavy ratios."},
}

// Focus tags accepted by SuggestSupplements, in display order.
var SupplementFocuses = []string{
	"Skin/Coat",
	"Gut",
	"Joint/Mobility",
	"Puppy Growth Support",
	"Senior Vitality",
	"Weight Management",
	"Dental Support",
}

var focusRules = map[string][]string{
	"Skin/Coat":            {suppOmega3, suppVitaminE},
	"Gut":                  {suppProbiotics, suppPrebiotic},
	"Joint/Mobility":       {suppJoint, suppOmega3},
	"Puppy Growth Support": {suppCalcium, suppMultivit},
	"Senior Vitality":      {suppOmega3, suppJoint, suppProbiotics},
	"Weight Management":    {suppProbiotics, suppCarnitine},
	"Dental Support":       {suppDental},
}

func Supplements() []Supplement {
	out := make([]Supplement, len(supplements))
	copy(out, supplements)
	return out
}

// SuggestSupplements returns supplement names for the selected focus tags.
// Tags are evaluated in SupplementFocuses order, not selection order, and
// names are deduped by first occurrence. Unknown tags are ignored.
func SuggestSupplements(focus []string) []string {
	selected := make(map[string]bool, len(focus))
	for _, f := range focus {
		selected[f] = true
	}
	var out []string
	seen := map[string]bool{}
	for _, tag := range SupplementFocuses {
		if !selected[tag] {
			continue
		}
		for _, name := range focusRules[tag] {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// IsSupplementFocus reports whether tag is a known focus.
func IsSupplementFocus(tag string) bool {
	_, ok := focusRules[tag]
	return ok
}

// ParseSupplementFocus matches a focus tag case-insensitively. A unique
// prefix is accepted ("joint" matches "Joint/Mobility").
func ParseSupplementFocus(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	var match string
	for _, tag := range SupplementFocuses {
		lower := strings.ToLower(tag)
		if lower == s {
			return tag, true
		}
		if strings.HasPrefix(lower, s) {
			if match != "" {
				return "", false
			}
			match = tag
		}
	}
	return match, match != ""
}
