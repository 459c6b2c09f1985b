package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/cli/formatter"
	"github.com/alexanderramin/pawplan/internal/contract"
	"github.com/alexanderramin/pawplan/internal/domain"
)

// ratioFlags selects a preset or a custom split.
type ratioFlags struct {
	preset string
	meat   int
	veg    int
	carb   int
}

func (r *ratioFlags) register(fs *pflag.FlagSet, defaultPreset string) {
	fs.StringVar(&r.preset, "preset", defaultPreset, "Ratio preset key (see 'presets')")
	fs.IntVar(&r.meat, "meat", 50, fmt.Sprintf("Custom meat %% (%d-%d)", catalog.MinCustomMeat, catalog.MaxCustomMeat))
	fs.IntVar(&r.veg, "veg", 35, fmt.Sprintf("Custom veg %% (%d-%d)", catalog.MinCustomVeg, catalog.MaxCustomVeg))
	fs.IntVar(&r.carb, "carb", 15, fmt.Sprintf("Custom carb %% (%d-%d)", catalog.MinCustomCarb, catalog.MaxCustomCarb))
}

// choice returns a custom split when any of --meat/--veg/--carb was given.
// Unset custom components keep their defaults.
func (r *ratioFlags) choice(fs *pflag.FlagSet) (contract.RatioChoice, error) {
	if !fs.Changed("meat") && !fs.Changed("veg") && !fs.Changed("carb") {
		return contract.RatioChoice{PresetKey: r.preset}, nil
	}
	if fs.Changed("preset") {
		return contract.RatioChoice{}, domain.NewValidationError("ratio", "use either --preset or --meat/--veg/--carb")
	}
	for _, b := range []struct {
		name   string
		v      int
		lo, hi int
	}{
		{"meat", r.meat, catalog.MinCustomMeat, catalog.MaxCustomMeat},
		{"veg", r.veg, catalog.MinCustomVeg, catalog.MaxCustomVeg},
		{"carb", r.carb, catalog.MinCustomCarb, catalog.MaxCustomCarb},
	} {
		if b.v < b.lo || b.v > b.hi {
			return contract.RatioChoice{}, domain.NewValidationError(b.name, fmt.Sprintf("must be between %d and %d, got %d", b.lo, b.hi, b.v))
		}
	}
	return contract.RatioChoice{Custom: &domain.Ratio{MeatPct: r.meat, VegPct: r.veg, CarbPct: r.carb}}, nil
}

func newEnergyCmd(app *App) *cobra.Command {
	var dogRef string
	var rf ratioFlags

	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Daily energy estimate and gram targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnergy(cmd, app, dogRef, &rf)
		},
	}
	cmd.Flags().StringVar(&dogRef, "dog", "", "Dog position, name or id (default: active)")
	rf.register(cmd.Flags(), app.Config.DefaultPreset)
	return cmd
}

// newRatioCmd is the ratio explorer: the same report as energy, led by the
// chosen split, so custom sliders can be tried quickly.
func newRatioCmd(app *App) *cobra.Command {
	var dogRef string
	var rf ratioFlags

	cmd := &cobra.Command{
		Use:   "ratio",
		Short: "Try a ratio preset or a custom meat/veg/carb split",
		Example: `  pawplan ratio --preset senior
  pawplan ratio --meat 55 --veg 30 --carb 15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnergy(cmd, app, dogRef, &rf)
		},
	}
	cmd.Flags().StringVar(&dogRef, "dog", "", "Dog position, name or id (default: active)")
	rf.register(cmd.Flags(), app.Config.DefaultPreset)
	return cmd
}

func runEnergy(cmd *cobra.Command, app *App, dogRef string, rf *ratioFlags) error {
	ctx := context.Background()
	d, err := resolveDog(ctx, app, dogRef)
	if err != nil {
		return err
	}
	choice, err := rf.choice(cmd.Flags())
	if err != nil {
		return err
	}
	req := contract.NewEnergyRequest()
	req.DogID = d.ID
	req.Ratio = choice

	resp, err := app.Plans.Energy(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEnergy(resp))
	return nil
}
