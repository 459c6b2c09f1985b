package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pawplan/internal/cli/formatter"
	"github.com/alexanderramin/pawplan/internal/contract"
	"github.com/alexanderramin/pawplan/internal/domain"
	"github.com/alexanderramin/pawplan/internal/planner"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Meal plans",
	}
	cmd.AddCommand(newPlanWeekCmd(app))
	return cmd
}

func newPlanWeekCmd(app *App) *cobra.Command {
	var (
		dogRef     string
		rf         ratioFlags
		seed       int64
		reshuffle  bool
		pantry     planner.Pools
		pantryOnly bool
		noSmart    bool
		noTaste    bool
		noFruit    bool
		csvPath    string
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Generate a 7-day rotation with portions and a shopping list",
		Example: `  pawplan plan week --seed 7
  pawplan plan week --pantry-meat turkey,beef --pantry-only
  pawplan plan week --reshuffle --csv shopping.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d, err := resolveDog(ctx, app, dogRef)
			if err != nil {
				return err
			}
			choice, err := rf.choice(cmd.Flags())
			if err != nil {
				return err
			}

			if reshuffle {
				if cmd.Flags().Changed("seed") {
					return domain.NewValidationError("seed", "use either --seed or --reshuffle")
				}
				last, err := app.Plans.LastSeed(ctx)
				if err != nil {
					return err
				}
				seed = app.Config.DefaultSeed
				if last != nil {
					seed = *last + 1
				}
			}

			req := contract.NewWeekPlanRequest(seed)
			req.DogID = d.ID
			req.Ratio = choice
			req.Pantry = pantry
			req.PantryOnly = pantryOnly
			req.SmartRotation = !noSmart
			req.UseTaste = !noTaste
			req.IncludeToppers = !noFruit

			resp, err := app.Plans.GenerateWeek(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeekPlan(resp))

			if csvPath != "" {
				if err := writeShoppingCSV(app, csvPath, resp.Shopping); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s %s\n", formatter.StyleGreen.Render("Shopping list written to"), csvPath)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&dogRef, "dog", "", "Dog position, name or id (default: active)")
	rf.register(f, app.Config.DefaultPreset)
	f.Int64Var(&seed, "seed", app.Config.DefaultSeed, "Random seed; the same seed gives the same week")
	f.BoolVar(&reshuffle, "reshuffle", false, "Use the previous plan's seed plus one")
	f.StringSliceVar(&pantry.Meats, "pantry-meat", nil, "Proteins on hand")
	f.StringSliceVar(&pantry.Vegs, "pantry-veg", nil, "Vegetables on hand")
	f.StringSliceVar(&pantry.Carbs, "pantry-carb", nil, "Carbs on hand")
	f.BoolVar(&pantryOnly, "pantry-only", false, "Only use pantry items (empty categories use the full catalog)")
	f.BoolVar(&noSmart, "no-smart", false, "Disable smart rotation expansion beyond the pantry")
	f.BoolVar(&noTaste, "no-taste", false, "Ignore the taste log")
	f.BoolVar(&noFruit, "no-fruit", false, "Skip fruit toppers")
	f.StringVar(&csvPath, "csv", "", "Write the shopping list as CSV to this file")

	return cmd
}

func writeShoppingCSV(app *App, path string, list planner.ShoppingList) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return app.Plans.ExportShoppingCSV(f, list)
}
