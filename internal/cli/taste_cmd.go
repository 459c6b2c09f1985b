package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pawplan/internal/cli/formatter"
	"github.com/alexanderramin/pawplan/internal/domain"
)

func newTasteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taste",
		Short: "Taste log and learned preferences",
	}
	cmd.AddCommand(
		newTasteLogCmd(app),
		newTasteListCmd(app),
		newTasteSummaryCmd(app),
	)
	return cmd
}

func newTasteLogCmd(app *App) *cobra.Command {
	var (
		dogRef   string
		protein  string
		veg      string
		reaction string
		note     string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record how the dog responded to a protein and/or vegetable",
		Example: `  pawplan taste log --protein turkey --reaction love
  pawplan taste log --veg pumpkin --reaction dislike --note "left it in the bowl"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(protein) == "" && strings.TrimSpace(veg) == "" && strings.TrimSpace(note) == "" {
				return fmt.Errorf("nothing to log; pass --protein, --veg or --note")
			}
			ctx := context.Background()
			d, err := resolveDog(ctx, app, dogRef)
			if err != nil {
				return err
			}
			e := &domain.TasteEntry{
				DogID:      d.ID,
				Protein:    optionalString(protein),
				Veg:        optionalString(veg),
				Preference: domain.PreferenceLabel(reaction),
				Note:       strings.TrimSpace(note),
			}
			if err := app.Tastes.Log(ctx, e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s for %s\n",
				formatter.StyleGreen.Render("Logged"),
				formatter.PreferenceStyle(e.Preference).Render(string(e.Preference)),
				formatter.Bold(d.DisplayName()))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&dogRef, "dog", "", "Dog position, name or id (default: active)")
	f.StringVar(&protein, "protein", "", "Protein served (prefix ok, e.g. turkey)")
	f.StringVar(&veg, "veg", "", "Vegetable served (prefix ok, e.g. pumpkin)")
	f.StringVar(&reaction, "reaction", string(domain.PrefNeutral), "dislike, neutral, like or love")
	f.StringVar(&note, "note", "", "Free-text note")
	return cmd
}

func newTasteListCmd(app *App) *cobra.Command {
	var dogRef string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the taste log for a dog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d, err := resolveDog(ctx, app, dogRef)
			if err != nil {
				return err
			}
			entries, err := app.Tastes.ListByDog(ctx, d.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasteLog(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&dogRef, "dog", "", "Dog position, name or id (default: active)")
	return cmd
}

func newTasteSummaryCmd(app *App) *cobra.Command {
	var dogRef string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Rank proteins and vegetables by mean preference score",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d, err := resolveDog(ctx, app, dogRef)
			if err != nil {
				return err
			}
			prefs, err := app.Tastes.Preferences(ctx, d.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPreferenceSummary(d.DisplayName(), prefs))
			return nil
		},
	}
	cmd.Flags().StringVar(&dogRef, "dog", "", "Dog position, name or id (default: active)")
	return cmd
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
