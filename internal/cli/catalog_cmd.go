package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pawplan/internal/catalog"
	"github.com/alexanderramin/pawplan/internal/cli/formatter"
	"github.com/alexanderramin/pawplan/internal/domain"
)

func newIngredientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ingredients",
		Aliases: []string{"ingredient", "ing"},
		Short:   "Ingredient encyclopedia",
	}
	cmd.AddCommand(newIngredientsListCmd(), newIngredientsShowCmd())
	return cmd
}

func newIngredientsListCmd() *cobra.Command {
	var (
		categories []string
		search     string
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List ingredients with per-100 g nutrition",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := make([]domain.Category, 0, len(categories))
			for _, c := range categories {
				cat, ok := parseCategory(c)
				if !ok {
					return domain.NewValidationError("category", fmt.Sprintf("unknown category %q", c))
				}
				cats = append(cats, cat)
			}
			items := catalog.FilterIngredients(catalog.IngredientFilter{Categories: cats, Search: search})
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIngredientList(items))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Meat, Veg, Carb, Oil or Treat (repeatable)")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name filter")
	return cmd
}

func newIngredientsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show an ingredient's nutrition, benefits and cautions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			name, ok := catalog.Resolve(input, "")
			if !ok {
				return domain.NewValidationError("ingredient", fmt.Sprintf("%q is not in the catalog (or matches several entries)", input))
			}
			in, _ := catalog.Lookup(name)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIngredientCard(in))
			return nil
		},
	}
}

func parseCategory(s string) (domain.Category, bool) {
	for _, c := range domain.Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List ratio presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPresets(catalog.Presets(), catalog.DefaultPresetKey))
			return nil
		},
	}
}

func newSupplementsCmd() *cobra.Command {
	var focus []string
	cmd := &cobra.Command{
		Use:   "supplements",
		Short: "Supplement guide, optionally narrowed by focus",
		Example: `  pawplan supplements
  pawplan supplements --focus joint --focus skin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := make([]string, 0, len(focus))
			for _, f := range focus {
				tag, ok := catalog.ParseSupplementFocus(f)
				if !ok {
					return domain.NewValidationError("focus", fmt.Sprintf("unknown focus %q (choose from %s)", f, strings.Join(catalog.SupplementFocuses, ", ")))
				}
				tags = append(tags, tag)
			}
			var highlight []string
			if len(tags) > 0 {
				highlight = catalog.SuggestSupplements(tags)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSupplements(catalog.Supplements(), highlight))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&focus, "focus", nil, "Focus tag, e.g. joint, skin, gut (repeatable)")
	return cmd
}

func newBreedsCmd() *cobra.Command {
	var (
		search string
		groups []string
		region []string
		sizes  []string
	)
	cmd := &cobra.Command{
		Use:   "breeds",
		Short: "Breed atlas",
		RunE: func(cmd *cobra.Command, args []string) error {
			allGroups, allRegions, allSizes := catalog.BreedFacets()
			f := catalog.BreedFilter{Search: search}
			var err error
			if f.Groups, err = matchFacets("group", groups, allGroups); err != nil {
				return err
			}
			if f.Regions, err = matchFacets("region", region, allRegions); err != nil {
				return err
			}
			if f.Sizes, err = matchFacets("size", sizes, allSizes); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBreeds(catalog.FilterBreeds(f)))
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name or notes filter")
	cmd.Flags().StringSliceVar(&groups, "group", nil, "FCI group prefix, e.g. \"Group 8\"")
	cmd.Flags().StringSliceVar(&region, "region", nil, "Region, e.g. Europe")
	cmd.Flags().StringSliceVar(&sizes, "size", nil, "Size class, e.g. Large")
	return cmd
}

// matchFacets expands case-insensitive prefixes to the facet values they
// select. An input that selects nothing is an error.
func matchFacets(field string, inputs, facets []string) ([]string, error) {
	var out []string
	for _, in := range inputs {
		needle := strings.ToLower(strings.TrimSpace(in))
		found := false
		for _, v := range facets {
			if strings.HasPrefix(strings.ToLower(v), needle) {
				out = append(out, v)
				found = true
			}
		}
		if !found {
			return nil, domain.NewValidationError(field, fmt.Sprintf("unknown %s %q", field, in))
		}
	}
	return out, nil
}
