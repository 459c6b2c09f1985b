package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pawplan/internal/cli/formatter"
	"github.com/alexanderramin/pawplan/internal/domain"
)

func newDogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dog",
		Aliases: []string{"dogs"},
		Short:   "Manage the session's dog profiles",
	}
	cmd.AddCommand(
		newDogAddCmd(app),
		newDogListCmd(app),
		newDogUseCmd(app),
		newDogShowCmd(app),
		newDogEditCmd(app),
		newDogRemoveCmd(app),
	)
	return cmd
}

func newDogAddCmd(app *App) *cobra.Command {
	var pf profileFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a dog profile and make it active",
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := pf.patch(cmd.Flags())
			if err != nil {
				return err
			}
			d, err := app.Dogs.Add(context.Background(), patch.Apply(domain.NewDefaultDog("")))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("Added"), formatter.Bold(d.DisplayName()))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDogCard(d, true))
			return nil
		},
	}
	pf.register(cmd.Flags())
	return cmd
}

func newDogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List dog profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dogs, err := app.Dogs.List(ctx)
			if err != nil {
				return err
			}
			activeID := ""
			if active, err := app.Dogs.Active(ctx); err == nil {
				activeID = active.ID
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDogList(dogs, activeID))
			return nil
		},
	}
}

func newDogUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <n|name|id>",
		Short: "Switch the active dog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d, err := resolveDog(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Dogs.SetActive(ctx, d.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active dog: %s\n", formatter.StyleGreen.Render(d.DisplayName()))
			return nil
		},
	}
}

func newDogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [n|name|id]",
		Short: "Show a dog profile (default: active)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d, err := resolveDog(ctx, app, firstArg(args))
			if err != nil {
				return err
			}
			active, _ := app.Dogs.Active(ctx)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDogCard(d, active != nil && active.ID == d.ID))
			return nil
		},
	}
}

func newDogEditCmd(app *App) *cobra.Command {
	var pf profileFlags
	cmd := &cobra.Command{
		Use:   "edit [n|name|id]",
		Short: "Edit a dog profile (default: active)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d, err := resolveDog(ctx, app, firstArg(args))
			if err != nil {
				return err
			}
			patch, err := pf.patch(cmd.Flags())
			if err != nil {
				return err
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change; pass at least one profile flag")
			}
			updated, err := app.Dogs.Edit(ctx, d.ID, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("Saved"), formatter.Bold(updated.DisplayName()))
			return nil
		},
	}
	pf.register(cmd.Flags())
	return cmd
}

func newDogRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <n|name|id>",
		Aliases: []string{"rm"},
		Short:   "Remove a dog profile",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d, err := resolveDog(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Dogs.Remove(ctx, d.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", d.DisplayName())
			if active, err := app.Dogs.Active(ctx); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Active dog: %s\n", formatter.StyleGreen.Render(active.DisplayName()))
			}
			return nil
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
