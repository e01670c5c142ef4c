package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/prefs"
	"github.com/atomicstack/termfolio/internal/theme"
)

var errNotTerminal = errors.New("--pick needs an interactive terminal")

func newThemeCmd(st *state) *cobra.Command {
	var pick bool
	cmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "Show, set or pick the saved theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := prefs.Open(ctx, st.cfg.App.DBPath)
			if err != nil {
				return fmt.Errorf("open preferences: %w", err)
			}
			defer store.Close()

			current, err := store.Theme(ctx, theme.DefaultName)
			if err != nil {
				return fmt.Errorf("read theme: %w", err)
			}
			out := cmd.OutOrStdout()

			var name string
			switch {
			case len(args) == 1:
				name = strings.ToLower(strings.TrimSpace(args[0]))
			case pick:
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return errNotTerminal
				}
				name, err = pickTheme(current)
				if err != nil {
					return err
				}
			default:
				for _, n := range theme.Names() {
					marker := "  "
					if n == current {
						marker = "* "
					}
					fmt.Fprintln(out, marker+n)
				}
				return nil
			}

			if !theme.Valid(name) {
				return fmt.Errorf("unknown theme: %s. Available themes: %s", name, strings.Join(theme.Names(), ", "))
			}
			err = store.SetTheme(ctx, name)
			events.Theme.Persist(name, err)
			if err != nil {
				return fmt.Errorf("save theme: %w", err)
			}
			events.Theme.Change(current, name)
			fmt.Fprintf(out, "Theme set to %s.\n", name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&pick, "pick", false, "choose the theme interactively")
	return cmd
}

func pickTheme(current string) (string, error) {
	selected := current
	names := theme.Names()
	options := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		options = append(options, huh.NewOption(n, n))
	}
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose a theme").
				Options(options...).
				Value(&selected),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return selected, nil
}
