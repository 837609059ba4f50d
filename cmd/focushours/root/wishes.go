package root

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/ui"
)

// wishFile is the YAML document read by `wishes save --file`.
//
//	wishes:
//	  - text: Learn Rust
//	    type: study
//	  - id: wish_2
//	    text: Visit Kyoto
type wishFile struct {
	Wishes []wishEntry `yaml:"wishes"`
}

type wishEntry struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
	Type string `yaml:"type"`
	Icon string `yaml:"icon"`
}

func readWishFile(path string) ([]wishEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wishes file: %w", err)
	}
	var doc wishFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse wishes file %s: %w", path, err)
	}
	return doc.Wishes, nil
}

// toWish builds a wish from an entry. An untyped entry gets a category
// guessed from its text. Focus hours and the creation time of an existing
// wish with the same id are kept.
func (e wishEntry) toWish(existing []domain.Wish) domain.Wish {
	w := domain.Wish{ID: e.ID, Text: e.Text, Category: domain.Category(e.Type), Icon: e.Icon}
	if w.Category == "" {
		w.Category = domain.MatchCategory(e.Text)
	}
	for _, old := range existing {
		if e.ID != "" && old.ID == e.ID {
			w.FocusHours = old.FocusHours
			w.CreatedAt = old.CreatedAt
		}
	}
	return w
}

func newWishesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishes",
		Short: "Manage the wish list of a planet",
	}
	cmd.AddCommand(
		newWishesListCmd(),
		newWishesAddCmd(),
		newWishesSaveCmd(),
		newWishesUpdateCmd(),
	)
	return cmd
}

func newWishesListCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the wishes of a planet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				y, err := yearFlag(ctx, a, year)
				if err != nil {
					return err
				}
				p, err := loadPlanet(ctx, a, y)
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), p.Wishes)
				}
				printWishes(cmd, p.Wishes)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Planet year (default: current)")
	return cmd
}

func newWishesAddCmd() *cobra.Command {
	var (
		year     int
		category string
	)
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Append a wish to a planet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return withApp(cmd, func(ctx context.Context, a *app) error {
				y, err := yearFlag(ctx, a, year)
				if err != nil {
					return err
				}
				p, err := loadPlanet(ctx, a, y)
				if err != nil {
					return err
				}
				entry := wishEntry{Text: text, Type: category}
				wishes := append(p.Wishes, entry.toWish(nil))
				saved, err := a.repo.SaveWishes(ctx, y, wishes)
				if err != nil {
					return err
				}
				added := saved[len(saved)-1]
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), added)
				}
				printWish(cmd.OutOrStdout(), added)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Planet year (default: current)")
	cmd.Flags().StringVarP(&category, "type", "t", "", "Wish category (default: guessed from the text)")
	return cmd
}

func newWishesSaveCmd() *cobra.Command {
	var (
		year int
		file string
	)
	cmd := &cobra.Command{
		Use:   "save --file wishes.yaml",
		Short: "Replace the wish list of a planet from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			entries, err := readWishFile(file)
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				y, err := yearFlag(ctx, a, year)
				if err != nil {
					return err
				}
				p, err := loadPlanet(ctx, a, y)
				if err != nil {
					return err
				}
				wishes := make([]domain.Wish, 0, len(entries))
				for _, e := range entries {
					wishes = append(wishes, e.toWish(p.Wishes))
				}
				saved, err := a.repo.SaveWishes(ctx, y, wishes)
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), saved)
				}
				printWishes(cmd, saved)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Planet year (default: current)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with a wishes list")
	return cmd
}

func newWishesUpdateCmd() *cobra.Command {
	var (
		year                 int
		text, category, icon string
	)
	cmd := &cobra.Command{
		Use:   "update <wish-id>",
		Short: "Change the text, category or icon of a wish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.WishPatch
			if cmd.Flags().Changed("text") {
				patch.Text = &text
			}
			if cmd.Flags().Changed("type") {
				c := domain.Category(category)
				patch.Category = &c
			}
			if cmd.Flags().Changed("icon") {
				patch.Icon = &icon
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				y, err := yearFlag(ctx, a, year)
				if err != nil {
					return err
				}
				w, err := a.repo.UpdateWish(ctx, y, args[0], patch)
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), w)
				}
				printWish(cmd.OutOrStdout(), *w)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Planet year (default: current)")
	cmd.Flags().StringVar(&text, "text", "", "New wish text")
	cmd.Flags().StringVarP(&category, "type", "t", "", "New category")
	cmd.Flags().StringVar(&icon, "icon", "", "New icon reference")
	return cmd
}

func printWishes(cmd *cobra.Command, wishes []domain.Wish) {
	out := cmd.OutOrStdout()
	if len(wishes) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("no wishes"))
		return
	}
	for _, w := range wishes {
		printWish(out, w)
	}
}
