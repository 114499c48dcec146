package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"prompt-manager/internal/service"
	"prompt-manager/internal/storage"
)

var (
	listFavorites bool
	listCategory  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stored prompts",
	Long: `Print every prompt in file order with its index, title and categories.
Favorites are marked with a star and highlighted.

Examples:
  prompt-manager list
  prompt-manager list --favorites
  prompt-manager list --category poses`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := service.NewPromptService(newStores(cfg)).List(cmd.Context())
		if err != nil {
			return err
		}

		if listFavorites {
			records = lo.Filter(records, func(r storage.PromptRecord, _ int) bool { return r.Favorite })
		}
		if c := storage.NormalizeCategory(listCategory); c != "" {
			records = lo.Filter(records, func(r storage.PromptRecord, _ int) bool {
				return lo.Contains(r.Categories, c)
			})
		}

		printPrompts(cmd.OutOrStdout(), records)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "only show favorites")
	listCmd.Flags().StringVar(&listCategory, "category", "", "only show prompts tagged with this category")

	rootCmd.AddCommand(listCmd)
}

var (
	favoriteColor = color.New(color.FgYellow, color.Bold)
	categoryColor = color.New(color.FgCyan)
	dimColor      = color.New(color.Faint)
)

func printPrompts(w io.Writer, records []storage.PromptRecord) {
	if len(records) == 0 {
		dimColor.Fprintln(w, "no prompts")
		return
	}

	for _, r := range records {
		mark := " "
		title := r.Title
		if r.Favorite {
			mark = storage.FavoriteMark
			title = favoriteColor.Sprint(r.Title)
		}
		fmt.Fprintf(w, "%3d. %s %s", r.Index, mark, title)
		if len(r.Categories) > 0 {
			fmt.Fprintf(w, " %s", categoryColor.Sprintf("[%s]", strings.Join(r.Categories, ", ")))
		}
		if r.Image != "" {
			fmt.Fprintf(w, " %s", dimColor.Sprintf("(%s)", r.Image))
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "     %s\n", r.Prompt)
	}
}
