package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"prompt-manager/internal/service"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the category vocabulary",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := service.NewCategoryService(newStores(cfg)).List(cmd.Context())
		if err != nil {
			return err
		}
		printCategories(cmd.OutOrStdout(), categories)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func printCategories(w io.Writer, categories []string) {
	for _, c := range categories {
		fmt.Fprintln(w, categoryColor.Sprint(c))
	}
}
