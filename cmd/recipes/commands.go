package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
)

// NewRecipesCommand creates the recipes command
func NewRecipesCommand() *cobra.Command {
	var category, search string
	var surprise, asJSON bool

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List recipes from the catalog",
		Long:  `List the recipe catalog filtered by category and search text. The featured recipe is marked with "*".`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newServiceFromFlags(cmd)
			if err != nil {
				return fmt.Errorf("failed to create service: %w", err)
			}

			b := simplerecipes.RecipeBrowserFor(svc)
			b.SetCategory(category)
			b.SetSearch(search)
			if surprise {
				b.Surprise()
			}
			view := b.View()

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, view)
			}
			printRecipes(out, view)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", simplerecipes.CategoryAll, "category to show")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive title search")
	cmd.Flags().BoolVar(&surprise, "surprise", false, "feature a random recipe")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the view as JSON")

	return cmd
}

func printRecipes(w io.Writer, view simplerecipes.RecipeView) {
	if view.Empty {
		fmt.Fprintln(w, "No recipes found.")
		return
	}
	for i, r := range view.Recipes {
		marker := " "
		if i == view.FeaturedIndex {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s %-28s %-9s %-7s %.1f  %s\n", marker, r.Emoji, r.Title, r.Time, r.Difficulty, r.Rating, r.Category)
	}
}

// NewBlogCommand creates the blog command group
func NewBlogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Browse blog posts",
	}
	cmd.AddCommand(NewBlogListCommand())
	cmd.AddCommand(NewBlogShowCommand())
	return cmd
}

// NewBlogListCommand creates the blog list command
func NewBlogListCommand() *cobra.Command {
	var search, category, sort string
	var visible int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blog posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := simplerecipes.ParseSortOrder(sort)
			if err != nil {
				return err
			}

			svc, cfg, err := newServiceFromFlags(cmd)
			if err != nil {
				return fmt.Errorf("failed to create service: %w", err)
			}

			filter := cfg.NewFilterState().
				WithSearch(search).
				WithCategory(category).
				WithSort(order)
			if visible > filter.Visible {
				filter.Visible = visible
			}

			view := simplerecipes.NewBlogListView(svc, filter)
			if err := view.Load(cmd.Context()); err != nil {
				return fmt.Errorf("%s: %w", view.Snapshot().Message, err)
			}
			snap := view.Snapshot()

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, snap)
			}
			printBlogList(out, snap.List)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive title and description search")
	cmd.Flags().StringVar(&category, "category", simplerecipes.CategoryAll, "category to show")
	cmd.Flags().StringVar(&sort, "sort", string(simplerecipes.SortNewest), "sort order (newest or oldest)")
	cmd.Flags().IntVar(&visible, "visible", 0, "number of posts to show (default: page size)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the view as JSON")

	return cmd
}

func printBlogList(w io.Writer, list simplerecipes.BlogList) {
	if list.Empty {
		fmt.Fprintln(w, "No posts match your search.")
		return
	}
	for _, item := range list.Items {
		created := "          "
		if !item.CreatedAt.IsZero() {
			created = item.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s  %-24s %s\n", created, item.ID, item.Title)
	}
	fmt.Fprintf(w, "\nShowing %d of %d\n", list.Shown, list.Total)
}

// NewBlogShowCommand creates the blog show command
func NewBlogShowCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <entry-id>",
		Short: "Show one blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newServiceFromFlags(cmd)
			if err != nil {
				return fmt.Errorf("failed to create service: %w", err)
			}

			view := simplerecipes.NewBlogDetailView(svc)
			if err := view.Load(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s: %w", view.Snapshot().Message, err)
			}
			snap := view.Snapshot()

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, snap)
			}
			printDetail(out, *snap.Detail)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the view as JSON")
	return cmd
}

func printDetail(w io.Writer, d simplerecipes.BlogEntryDetail) {
	fmt.Fprintln(w, d.Title)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(d.Title))))
	fmt.Fprintf(w, "By %s · %s\n", d.Author, d.Date)
	if d.HasImage() {
		fmt.Fprintf(w, "Image: %s\n", d.ImageURL)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, simplerecipes.RenderText(d.Content))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
