package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	var dev bool
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "recipes",
		Short: "Simple Recipes CLI - browse recipes and blog posts",
		Long: `Simple Recipes Command Line Interface

Browse the recipe catalog and the blog posts stored in Contentful from
the terminal.

Configuration is read from the environment (see "recipes env").
Use --dev to work against built-in sample posts instead.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&dev, "dev", false, "use in-memory sample content")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(NewRecipesCommand())
	rootCmd.AddCommand(NewBlogCommand())
	rootCmd.AddCommand(NewEnvCommand())

	return rootCmd
}
