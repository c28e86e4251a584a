package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/boxoffice"
	"github.com/agentstation/boxoffice/internal/cmd/globals"
	"github.com/agentstation/boxoffice/pkg/catalogs"
	"github.com/agentstation/boxoffice/pkg/logging"
)

// removeCmd represents the remove command.
var removeCmd = &cobra.Command{
	Use:     "remove <title>",
	Aliases: []string{"rm"},
	Short:   "Remove a movie from the catalog",
	Long: `Remove the movie with the given title from the catalog file.

Delimited files are rewritten keeping every non-matching line; removing a
title that isn't present is not an error there. Document files (.json,
.yaml) are loaded first, and removing an absent title fails.

Examples:
  boxoffice remove "Movie 3"
  boxoffice rm "Movie 3" -f movies.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	title := args[0]
	path := catalogFile(flags)

	if _, ok := catalogs.DocumentFormatForPath(path); ok {
		cat, err := boxoffice.New(boxoffice.WithPath(path))
		if err != nil {
			return err
		}
		if err := cat.Remove(title); err != nil {
			return err
		}
		if err := cat.Save(path); err != nil {
			return err
		}
	} else if err := catalogs.RemoveFromFile(path, title); err != nil {
		return err
	}

	logging.Info().Str("title", title).Str("path", path).Msg("Removed movie")
	return nil
}
