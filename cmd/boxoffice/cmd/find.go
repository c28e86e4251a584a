package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/boxoffice"
	"github.com/agentstation/boxoffice/internal/cmd/globals"
	"github.com/agentstation/boxoffice/internal/cmd/output"
	"github.com/agentstation/boxoffice/pkg/catalogs"
)

// findCmd represents the find command.
var findCmd = &cobra.Command{
	Use:   "find <title>",
	Short: "Find one movie by title",
	Long: `Find the movie with the given title in the catalog file.

Delimited files are scanned line by line without loading the whole catalog;
document files (.json, .yaml) are loaded and queried in memory.

Examples:
  boxoffice find "Movie 2"
  boxoffice find "Movie 2" -f movies.json -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	title := args[0]
	path := catalogFile(flags)

	movie, found, err := findMovie(path, title)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("movie with title %q not found", title)
	}

	format := output.DetectFormat(flags.Output)
	if format == output.FormatTable {
		fmt.Fprint(cmd.OutOrStdout(), movie.Describe())
		return nil
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), movie)
}

// findMovie looks a title up in path, using the file-scoped scan for
// delimited files and an in-memory load for document files.
func findMovie(path, title string) (catalogs.Movie, bool, error) {
	if _, ok := catalogs.DocumentFormatForPath(path); ok {
		cat, err := boxoffice.New(boxoffice.WithPath(path))
		if err != nil {
			return catalogs.Movie{}, false, err
		}
		movie, found := cat.Movie(title)
		return movie, found, nil
	}
	return catalogs.FindInFile(path, title)
}
