package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/boxoffice"
	"github.com/agentstation/boxoffice/internal/cmd/globals"
	"github.com/agentstation/boxoffice/pkg/catalogs"
	"github.com/agentstation/boxoffice/pkg/logging"
)

var (
	addDirector string
	addGenre    string
	addYear     int
	addEarnings float64
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a movie to the catalog",
	Long: `Add one movie record to the catalog file.

Delimited files get the record appended without loading the catalog, so no
duplicate check happens there. Document files (.json, .yaml) are loaded
first, and adding a title that already exists fails.

Examples:
  boxoffice add "Movie 6" --director "Director 6" --genre "Genre 6" --year 2025 --earnings 4000000`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDirector, "director", "", "Movie director")
	addCmd.Flags().StringVar(&addGenre, "genre", "", "Movie genre")
	addCmd.Flags().IntVar(&addYear, "year", 0, "Year released")
	addCmd.Flags().Float64Var(&addEarnings, "earnings", 0, "Box office earnings")
}

func runAdd(cmd *cobra.Command, args []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	movie := catalogs.Movie{
		Title:             args[0],
		Director:          addDirector,
		Genre:             addGenre,
		YearReleased:      addYear,
		BoxOfficeEarnings: addEarnings,
	}
	path := catalogFile(flags)

	if _, ok := catalogs.DocumentFormatForPath(path); ok {
		cat, err := boxoffice.New(boxoffice.WithPath(path))
		if err != nil {
			return err
		}
		if err := cat.Add(movie); err != nil {
			return err
		}
		if err := cat.Save(path); err != nil {
			return err
		}
	} else if err := catalogs.AppendToFile(path, movie); err != nil {
		return err
	}

	logging.Info().Str("title", movie.Title).Str("path", path).Msg("Added movie")
	return nil
}
