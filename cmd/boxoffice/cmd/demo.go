package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/boxoffice"
	"github.com/agentstation/boxoffice/pkg/catalogs"
	"github.com/agentstation/boxoffice/pkg/logging"
)

// demoMovies are the fixed sample records used by the demo scenario.
var demoMovies = []catalogs.Movie{
	{Title: "Movie 1", Director: "Director 1", Genre: "Genre 1", YearReleased: 2020, BoxOfficeEarnings: 1000000},
	{Title: "Movie 2", Director: "Director 2", Genre: "Genre 2", YearReleased: 2021, BoxOfficeEarnings: 2500000},
	{Title: "Movie 3", Director: "Director 3", Genre: "Genre 3", YearReleased: 2022, BoxOfficeEarnings: 1500000},
	{Title: "Movie 4", Director: "Director 4", Genre: "Genre 4", YearReleased: 2023, BoxOfficeEarnings: 2000000},
	{Title: "Movie 5", Director: "Director 5", Genre: "Genre 5", YearReleased: 2024, BoxOfficeEarnings: 3000000},
}

// demoCmd represents the demo command.
var demoCmd = &cobra.Command{
	Use:   "demo [dir]",
	Short: "Run the fixed demonstration scenario",
	Long: `Run the fixed demonstration scenario: populate five sample movies,
save them to movies.json in the given directory (default the working
directory), reload them into a fresh catalog, find "Movie 2", remove
"Movie 3" and print the remaining movies sorted by earnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDemoCmd,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemoCmd(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	return runDemo(cmd.OutOrStdout(), dir)
}

// runDemo executes the demonstration scenario, writing its report to w.
// Persistence failures are logged and end the scenario early without a
// nonzero exit: this is an interactive demo, not a durability guarantee.
func runDemo(w io.Writer, dir string) error {
	cat, err := boxoffice.New(boxoffice.WithMovies(demoMovies...))
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "movies.json")
	if err := cat.Save(path); err != nil {
		logging.Err(err).Str("path", path).Msg("Failed to save catalog")
		return nil
	}
	fmt.Fprintf(w, "Saved %d movies to %s\n", cat.Len(), path)

	// Reload into a fresh catalog to prove the round-trip
	cat, err = boxoffice.New(boxoffice.WithPath(path))
	if err != nil {
		logging.Err(err).Str("path", path).Msg("Failed to reload catalog")
		return nil
	}

	searchTitle := "Movie 2"
	if movie, found := cat.Movie(searchTitle); found {
		fmt.Fprintf(w, "Found movie: %s\n", movie.Title)
	} else {
		fmt.Fprintf(w, "Movie with title %q not found\n", searchTitle)
	}

	removeTitle := "Movie 3"
	if err := cat.Remove(removeTitle); err != nil {
		return err
	}
	fmt.Fprintf(w, "Removed movie: %s\n", removeTitle)

	fmt.Fprintln(w, "All movies sorted by box office earnings:")
	for _, movie := range cat.SortedByEarnings() {
		fmt.Fprintf(w, "%s: %s\n", movie.Title, catalogs.FormatEarnings(movie.BoxOfficeEarnings))
	}
	return nil
}
