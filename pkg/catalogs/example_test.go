package catalogs_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/agentstation/boxoffice/pkg/catalogs"
)

// Example demonstrates basic catalog creation and usage
func Example() {
	cat := catalogs.New()

	if err := cat.Add(catalogs.Movie{
		Title:             "Movie 1",
		Director:          "Director 1",
		Genre:             "Genre 1",
		YearReleased:      2020,
		BoxOfficeEarnings: 1000000,
	}); err != nil {
		log.Fatal(err)
	}

	if movie, ok := cat.Movie("Movie 1"); ok {
		fmt.Println(movie)
	}

	// Output:
	// Title: Movie 1, Director: Director 1, Genre: Genre 1, Year Released: 2020, Box Office Earnings: 1000000
}

// Example_persistence demonstrates the save/reload round-trip through the
// structured document codec.
func Example_persistence() {
	dir, err := os.MkdirTemp("", "boxoffice")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	cat := catalogs.New()
	_ = cat.Add(catalogs.Movie{Title: "Movie 2", Director: "Director 2", Genre: "Genre 2", YearReleased: 2021, BoxOfficeEarnings: 2500000})
	_ = cat.Add(catalogs.Movie{Title: "Movie 5", Director: "Director 5", Genre: "Genre 5", YearReleased: 2024, BoxOfficeEarnings: 3000000})

	path := filepath.Join(dir, "movies.json")
	if err := cat.Save(path); err != nil {
		log.Fatal(err)
	}

	reloaded := catalogs.New()
	if err := reloaded.Load(path); err != nil {
		log.Fatal(err)
	}

	for _, movie := range reloaded.SortedByEarnings() {
		fmt.Printf("%s: %s\n", movie.Title, catalogs.FormatEarnings(movie.BoxOfficeEarnings))
	}

	// Output:
	// Movie 5: 3000000
	// Movie 2: 2500000
}
