// Package catalogs provides the core catalog system for managing movie
// records. It supports CRUD operations keyed by unique title, stable sorted
// listing by box-office earnings, and persistence to two interchangeable
// formats: delimited text lines and a structured {"movies": [...]} document
// (JSON or YAML).
//
// The catalog is thread-safe and hands out movie values by copy. Lookup
// misses are reported as explicit absence, not errors; contract violations
// (duplicate add, remove of an absent title) are returned as typed errors
// from the errors package.
//
// Example usage:
//
//	cat := catalogs.New()
//	if err := cat.Add(catalogs.Movie{Title: "Movie 1", ...}); err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, movie := range cat.SortedByEarnings() {
//	    fmt.Println(movie)
//	}
package catalogs

// Reader provides read-only access to catalog data.
type Reader interface {
	// Movies returns the underlying ordered collection
	Movies() *Movies

	// Movie returns a movie by title and whether it exists
	Movie(title string) (Movie, bool)

	// List returns all movies in insertion order
	List() []Movie

	// SortedByEarnings returns all movies ordered by earnings, descending,
	// with ties kept in insertion order
	SortedByEarnings() []Movie

	// Len returns the number of movies
	Len() int

	// Describe returns a human-readable rendering of one movie
	Describe(title string) (string, bool)

	// DescribeAll returns a human-readable rendering of every movie,
	// one line per record in insertion order
	DescribeAll() string
}

// Writer provides write operations for catalog data.
type Writer interface {
	// Add inserts a new movie; duplicate titles are rejected
	Add(movie Movie) error

	// Remove deletes the movie for title; absent titles are rejected
	Remove(title string) error
}

// Persistence provides file persistence for catalog data.
type Persistence interface {
	// Save writes the catalog to path; the codec is chosen by extension
	Save(path string) error

	// Load reads movies from path into the catalog via the Add path
	Load(path string) error
}

// Catalog is the complete interface combining all catalog capabilities.
type Catalog interface {
	Reader
	Writer
	Persistence
}

// Compile-time interface checks to ensure proper implementation.
var (
	_ Catalog     = (*catalog)(nil)
	_ Reader      = (*catalog)(nil)
	_ Writer      = (*catalog)(nil)
	_ Persistence = (*catalog)(nil)
)

// catalog is the single concrete implementation of the Catalog interface.
type catalog struct {
	movies *Movies
}

// New creates a new empty catalog.
func New(opts ...MoviesOption) Catalog {
	return &catalog{
		movies: NewMovies(opts...),
	}
}

// Movies returns the underlying collection.
func (c *catalog) Movies() *Movies {
	return c.movies
}

// Movie returns a movie by title and whether it exists.
func (c *catalog) Movie(title string) (Movie, bool) {
	return c.movies.Get(title)
}

// List returns all movies in insertion order.
func (c *catalog) List() []Movie {
	return c.movies.List()
}

// SortedByEarnings returns all movies ordered by earnings, descending.
func (c *catalog) SortedByEarnings() []Movie {
	return c.movies.SortedByEarnings()
}

// Len returns the number of movies.
func (c *catalog) Len() int {
	return c.movies.Len()
}

// Describe returns a per-field rendering of the movie with the given title.
func (c *catalog) Describe(title string) (string, bool) {
	movie, ok := c.movies.Get(title)
	if !ok {
		return "", false
	}
	return movie.Describe(), true
}

// DescribeAll returns a one-line-per-movie rendering of the whole catalog.
func (c *catalog) DescribeAll() string {
	out := ""
	c.movies.ForEach(func(movie Movie) bool {
		out += movie.String() + "\n"
		return true
	})
	return out
}

// Add inserts a new movie into the catalog.
func (c *catalog) Add(movie Movie) error {
	return c.movies.Add(movie)
}

// Remove deletes the movie for the given title.
func (c *catalog) Remove(title string) error {
	return c.movies.Delete(title)
}
