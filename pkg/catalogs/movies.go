package catalogs

import (
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/agentstation/boxoffice/pkg/errors"
)

// Movies is a concurrent safe, insertion-ordered collection of movies keyed
// by title.
type Movies struct {
	mu     sync.RWMutex
	movies map[string]Movie
	order  []string
}

// MoviesOption defines a function that configures a Movies instance.
type MoviesOption func(*Movies)

// WithMoviesCapacity sets the initial capacity of the movies map.
func WithMoviesCapacity(capacity int) MoviesOption {
	return func(m *Movies) {
		m.movies = make(map[string]Movie, capacity)
		m.order = make([]string, 0, capacity)
	}
}

// NewMovies creates a new Movies collection with optional configuration.
func NewMovies(opts ...MoviesOption) *Movies {
	m := &Movies{
		movies: make(map[string]Movie),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Get returns a movie by title and whether it exists.
func (m *Movies) Get(title string) (Movie, bool) {
	m.mu.RLock()
	movie, ok := m.movies[title]
	m.mu.RUnlock()
	return movie, ok
}

// Add adds a movie, returning an error if its title already exists.
// The collection is unchanged when an error is returned.
func (m *Movies) Add(movie Movie) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.movies[movie.Title]; exists {
		return errors.NewDuplicateError("movie", movie.Title)
	}

	m.movies[movie.Title] = movie
	m.order = append(m.order, movie.Title)
	return nil
}

// Delete removes a movie by title. Returns an error if the movie doesn't exist.
func (m *Movies) Delete(title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.movies[title]; !exists {
		return errors.NewNotFoundError("movie", title)
	}

	delete(m.movies, title)
	if i := slices.Index(m.order, title); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	return nil
}

// Exists checks if a movie exists without returning it.
func (m *Movies) Exists(title string) bool {
	m.mu.RLock()
	_, exists := m.movies[title]
	m.mu.RUnlock()
	return exists
}

// Len returns the number of movies.
func (m *Movies) Len() int {
	m.mu.RLock()
	length := len(m.movies)
	m.mu.RUnlock()
	return length
}

// List returns a slice of all movies in insertion order.
func (m *Movies) List() []Movie {
	m.mu.RLock()
	movies := make([]Movie, 0, len(m.order))
	for _, title := range m.order {
		movies = append(movies, m.movies[title])
	}
	m.mu.RUnlock()
	return movies
}

// SortedByEarnings returns all movies ordered by box-office earnings,
// descending. The sort is stable: ties keep their insertion order.
func (m *Movies) SortedByEarnings() []Movie {
	movies := m.List()
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].BoxOfficeEarnings > movies[j].BoxOfficeEarnings
	})
	return movies
}

// Map returns a copy of all movies keyed by title.
func (m *Movies) Map() map[string]Movie {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]Movie, len(m.movies))
	maps.Copy(result, m.movies)
	return result
}

// ForEach applies a function to each movie in insertion order.
// If the function returns false, iteration stops early.
func (m *Movies) ForEach(fn func(movie Movie) bool) {
	for _, movie := range m.List() {
		if !fn(movie) {
			return
		}
	}
}
