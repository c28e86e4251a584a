package boxoffice

import (
	"fmt"

	"github.com/agentstation/boxoffice/pkg/catalogs"
)

// config is the configuration assembled from options for New.
type config struct {
	path     string
	autoLoad bool
	movies   []catalogs.Movie
}

// Option is a function that configures a catalog being constructed.
type Option func(*config) error

// WithPath configures the catalog file to load from and save to.
func WithPath(path string) Option {
	return func(cfg *config) error {
		if path == "" {
			return fmt.Errorf("path cannot be empty")
		}
		cfg.path = path
		return nil
	}
}

// WithAutoLoad configures whether New loads the catalog file immediately.
// Auto-load is on by default and only has an effect together with WithPath.
func WithAutoLoad(autoLoad bool) Option {
	return func(cfg *config) error {
		cfg.autoLoad = autoLoad
		return nil
	}
}

// WithMovies preloads the catalog with the given records before any file is
// read. Duplicate titles among them fail construction.
func WithMovies(movies ...catalogs.Movie) Option {
	return func(cfg *config) error {
		cfg.movies = append(cfg.movies, movies...)
		return nil
	}
}
