// Package boxoffice provides an in-memory catalog of movie records keyed by
// unique title, with persistence to delimited text lines and structured
// {"movies": [...]} documents (JSON or YAML).
//
// Example usage:
//
//	cat, err := boxoffice.New(boxoffice.WithPath("movies.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if movie, ok := cat.Movie("Movie 2"); ok {
//	    fmt.Println("Found movie:", movie.Title)
//	}
package boxoffice

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/agentstation/boxoffice/pkg/catalogs"
)

// New creates a catalog configured by the given options. With WithPath the
// catalog is loaded from the file on construction; a path that does not
// exist yet is not an error, the file is simply written on the first Save.
func New(opts ...Option) (catalogs.Catalog, error) {
	cfg := &config{
		autoLoad: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	cat := catalogs.New()

	for _, movie := range cfg.movies {
		if err := cat.Add(movie); err != nil {
			return nil, err
		}
	}

	if cfg.path != "" && cfg.autoLoad {
		if err := cat.Load(cfg.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading catalog from %s: %w", cfg.path, err)
		}
	}

	return cat, nil
}
