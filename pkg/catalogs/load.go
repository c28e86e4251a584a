package catalogs

import (
	"bytes"
	"os"

	"github.com/agentstation/boxoffice/pkg/errors"
	"github.com/agentstation/boxoffice/pkg/logging"
)

// Load reads movies from the given path into the catalog, choosing the codec
// by file extension. Every decoded record is inserted through the Add path,
// so a duplicate title in the file surfaces as the same error a direct Add
// would return.
func (c *catalog) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}

	var movies []Movie
	if format, ok := DocumentFormatForPath(path); ok {
		movies, err = DecodeDocument(data, format, path)
	} else {
		var skipped int
		movies, skipped, err = DecodeLines(bytes.NewReader(data), path)
		if skipped > 0 {
			logging.Debug().
				Str("path", path).
				Int("skipped", skipped).
				Msg("Skipped malformed lines")
		}
	}
	if err != nil {
		return err
	}

	for _, movie := range movies {
		if err := c.Add(movie); err != nil {
			return err
		}
	}

	logging.Debug().
		Str("path", path).
		Int("movie_count", len(movies)).
		Msg("Loaded catalog")
	return nil
}
