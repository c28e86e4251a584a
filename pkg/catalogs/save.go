package catalogs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/boxoffice/pkg/constants"
	"github.com/agentstation/boxoffice/pkg/errors"
	"github.com/agentstation/boxoffice/pkg/logging"
)

// DocumentFormatForPath picks the persistence codec from the file extension.
// Structured documents use .json, .yaml or .yml; everything else is treated
// as delimited lines (ok=false).
func DocumentFormatForPath(path string) (DocumentFormat, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DocumentJSON, true
	case ".yaml", ".yml":
		return DocumentYAML, true
	default:
		return "", false
	}
}

// Save writes the catalog to the given path, choosing the codec by file
// extension.
func (c *catalog) Save(path string) error {
	movies := c.movies.List()

	var data []byte
	var err error
	if format, ok := DocumentFormatForPath(path); ok {
		data, err = EncodeDocument(movies, format)
	} else {
		var buf bytes.Buffer
		err = EncodeLines(&buf, movies)
		data = buf.Bytes()
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.Debug().
		Str("path", path).
		Int("movie_count", len(movies)).
		Msg("Saved catalog")
	return nil
}
