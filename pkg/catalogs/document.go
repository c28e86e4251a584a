package catalogs

import (
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/boxoffice/pkg/errors"
)

// DocumentFormat selects the encoding of the structured movie document.
type DocumentFormat string

const (
	// DocumentJSON encodes the document as JSON.
	DocumentJSON DocumentFormat = "json"
	// DocumentYAML encodes the document as YAML.
	DocumentYAML DocumentFormat = "yaml"
)

// movieDocument is the on-disk shape of the structured codec: a single
// top-level "movies" key holding an ordered sequence of records. The pointer
// distinguishes a present-but-empty sequence from a missing key on decode.
type movieDocument struct {
	Movies *[]Movie `json:"movies" yaml:"movies"`
}

// EncodeDocument serializes movies as one structured document, preserving
// their order. Year values are encoded as integers and earnings as
// floating-point numbers; double precision keeps box-office magnitudes
// (well under 2^53) exact.
func EncodeDocument(movies []Movie, format DocumentFormat) ([]byte, error) {
	if movies == nil {
		movies = []Movie{}
	}
	doc := movieDocument{Movies: &movies}

	switch format {
	case DocumentYAML:
		data, err := yaml.MarshalWithOptions(doc,
			yaml.Indent(2),
			yaml.IndentSequence(false),
		)
		if err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
		return append(data, '\n'), nil
	}
}

// DecodeDocument parses a structured movie document and returns its records
// in document order. A document that parses but lacks the "movies" sequence
// is rejected with a DocumentError. The path is used for error context only
// and may be empty.
func DecodeDocument(data []byte, format DocumentFormat, path string) ([]Movie, error) {
	var doc movieDocument

	switch format {
	case DocumentYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	}

	if doc.Movies == nil {
		return nil, errors.NewDocumentError(path, `missing "movies" sequence`)
	}
	return *doc.Movies, nil
}
