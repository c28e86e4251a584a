package catalogs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/boxoffice/pkg/catalogs"
	"github.com/agentstation/boxoffice/pkg/errors"
)

func TestDocumentRoundTrip(t *testing.T) {
	for _, format := range []catalogs.DocumentFormat{catalogs.DocumentJSON, catalogs.DocumentYAML} {
		t.Run(string(format), func(t *testing.T) {
			movies := testMovies()

			data, err := catalogs.EncodeDocument(movies, format)
			require.NoError(t, err)

			decoded, err := catalogs.DecodeDocument(data, format, "")
			require.NoError(t, err)
			assert.Equal(t, movies, decoded)
		})
	}
}

func TestEncodeDocumentShape(t *testing.T) {
	data, err := catalogs.EncodeDocument(testMovies()[:1], catalogs.DocumentJSON)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"movies"`)
	assert.Contains(t, text, `"title": "Movie 1"`)
	assert.Contains(t, text, `"yearReleased": 2020`)
	assert.Contains(t, text, `"boxOfficeEarnings": 1000000`)
}

func TestEncodeDocumentEmptyCatalog(t *testing.T) {
	data, err := catalogs.EncodeDocument(nil, catalogs.DocumentJSON)
	require.NoError(t, err)

	decoded, err := catalogs.DecodeDocument(data, catalogs.DocumentJSON, "")
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecodeDocumentMissingMoviesKey(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		_, err := catalogs.DecodeDocument([]byte(`{"films": []}`), catalogs.DocumentJSON, "movies.json")
		require.Error(t, err)
		assert.True(t, errors.IsMalformed(err))
		assert.Contains(t, err.Error(), "movies.json")
	})

	t.Run("yaml", func(t *testing.T) {
		_, err := catalogs.DecodeDocument([]byte("films: []\n"), catalogs.DocumentYAML, "movies.yaml")
		require.Error(t, err)
		assert.True(t, errors.IsMalformed(err))
	})
}

func TestDecodeDocumentInvalidSyntax(t *testing.T) {
	_, err := catalogs.DecodeDocument([]byte(`{"movies": [`), catalogs.DocumentJSON, "movies.json")
	require.Error(t, err)
	assert.False(t, errors.IsMalformed(err)) // syntax failure, not shape failure
}

func TestDocumentPreservesLargeEarnings(t *testing.T) {
	// Box-office magnitudes stay exact in double precision up to 2^53.
	movies := []catalogs.Movie{{Title: "Blockbuster", YearReleased: 2024, BoxOfficeEarnings: 2_923_706_026_000}}

	data, err := catalogs.EncodeDocument(movies, catalogs.DocumentJSON)
	require.NoError(t, err)

	decoded, err := catalogs.DecodeDocument(data, catalogs.DocumentJSON, "")
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, movies[0].BoxOfficeEarnings, decoded[0].BoxOfficeEarnings)
}
