package errors_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/boxoffice/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "movie",
			ID:       "Movie 3",
		}
		assert.Equal(t, `movie with title "Movie 3" not found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("movie", "Movie 3")
		assert.True(t, pkgerrors.IsNotFound(err))
		assert.False(t, pkgerrors.IsAlreadyExists(err))
	})
}

func TestDuplicateError(t *testing.T) {
	err := pkgerrors.NewDuplicateError("movie", "Movie 1")
	assert.Equal(t, `movie with title "Movie 1" already exists`, err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrAlreadyExists))
	assert.True(t, pkgerrors.IsAlreadyExists(err))
	assert.False(t, pkgerrors.IsNotFound(err))
}

func TestDocumentError(t *testing.T) {
	err := pkgerrors.NewDocumentError("movies.json", `missing "movies" sequence`)
	assert.Contains(t, err.Error(), "movies.json")
	assert.True(t, errors.Is(err, pkgerrors.ErrMalformed))
	assert.True(t, pkgerrors.IsMalformed(err))
}

func TestParseError(t *testing.T) {
	base := pkgerrors.New("bad number")
	err := pkgerrors.WrapParse("delimited", "movies.txt", base)
	require.Error(t, err)

	var parseErr *pkgerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "delimited", parseErr.Format)
	assert.Equal(t, "movies.txt", parseErr.File)
	assert.True(t, errors.Is(err, base))
}

func TestIOError(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		err := pkgerrors.WrapIO("read", "movies.txt", fs.ErrNotExist)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "movies.txt")
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "movies.txt", nil))
		assert.NoError(t, pkgerrors.WrapParse("json", "movies.json", nil))
	})
}
