package catalogs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/agentstation/boxoffice/pkg/constants"
	"github.com/agentstation/boxoffice/pkg/errors"
)

// EncodeLine serializes one movie as a delimited line in the fixed field
// order title,director,genre,yearReleased,boxOfficeEarnings. Field values
// containing the separator are not escaped; this is a known limitation of
// the format.
func EncodeLine(movie Movie) string {
	return strings.Join([]string{
		movie.Title,
		movie.Director,
		movie.Genre,
		strconv.Itoa(movie.YearReleased),
		FormatEarnings(movie.BoxOfficeEarnings),
	}, constants.FieldSeparator)
}

// EncodeLines writes every movie to w as one newline-terminated line.
func EncodeLines(w io.Writer, movies []Movie) error {
	bw := bufio.NewWriter(w)
	for _, movie := range movies {
		if _, err := bw.WriteString(EncodeLine(movie) + "\n"); err != nil {
			return errors.WrapIO("write", "", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}

// DecodeLines parses newline-separated movie lines from r. Lines that do not
// split into exactly constants.RecordFieldCount fields are skipped and
// counted; lines with the right field count but unparseable numeric fields
// fail the whole read with a ParseError. The path is used for error context
// only and may be empty.
func DecodeLines(r io.Reader, path string) ([]Movie, int, error) {
	scanner := bufio.NewScanner(r)

	var movies []Movie
	skipped := 0

	for scanner.Scan() {
		movie, ok, err := parseLine(scanner.Text(), path)
		if err != nil {
			return nil, skipped, err
		}
		if !ok {
			skipped++
			continue
		}
		movies = append(movies, movie)
	}

	if err := scanner.Err(); err != nil {
		return nil, skipped, errors.WrapIO("read", path, err)
	}
	return movies, skipped, nil
}

// parseLine parses one delimited line. A wrong field count returns ok=false
// with no error; a numeric parse failure returns a ParseError.
func parseLine(line, path string) (Movie, bool, error) {
	fields := strings.Split(line, constants.FieldSeparator)
	if len(fields) != constants.RecordFieldCount {
		return Movie{}, false, nil
	}

	year, err := strconv.Atoi(fields[3])
	if err != nil {
		return Movie{}, false, errors.NewParseError("delimited", path,
			"invalid yearReleased "+strconv.Quote(fields[3]), err)
	}

	earnings, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Movie{}, false, errors.NewParseError("delimited", path,
			"invalid boxOfficeEarnings "+strconv.Quote(fields[4]), err)
	}

	return Movie{
		Title:             fields[0],
		Director:          fields[1],
		Genre:             fields[2],
		YearReleased:      year,
		BoxOfficeEarnings: earnings,
	}, true, nil
}
