package catalogs

import (
	"bufio"
	"os"
	"strings"

	"github.com/agentstation/boxoffice/pkg/constants"
	"github.com/agentstation/boxoffice/pkg/errors"
)

// File-scoped single-record operations. These treat a delimited file as the
// collection, so a record can be appended, looked up or removed without
// loading a whole catalog into memory. They share the line codec and parsing
// policy with DecodeLines.

// AppendToFile appends one encoded movie line to the delimited file at path,
// creating the file if it does not exist. The file is not scanned first, so
// duplicate titles are not detected here.
func AppendToFile(path string, movie Movie) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}

	_, werr := f.WriteString(EncodeLine(movie) + "\n")
	cerr := f.Close()
	if werr != nil {
		return errors.WrapIO("write", path, werr)
	}
	if cerr != nil {
		return errors.WrapIO("close", path, cerr)
	}
	return nil
}

// FindInFile linearly scans the delimited file at path and returns the first
// record whose title matches. Absence is reported as ok=false, not an error.
// Numeric fields are only parsed on the matching line, so corrupt numbers in
// unrelated lines do not fail the lookup.
func FindInFile(path, title string) (Movie, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return Movie{}, false, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Split(line, constants.FieldSeparator)
		if len(fields) != constants.RecordFieldCount || fields[0] != title {
			continue
		}

		movie, _, err := parseLine(line, path)
		if err != nil {
			return Movie{}, false, err
		}
		return movie, true, nil
	}

	if err := scanner.Err(); err != nil {
		return Movie{}, false, errors.WrapIO("read", path, err)
	}
	return Movie{}, false, nil
}

// RemoveFromFile rewrites the delimited file at path, keeping every
// well-formed line whose title does not match. Lines with the wrong field
// count are dropped by the rewrite, and removing an absent title leaves the
// remaining records untouched without an error (lenient file policy, unlike
// Catalog.Remove).
func RemoveFromFile(path, title string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}

	var kept []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Split(line, constants.FieldSeparator)
		if len(fields) == constants.RecordFieldCount && fields[0] != title {
			kept = append(kept, line)
		}
	}
	serr := scanner.Err()
	if cerr := f.Close(); cerr != nil {
		return errors.WrapIO("close", path, cerr)
	}
	if serr != nil {
		return errors.WrapIO("read", path, serr)
	}

	var data []byte
	if len(kept) > 0 {
		data = []byte(strings.Join(kept, "\n") + "\n")
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
