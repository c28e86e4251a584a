package catalogs

import (
	"fmt"
	"strconv"
)

// Movie is one movie's immutable attribute set. The title is the unique key
// within a catalog. Movies are plain values with value equality; the catalog
// hands out copies, never shared mutable handles.
type Movie struct {
	Title             string  `json:"title" yaml:"title"`
	Director          string  `json:"director" yaml:"director"`
	Genre             string  `json:"genre" yaml:"genre"`
	YearReleased      int     `json:"yearReleased" yaml:"yearReleased"`
	BoxOfficeEarnings float64 `json:"boxOfficeEarnings" yaml:"boxOfficeEarnings"`
}

// String returns a single-line human-readable representation.
func (m Movie) String() string {
	return fmt.Sprintf("Title: %s, Director: %s, Genre: %s, Year Released: %d, Box Office Earnings: %s",
		m.Title, m.Director, m.Genre, m.YearReleased, FormatEarnings(m.BoxOfficeEarnings))
}

// Describe returns a multi-line per-field representation.
func (m Movie) Describe() string {
	return fmt.Sprintf("Title: %s\nDirector: %s\nGenre: %s\nYear Released: %d\nBox Office Earnings: %s\n",
		m.Title, m.Director, m.Genre, m.YearReleased, FormatEarnings(m.BoxOfficeEarnings))
}

// FormatEarnings renders a box-office figure in a locale-independent decimal
// format that round-trips through strconv.ParseFloat.
func FormatEarnings(earnings float64) string {
	return strconv.FormatFloat(earnings, 'f', -1, 64)
}
