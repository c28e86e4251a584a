// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/agentstation/boxoffice/pkg/catalogs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// earningsPrinter renders box-office figures with digit grouping for display.
var earningsPrinter = message.NewPrinter(language.English)

// FormatEarnings renders earnings for table display, grouping digits
// (3000000 -> "3,000,000"). Wire formats use catalogs.FormatEarnings instead.
func FormatEarnings(earnings float64) string {
	if earnings == float64(int64(earnings)) {
		return earningsPrinter.Sprintf("%d", int64(earnings))
	}
	return earningsPrinter.Sprintf("%.2f", earnings)
}

// MoviesToTableData converts movies to table format.
func MoviesToTableData(movies []catalogs.Movie) Data {
	headers := []string{"Title", "Director", "Genre", "Year", "Earnings"}

	rows := make([][]string, 0, len(movies))
	for _, movie := range movies {
		rows = append(rows, []string{
			movie.Title,
			movie.Director,
			movie.Genre,
			strconv.Itoa(movie.YearReleased),
			FormatEarnings(movie.BoxOfficeEarnings),
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight,
		},
	}
}
