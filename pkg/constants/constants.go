// Package constants provides shared constants used throughout the boxoffice
// codebase. This includes file permissions and persistence format values that
// should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Persistence constants define values shared by the persistence codecs
const (
	// RecordFieldCount is the number of comma-separated fields in one
	// delimited movie line: title, director, genre, year, earnings.
	RecordFieldCount = 5

	// FieldSeparator is the delimiter between fields in a delimited line.
	FieldSeparator = ","
)
