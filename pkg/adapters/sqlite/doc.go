// Package sqlite stores reports in a SQLite database file.
package sqlite
