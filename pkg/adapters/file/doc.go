// Package file stores reports as JSON files in a local directory.
package file
