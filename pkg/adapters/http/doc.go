// Package http serves the checker as a small JSON API built on chi.
package http
