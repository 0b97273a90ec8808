// Package memory provides an in-process report store, used by default and in tests.
package memory
