package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/fae/pkg/adapters/file"
	"github.com/aretw0/fae/pkg/adapters/memory"
	"github.com/aretw0/fae/pkg/adapters/redis"
	"github.com/aretw0/fae/pkg/adapters/sqlite"
	"github.com/aretw0/fae/pkg/ports"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore builds a report store from a --store value:
//
//	""                    no persistence (nil store)
//	memory                in-process store
//	file:DIR              JSON files under DIR (file: alone uses .fae/reports)
//	sqlite:PATH           SQLite database at PATH
//	redis://host:port/db  Redis
//
// The returned closer releases the backend and is never nil.
func OpenStore(spec string) (ports.ReportStore, io.Closer, error) {
	switch {
	case spec == "":
		return nil, nopCloser{}, nil
	case spec == "memory":
		return memory.NewStore(), nopCloser{}, nil
	case strings.HasPrefix(spec, "file:"):
		return file.New(strings.TrimPrefix(spec, "file:")), nopCloser{}, nil
	case strings.HasPrefix(spec, "sqlite:"):
		path := strings.TrimPrefix(spec, "sqlite:")
		if path == "" {
			return nil, nil, fmt.Errorf("sqlite store needs a path, e.g. sqlite:reports.db")
		}
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case strings.HasPrefix(spec, "redis://"), strings.HasPrefix(spec, "rediss://"):
		s, err := redis.NewFromURL(spec)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want memory, file:DIR, sqlite:PATH or redis://...)", spec)
	}
}
