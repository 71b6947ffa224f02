package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// openOutput resolves the -o flag to a writer and a JSON/text mode. An empty
// path writes text to stdout; a path ending in ".json" writes JSON to that
// file; any other path writes text to that file. The returned close func
// must always be called.
func openOutput(path string) (w io.Writer, asJSON bool, closeFn func() error, err error) {
	if path == "" {
		return os.Stdout, false, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, false, nil, fmt.Errorf("create output file %s: %w", path, err)
	}
	asJSON = strings.EqualFold(filepath.Ext(path), ".json")
	return f, asJSON, f.Close, nil
}
