package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// openLogOutput picks the writer logs go to. An empty path or "stderr"
// means console output. Any failure to prepare the file is reported on
// console and falls back to console, since the UI cannot show it.
// The returned close func is never nil.
func openLogOutput(path string, console io.Writer) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return console, func() {}
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(console, "warning: could not create log directory %s: %v (falling back to stderr)\n", dir, err)
			return console, func() {}
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(console, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return console, func() {}
	}
	return f, func() { f.Close() }
}
