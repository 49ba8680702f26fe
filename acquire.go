package libloc

import (
	"fmt"
	"os"
)

// mapping is satisfied by the platform-specific mmap implementations in
// mmap_unix.go and mmap_windows.go. Close unmaps the region.
type mapping interface {
	Bytes() []byte
	Close() error
}

// readFileMapping wraps a plain os.ReadFile result so the fallback path
// shares the same mapping interface as the real mmap implementations.
type readFileMapping struct {
	data []byte
}

func (m *readFileMapping) Bytes() []byte { return m.data }
func (m *readFileMapping) Close() error  { return nil }

// errUnsupportedMapping is returned by the platform mmap helper when the
// underlying file can't be memory-mapped (e.g. it's a pipe, or mapping
// is refused by the OS); acquire falls back to a full read in that case.
var errUnsupportedMapping = fmt.Errorf("libloc: memory mapping unsupported for this file")

// acquire opens path and maps its contents into memory, falling back to
// reading the whole file when mapping isn't available (spec.md §4.6 /
// SPEC_FULL.md §4.6). The returned mapping must be closed by the caller.
func acquire(path string) (mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Op: "open", Err: ErrIO, Cause: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &OpenError{Op: "stat", Err: ErrIO, Cause: err}
	}
	if info.Size() == 0 {
		return nil, &OpenError{Op: "stat", Err: ErrTooShort}
	}

	m, err := mmapFile(f, info.Size())
	if err == nil {
		return m, nil
	}

	data, rerr := os.ReadFile(path)
	if rerr != nil {
		return nil, &OpenError{Op: "read", Err: ErrIO, Cause: rerr}
	}
	return &readFileMapping{data: data}, nil
}
