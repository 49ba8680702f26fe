//go:build !windows

package libloc

import (
	"os"

	"golang.org/x/sys/unix"
)

type unixMapping struct {
	data []byte
}

func (m *unixMapping) Bytes() []byte { return m.data }

func (m *unixMapping) Close() error {
	if m.data == nil {
		return nil
	}
	if err := unix.Munmap(m.data); err != nil {
		return err
	}
	m.data = nil
	return nil
}

// mmapFile maps f read-only and private: the reader never writes
// through the mapping, and other processes holding the same file
// shouldn't observe our page cache churn.
func mmapFile(f *os.File, size int64) (mapping, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, errUnsupportedMapping
	}
	return &unixMapping{data: data}, nil
}
