//go:build windows

package libloc

import (
	"os"

	"golang.org/x/sys/windows"
)

type windowsMapping struct {
	data   []byte
	handle windows.Handle
}

func (m *windowsMapping) Bytes() []byte { return m.data }

func (m *windowsMapping) Close() error {
	if m.data != nil {
		if err := windows.UnmapViewOfFile(uintptr(unsafePtr(m.data))); err != nil {
			return err
		}
		m.data = nil
	}
	if m.handle != 0 {
		err := windows.CloseHandle(m.handle)
		m.handle = 0
		return err
	}
	return nil
}

// mmapFile maps f read-only via CreateFileMapping/MapViewOfFile. size is
// passed by the caller (from os.Stat) since zero-length mappings are
// rejected by the Windows API and we'd rather fall back cleanly.
func mmapFile(f *os.File, size int64) (mapping, error) {
	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil || h == 0 {
		return nil, errUnsupportedMapping
	}

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(h)
		return nil, errUnsupportedMapping
	}

	data := unsafeSlice(addr, int(size))
	return &windowsMapping{data: data, handle: h}, nil
}
