//go:build windows

package libloc

import "unsafe"

func unsafeSlice(addr uintptr, size int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
}

func unsafePtr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}
