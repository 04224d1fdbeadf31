package noise

import "unsafe"

// AsByteSlice returns the memory of value as a byte slice. The slice
// aliases value and must not outlive it.
func AsByteSlice[T any](value *T) []byte {
	var zeroT T

	n := unsafe.Sizeof(zeroT)
	ptr := (*byte)(unsafe.Pointer(value))

	return unsafe.Slice(ptr, n)
}
