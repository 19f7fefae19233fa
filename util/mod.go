package util

import (
	"fmt"
	"unsafe"
)

// RotL rotates x left by k bits. k is reduced modulo the bit width of T so
// the rotation amount can never exceed the word.
func RotL[T uint8 | uint16 | uint32 | uint64](x T, k uint) T {
	bitWidth := uint(unsafe.Sizeof(x) * 8)
	k %= bitWidth
	return (x << k) | (x >> (bitWidth - k))
}

// RotR rotates x right by k bits, with the same modulo-width reduction as
// RotL. Rotating by 0 is a no-op.
func RotR[T uint8 | uint16 | uint32 | uint64](x T, k uint) T {
	bitWidth := uint(unsafe.Sizeof(x) * 8)
	k %= bitWidth
	return (x >> k) | (x << (bitWidth - k))
}

// ArrayToString renders arr as contiguous fixed-width lowercase hex, two
// digits per byte of the element type.
func ArrayToString[T uint8 | uint16 | uint32 | uint64](arr []T) string {
	ret := ""

	for _, v := range arr {
		bitWidth := int(unsafe.Sizeof(v) * 8)
		ret += fmt.Sprintf("%0[1]*[2]x", bitWidth/4, v)
	}

	return ret
}
