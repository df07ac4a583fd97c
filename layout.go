package main

/*
#include "imagesl.h"
*/
import "C"

import "unsafe"

// tableV1Slots is the operation count of the original contract. Everything
// after slot five is a versioned addition that older callers read past only
// if the reported size says it is there.
const tableV1Slots = 5

// tableSize reports sizeof(imgsl_functions) at this build.
func tableSize() uintptr {
	return unsafe.Sizeof(C.imgsl_functions{})
}

// reportedSize invokes the exported entry point and returns the size field
// of the table it hands back.
func reportedSize() uintptr {
	t := C.functions()
	return uintptr(t.size)
}

// tableOffsets returns the byte offset of every field in declaration order:
// size first, then one slot per operation.
func tableOffsets() []uintptr {
	var t C.imgsl_functions
	return []uintptr{
		unsafe.Offsetof(t.size),
		unsafe.Offsetof(t.open_image),
		unsafe.Offsetof(t.save_image),
		unsafe.Offsetof(t.destroy_image),
		unsafe.Offsetof(t.blur_image),
		unsafe.Offsetof(t.mirror_image),
		unsafe.Offsetof(t.resize_image),
	}
}

// tableFuncPtrs invokes the entry point and returns the operation pointer
// values in declaration order.
func tableFuncPtrs() []uintptr {
	t := C.functions()
	return []uintptr{
		uintptr(unsafe.Pointer(t.open_image)),
		uintptr(unsafe.Pointer(t.save_image)),
		uintptr(unsafe.Pointer(t.destroy_image)),
		uintptr(unsafe.Pointer(t.blur_image)),
		uintptr(unsafe.Pointer(t.mirror_image)),
		uintptr(unsafe.Pointer(t.resize_image)),
	}
}
