package main

/*
#include <stdlib.h>
#include "imagesl.h"
*/
import "C"

import "unsafe"

// Test-only call shims. _test.go files cannot use cgo, so these wrappers
// drive the exported trampolines with real C-typed arguments and hand plain
// Go values back to the tests.

// callOpenImage invokes imgsl_open_image with out pre-seeded to sentinel, so
// tests can verify the slot stays untouched on failure.
func callOpenImage(path string, sentinel uintptr) (handle uintptr, code uint32) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	out := C.imgsl_handle(sentinel)
	rc := imgsl_open_image(C.imgsl_raw_path(cpath), &out)
	return uintptr(out), uint32(rc)
}

func callSaveImage(path string, handle uintptr) uint32 {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return uint32(imgsl_save_image(C.imgsl_raw_path(cpath), C.imgsl_handle(handle)))
}

func callDestroyImage(handle uintptr) {
	imgsl_destroy_image(C.imgsl_handle(handle))
}

func callBlurImage(handle uintptr, sigma float32) uintptr {
	return uintptr(imgsl_blur_image(C.imgsl_handle(handle), C.float(sigma)))
}

func callMirrorImage(handle uintptr) {
	imgsl_mirror_image(C.imgsl_handle(handle))
}

func callResizeImage(handle uintptr, width, height uint32) uintptr {
	return uintptr(imgsl_resize_image(C.imgsl_handle(handle), C.uint32_t(width), C.uint32_t(height)))
}

// callOpenImageNullArgs exercises the null-argument checks.
func callOpenImageNullArgs() (nullPath, nullOut uint32) {
	var out C.imgsl_handle
	nullPath = uint32(imgsl_open_image(nil, &out))

	cpath := C.CString("whatever.png")
	defer C.free(unsafe.Pointer(cpath))
	nullOut = uint32(imgsl_open_image(C.imgsl_raw_path(cpath), nil))
	return nullPath, nullOut
}
