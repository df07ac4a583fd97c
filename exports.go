package main

/*
#include "imagesl.h"
*/
import "C"

import (
	"github.com/imagesl/go-imagesl/boundary"
)

// The functions below are the bodies behind the imgsl_functions table slots
// (table.c takes their addresses). They translate C values to Go, delegate
// to package boundary, and guarantee that no panic ever unwinds across the
// C boundary: an unwind through foreign frames is undefined behavior, so
// every trampoline converts an internal failure to the closest outcome the
// operation's signature can express.

//export imgsl_open_image
func imgsl_open_image(path C.imgsl_raw_path, out *C.imgsl_handle) (code C.imgsl_error) {
	defer recoverToCode(&code)
	if path == nil || out == nil {
		return C.imgsl_error(boundary.OutcomeParameter)
	}
	h, outcome := boundary.OpenImage(C.GoString((*C.char)(path)))
	if outcome != boundary.OutcomeOK {
		// out is left untouched on failure, never partially written.
		return C.imgsl_error(outcome)
	}
	*out = C.imgsl_handle(h)
	return C.imgsl_error(boundary.OutcomeOK)
}

//export imgsl_save_image
func imgsl_save_image(path C.imgsl_raw_path, handle C.imgsl_handle) (code C.imgsl_error) {
	defer recoverToCode(&code)
	if path == nil {
		return C.imgsl_error(boundary.OutcomeParameter)
	}
	return C.imgsl_error(boundary.SaveImage(C.GoString((*C.char)(path)), boundary.Handle(handle)))
}

//export imgsl_destroy_image
func imgsl_destroy_image(handle C.imgsl_handle) {
	defer recoverQuiet()
	boundary.DestroyImage(boundary.Handle(handle))
}

//export imgsl_blur_image
func imgsl_blur_image(handle C.imgsl_handle, sigma C.float) (out C.imgsl_handle) {
	defer recoverToNull(&out)
	return C.imgsl_handle(boundary.BlurImage(boundary.Handle(handle), float32(sigma)))
}

//export imgsl_mirror_image
func imgsl_mirror_image(handle C.imgsl_handle) {
	defer recoverQuiet()
	boundary.MirrorImage(boundary.Handle(handle))
}

//export imgsl_resize_image
func imgsl_resize_image(handle C.imgsl_handle, width, height C.uint32_t) (out C.imgsl_handle) {
	defer recoverToNull(&out)
	return C.imgsl_handle(boundary.ResizeImage(boundary.Handle(handle), uint32(width), uint32(height)))
}

// recoverToCode converts a panic into the generic failure outcome for
// operations with an error channel.
func recoverToCode(code *C.imgsl_error) {
	if recover() != nil {
		*code = C.imgsl_error(boundary.OutcomeUnsupported)
	}
}

// recoverToNull converts a panic into the null handle for operations whose
// only result is a handle.
func recoverToNull(out *C.imgsl_handle) {
	if recover() != nil {
		*out = 0
	}
}

// recoverQuiet swallows a panic in operations with no result at all.
func recoverQuiet() {
	_ = recover()
}
