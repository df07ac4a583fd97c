package boundary

import (
	"os"
	"unicode/utf8"

	"github.com/nfnt/resize"

	"github.com/imagesl/go-imagesl/images"
	"github.com/imagesl/go-imagesl/images/kernels"
)

// OpenImage reads and decodes the file at path, registering a freshly owned
// handle on success. The handle is only produced alongside OutcomeOK; on any
// failure the caller's out slot is never written, so the returned Handle is
// meaningless unless the outcome is OutcomeOK.
func OpenImage(path string) (Handle, Outcome) {
	if !utf8.ValidString(path) {
		return 0, OutcomeParameter
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, OutcomeIO
	}
	img, err := images.Decode(data)
	if err != nil {
		return 0, OutcomeDecoding
	}
	return handles.put(img), OutcomeOK
}

// SaveImage encodes the image behind h to path, choosing the target format
// from the path's extension. The handle is not consumed. Encoding happens
// fully in memory before the file is touched, so a Decoding/Encoding failure
// never leaves a truncated file behind.
func SaveImage(path string, h Handle) Outcome {
	img, ok := handles.get(h)
	if !ok {
		return OutcomeParameter
	}
	if !utf8.ValidString(path) {
		return OutcomeParameter
	}
	format, ok := images.FormatFromPath(path)
	if !ok {
		return OutcomeUnsupported
	}
	data, err := images.Encode(img, format)
	if err != nil {
		return OutcomeEncoding
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return OutcomeIO
	}
	return OutcomeOK
}

// DestroyImage releases the image behind h. Exactly-once is the caller's
// responsibility; a second destroy of the same value is a detected no-op.
func DestroyImage(h Handle) {
	handles.remove(h)
}

// BlurImage returns a new independently owned handle holding a
// Gaussian-blurred copy of the image behind h. The input handle stays valid
// and must still be destroyed separately. A non-positive sigma yields an
// unblurred copy. The operation has no error channel at this contract
// version, so an invalid input handle degrades to the null handle.
func BlurImage(h Handle, sigma float32) Handle {
	img, ok := handles.get(h)
	if !ok {
		return 0
	}
	blurred := kernels.GaussianBlur(img, kernels.Options{Sigma: sigma, Parallel: true})
	return handles.put(blurred)
}

// MirrorImage flips the image behind h horizontally in place. The handle
// value is unchanged and no new image is allocated. An invalid handle is a
// no-op; the operation has no error channel.
func MirrorImage(h Handle) {
	if img, ok := handles.get(h); ok {
		images.MirrorHorizontal(img)
	}
}

// ResizeImage returns a new handle holding a Lanczos-resampled copy of the
// image behind h at width x height pixels. Zero dimensions or an invalid
// handle degrade to the null handle.
func ResizeImage(h Handle, width, height uint32) Handle {
	if width == 0 || height == 0 {
		return 0
	}
	img, ok := handles.get(h)
	if !ok {
		return 0
	}
	resized := resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
	return handles.put(images.ToRGBA(resized))
}
