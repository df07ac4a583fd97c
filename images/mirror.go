package images

import "image"

// MirrorHorizontal flips img in place around its vertical axis. No new image
// is allocated; the caller's reference observes the mutation. Callers racing
// on the same image must serialize themselves.
func MirrorHorizontal(img *image.RGBA) {
	b := img.Rect
	w := b.Dx()
	h := b.Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for left, right := 0, (w-1)*4; left < right; left, right = left+4, right-4 {
			for c := 0; c < 4; c++ {
				row[left+c], row[right+c] = row[right+c], row[left+c]
			}
		}
	}
}
