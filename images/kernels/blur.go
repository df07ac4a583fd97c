// Package kernels implements the separable convolution kernels behind the
// library's blur operation.
package kernels

import (
	"image"
	"sync"

	"github.com/chewxy/math32"
)

// EdgeMode defines how sampling behaves outside the image bounds.
// - Clamp: repeats edge pixels (fast, common, can darken edges slightly).
// - Mirror: reflects coordinates (better edge energy preservation).
// - Wrap: tiles the image (for periodic patterns).
type EdgeMode int

const (
	EdgeClamp EdgeMode = iota
	EdgeMirror
	EdgeWrap
)

// maxSigma caps the kernel radius; beyond this the visual difference is
// negligible while the cost keeps growing linearly.
const maxSigma = 40.0

// Options configures a blur call. Keeping this extensible reduces churn later.
type Options struct {
	Sigma    float32  // Gaussian standard deviation. <= 0 means "no visible blur".
	Edge     EdgeMode // Edge sampling mode.
	Pool     *Pool    // Optional buffer pool for intermediate/dst reuse.
	Parallel bool     // Enable row/column parallelism (good for 1080p+).
}

// Pool lets callers reuse large buffers to reduce GC pressure when blurring
// many frames of the same dimensions.
type Pool struct {
	rgba sync.Pool // *image.RGBA
}

func (p *Pool) GetRGBA(bounds image.Rectangle) *image.RGBA {
	if p == nil {
		return image.NewRGBA(bounds)
	}
	if v := p.rgba.Get(); v != nil {
		img := v.(*image.RGBA)
		if img.Rect == bounds {
			return img
		}
	}
	return image.NewRGBA(bounds)
}

func (p *Pool) PutRGBA(img *image.RGBA) {
	if p == nil || img == nil {
		return
	}
	// Clearing is skipped for speed; the next writer fully overwrites.
	p.rgba.Put(img)
}

// GaussianBlur applies a separable Gaussian blur and returns a new
// *image.RGBA; src is never modified. A non-positive sigma returns an
// unmodified copy, so the caller always owns an independent result.
func GaussianBlur(src *image.RGBA, opt Options) *image.RGBA {
	if opt.Sigma <= 0 {
		dst := opt.Pool.GetRGBA(src.Rect)
		w := src.Rect.Dx() * 4
		for y := 0; y < src.Rect.Dy(); y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], src.Pix[y*src.Stride:y*src.Stride+w])
		}
		return dst
	}

	kernel := Kernel1D(opt.Sigma)
	b := src.Rect

	tmp := opt.Pool.GetRGBA(b)
	dst := opt.Pool.GetRGBA(b)

	blurHorizRGBA(src, tmp, kernel, opt.Edge, opt.Parallel)
	blurVertRGBA(tmp, dst, kernel, opt.Edge, opt.Parallel)

	opt.Pool.PutRGBA(tmp)
	return dst
}

// Kernel1D builds the normalized one-dimensional Gaussian weights for sigma.
// The radius is ceil(3*sigma), which captures 99.7% of the distribution;
// normalization keeps overall brightness constant.
func Kernel1D(sigma float32) []float32 {
	if sigma > maxSigma {
		sigma = maxSigma
	}
	radius := int(math32.Ceil(sigma * 3))
	size := 2*radius + 1
	kernel := make([]float32, size)

	denom := 2 * sigma * sigma
	var sum float32
	for i := range kernel {
		x := float32(i - radius)
		kernel[i] = math32.Exp(-(x * x) / denom)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// blurHorizRGBA convolves each row of src with kernel into dst. Both images
// must share the same bounds. Row starts are computed once per row to avoid
// PixOffset in the hot loop.
func blurHorizRGBA(src, dst *image.RGBA, kernel []float32, edge EdgeMode, parallel bool) {
	b := src.Rect
	w := b.Dx()
	h := b.Dy()
	if w == 0 || h == 0 {
		return
	}
	radius := len(kernel) / 2

	rowTask := func(y int) {
		srcRow := src.Pix[y*src.Stride:]
		dstRow := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			var r, g, bb, a float32
			for i, weight := range kernel {
				off := mapCoord(x+i-radius, w, edge) * 4
				p := srcRow[off : off+4 : off+4]
				r += float32(p[0]) * weight
				g += float32(p[1]) * weight
				bb += float32(p[2]) * weight
				a += float32(p[3]) * weight
			}
			off := x * 4
			dstRow[off+0] = clampByte(r)
			dstRow[off+1] = clampByte(g)
			dstRow[off+2] = clampByte(bb)
			dstRow[off+3] = clampByte(a)
		}
	}

	forEachLine(h, parallel, rowTask)
}

// blurVertRGBA mirrors the horizontal pass along columns, striding by
// src.Stride per kernel step.
func blurVertRGBA(src, dst *image.RGBA, kernel []float32, edge EdgeMode, parallel bool) {
	b := src.Rect
	w := b.Dx()
	h := b.Dy()
	if w == 0 || h == 0 {
		return
	}
	radius := len(kernel) / 2

	colTask := func(x int) {
		for y := 0; y < h; y++ {
			var r, g, bb, a float32
			for i, weight := range kernel {
				off := mapCoord(y+i-radius, h, edge)*src.Stride + x*4
				p := src.Pix[off : off+4 : off+4]
				r += float32(p[0]) * weight
				g += float32(p[1]) * weight
				bb += float32(p[2]) * weight
				a += float32(p[3]) * weight
			}
			off := y*dst.Stride + x*4
			dst.Pix[off+0] = clampByte(r)
			dst.Pix[off+1] = clampByte(g)
			dst.Pix[off+2] = clampByte(bb)
			dst.Pix[off+3] = clampByte(a)
		}
	}

	forEachLine(w, parallel, colTask)
}

// forEachLine runs task for every line index in [0, n), chunked across
// goroutines when parallel is requested and the work is large enough to pay
// for the scheduling overhead.
func forEachLine(n int, parallel bool, task func(i int)) {
	if !parallel || n < 4 {
		for i := 0; i < n; i++ {
			task(i)
		}
		return
	}
	chunk := chooseChunk(n)
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				task(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// clampByte rounds v to the nearest byte, saturating at the range ends.
func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// mapCoord maps an index i to [0, n) according to edge mode.
// For Clamp: clamp to [0, n-1].
// For Mirror: reflect indices with no double-counting of the edge pixel.
// For Wrap: modulo wrap to [0, n).
func mapCoord(i, n int, mode EdgeMode) int {
	switch mode {
	case EdgeMirror:
		if n == 1 {
			return 0
		}
		for i < 0 || i >= n {
			if i < 0 {
				i = -i - 1
			} else {
				i = 2*n - i - 1
			}
		}
		return i
	case EdgeWrap:
		if n == 0 {
			return 0
		}
		i %= n
		if i < 0 {
			i += n
		}
		return i
	default: // EdgeClamp and anything unknown.
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

// chooseChunk picks a work chunk size that balances scheduling overhead and
// cache locality.
func chooseChunk(n int) int {
	switch {
	case n >= 2048:
		return 128
	case n >= 512:
		return 64
	default:
		return 32
	}
}
