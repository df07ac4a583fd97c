package kernels

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func solidImage(r image.Rectangle, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestKernel1DNormalizedAndSymmetric(t *testing.T) {
	for _, sigma := range []float32{0.5, 1, 2.5, 8} {
		k := Kernel1D(sigma)
		if len(k)%2 != 1 {
			t.Fatalf("sigma %v: kernel length %d is not odd", sigma, len(k))
		}
		var sum float64
		for i := range k {
			sum += float64(k[i])
			if k[i] != k[len(k)-1-i] {
				t.Fatalf("sigma %v: kernel not symmetric at %d", sigma, i)
			}
		}
		if math.Abs(sum-1) > 1e-4 {
			t.Fatalf("sigma %v: kernel sums to %v, want 1", sigma, sum)
		}
		center := len(k) / 2
		if k[center] < k[0] {
			t.Fatalf("sigma %v: center weight should dominate the tail", sigma)
		}
	}
}

func TestGaussianBlurNonPositiveSigmaReturnsCopy(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 18, 27)) // non-zero Min
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	out := GaussianBlur(img, Options{Sigma: 0})
	if out == img {
		t.Fatalf("not a copy")
	}
	if out.Bounds() != img.Bounds() {
		t.Fatalf("bounds mismatch")
	}
	if out.At(10, 20) != img.At(10, 20) {
		t.Fatalf("pixels differ")
	}
}

func TestGaussianBlurSolidColorIsFixedPoint(t *testing.T) {
	c := color.RGBA{R: 40, G: 90, B: 160, A: 255}
	img := solidImage(image.Rect(0, 0, 16, 16), c)
	out := GaussianBlur(img, Options{Sigma: 2})
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if out.RGBAAt(x, y) != c {
				t.Fatalf("solid color changed at (%d,%d): %v", x, y, out.RGBAAt(x, y))
			}
		}
	}
}

func TestGaussianBlurSpreadsASpike(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 9, 9))
	img.SetRGBA(4, 4, color.RGBA{R: 255, A: 255})

	out := GaussianBlur(img, Options{Sigma: 1})

	if out.RGBAAt(4, 4).R >= 255 {
		t.Fatalf("center should lose energy, got %d", out.RGBAAt(4, 4).R)
	}
	if out.RGBAAt(5, 4).R == 0 || out.RGBAAt(4, 5).R == 0 {
		t.Fatalf("neighbors should gain energy")
	}
	if out.RGBAAt(5, 4).R != out.RGBAAt(3, 4).R {
		t.Fatalf("spread should be symmetric: %d vs %d", out.RGBAAt(5, 4).R, out.RGBAAt(3, 4).R)
	}
}

func TestGaussianBlurLeavesSourceUntouched(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.SetRGBA(3, 3, color.RGBA{G: 200, A: 255})
	before := append([]byte(nil), img.Pix...)

	GaussianBlur(img, Options{Sigma: 1.5})

	for i := range before {
		if img.Pix[i] != before[i] {
			t.Fatalf("source mutated at byte %d", i)
		}
	}
}

func TestGaussianBlurEdgeModes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(1, 0, color.RGBA{R: 255, A: 255})

	for _, edge := range []EdgeMode{EdgeClamp, EdgeMirror, EdgeWrap} {
		out := GaussianBlur(img, Options{Sigma: 1, Edge: edge})
		if out.Rect != img.Rect {
			t.Fatalf("edge mode %d: bounds mismatch", edge)
		}
	}
}

func TestGaussianBlurParallelMatchesSerial(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 33, 21))
	for y := 0; y < 21; y++ {
		for x := 0; x < 33; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 11), B: uint8(x ^ y), A: 255})
		}
	}

	serial := GaussianBlur(img, Options{Sigma: 2})
	parallel := GaussianBlur(img, Options{Sigma: 2, Parallel: true})
	for i := range serial.Pix {
		if serial.Pix[i] != parallel.Pix[i] {
			t.Fatalf("parallel result diverges at byte %d", i)
		}
	}
}

func TestPoolReusesBuffers(t *testing.T) {
	pool := &Pool{}
	b := image.Rect(0, 0, 8, 8)

	first := pool.GetRGBA(b)
	pool.PutRGBA(first)
	second := pool.GetRGBA(b)
	if first != second {
		t.Skip("sync.Pool made no promise, but reuse is the common path")
	}

	if got := pool.GetRGBA(image.Rect(0, 0, 4, 4)); got.Rect != image.Rect(0, 0, 4, 4) {
		t.Fatalf("pool returned a buffer with the wrong bounds")
	}
}

func TestMapCoord(t *testing.T) {
	cases := []struct {
		i, n int
		mode EdgeMode
		want int
	}{
		{-1, 5, EdgeClamp, 0},
		{5, 5, EdgeClamp, 4},
		{2, 5, EdgeClamp, 2},
		{-1, 5, EdgeMirror, 0},
		{-2, 5, EdgeMirror, 1},
		{5, 5, EdgeMirror, 4},
		{6, 5, EdgeMirror, 3},
		{-1, 5, EdgeWrap, 4},
		{5, 5, EdgeWrap, 0},
		{7, 5, EdgeWrap, 2},
	}
	for _, tc := range cases {
		if got := mapCoord(tc.i, tc.n, tc.mode); got != tc.want {
			t.Errorf("mapCoord(%d, %d, %d) = %d, want %d", tc.i, tc.n, tc.mode, got, tc.want)
		}
	}
}
