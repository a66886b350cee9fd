// Copyright 2024 The AS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbmfield

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"
)

const (
	// NoiseScale is how many pixels span one unit of noise space
	NoiseScale = 50
	// LatticeSpacing is the distance between highlight dots
	LatticeSpacing = 10
	// LatticeOffset is the position of a dot within its cell
	LatticeOffset = 5
)

// MapRange linearly maps v from [inMin, inMax] to [outMin, outMax] without clamping
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return (v-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
}

// NoiseByte maps a noise value from [1, -1] to [0, 255].
// The domain is reversed, so more negative noise is brighter; this looks
// unintended but existing output depends on it. Out of range values
// saturate and NaN maps to 0.
func NoiseByte(v float64) uint8 {
	f := MapRange(v, 1, -1, 0, math.MaxUint8)
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(f)
}

// OnLattice reports whether (x, y) is a highlight dot
func OnLattice(x, y int) bool {
	return x%LatticeSpacing == LatticeOffset && y%LatticeSpacing == LatticeOffset
}

// PixelAt returns the color of pixel (x, y) given its noise byte n
func PixelAt(x, y int, n uint8) color.RGBA {
	if OnLattice(x, y) {
		return color.RGBA{R: n, G: n, B: 0, A: math.MaxUint8}
	}
	return color.RGBA{A: math.MaxUint8}
}

// Compositor builds frames from a sampler
type Compositor struct {
	Sampler *Sampler
	Width   int
	Height  int
	Workers int
}

// NewCompositor creates a new compositor for a width x height window
func NewCompositor(sampler *Sampler, width, height, workers int) *Compositor {
	if workers < 1 {
		workers = 1
	}
	return &Compositor{
		Sampler: sampler,
		Width:   width,
		Height:  height,
		Workers: workers,
	}
}

// NewFrame allocates a frame buffer of the window size
func (c *Compositor) NewFrame() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
}

// Value returns the noise byte of pixel (x, y) at time t
func (c *Compositor) Value(x, y int, t float64) uint8 {
	w, h := float64(c.Width), float64(c.Height)
	nx := MapRange(float64(x), 0, w, 0, w/NoiseScale)
	ny := MapRange(float64(y), 0, h, 0, h/NoiseScale)
	return NoiseByte(c.Sampler.Sample(nx, ny, t))
}

// Compose rebuilds every pixel of dst for time t.
// Noise is only evaluated on the lattice, the only place it is visible.
func (c *Compositor) Compose(dst *image.RGBA, t float64) error {
	if b := dst.Bounds(); b.Dx() != c.Width || b.Dy() != c.Height {
		return fmt.Errorf("compose: frame is %dx%d, want %dx%d", b.Dx(), b.Dy(), c.Width, c.Height)
	}
	origin := dst.Bounds().Min
	c.rows(func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < c.Width; x++ {
				var n uint8
				if OnLattice(x, y) {
					n = c.Value(x, y, t)
				}
				dst.SetRGBA(origin.X+x, origin.Y+y, PixelAt(x, y, n))
			}
		}
	})
	return nil
}

// rows splits the frame rows into chunks, one goroutine per chunk
func (c *Compositor) rows(fn func(start, end int)) {
	var wg sync.WaitGroup
	chunk := c.Height/c.Workers + 1
	for start := 0; start < c.Height; start += chunk {
		end := start + chunk
		if end > c.Height {
			end = c.Height
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
