// Copyright 2024 The AS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbmfield

import (
	"fmt"
	"image"

	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"
)

// FFTDepth is the default number of frames of history the sensors transform
const FFTDepth = 8

// Spectrum is a rolling stack of the last Depth grayscale frames
type Spectrum struct {
	Depth  int
	Buffer *dsputils.Matrix
	Dx, Dy int
}

// Push shifts the history back one frame and stores img at the front
func (s *Spectrum) Push(img *image.Gray) error {
	dx := img.Bounds().Dx()
	dy := img.Bounds().Dy()
	if s.Depth < 1 {
		s.Depth = FFTDepth
	}
	if s.Buffer == nil {
		s.Buffer = dsputils.MakeMatrix(make([]complex128, s.Depth*dx*dy), []int{s.Depth, dx, dy})
		s.Dx, s.Dy = dx, dy
	} else if dx != s.Dx || dy != s.Dy {
		return fmt.Errorf("spectrum: frame is %dx%d, history is %dx%d", dx, dy, s.Dx, s.Dy)
	}
	for d := s.Depth - 1; d > 0; d-- {
		for x := 0; x < dx; x++ {
			for y := 0; y < dy; y++ {
				s.Buffer.SetValue(s.Buffer.Value([]int{d - 1, x, y}), []int{d, x, y})
			}
		}
	}
	origin := img.Bounds().Min
	for x := 0; x < dx; x++ {
		for y := 0; y < dy; y++ {
			g := img.GrayAt(origin.X+x, origin.Y+y)
			s.Buffer.SetValue(complex(float64(g.Y)/255, 0), []int{0, x, y})
		}
	}
	return nil
}

// FFT takes the n dimensional fft of the history and calls fn on each coefficient
func (s *Spectrum) FFT(fn func(value complex128)) {
	freq := fft.FFTN(s.Buffer)
	for i := 0; i < s.Depth; i++ {
		for x := 0; x < s.Dx; x++ {
			for y := 0; y < s.Dy; y++ {
				fn(freq.Value([]int{i, x, y}))
			}
		}
	}
}
