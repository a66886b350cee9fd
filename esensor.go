// Copyright 2024 The AS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbmfield

import (
	"image"
	"math"
	"math/cmplx"
)

// ESensor is a spectral entropy sensor
type ESensor struct {
	Spectrum
}

// Sense senses a frame and returns the entropy of its recent spectrum in bits
func (e *ESensor) Sense(img *image.Gray) (float64, error) {
	if err := e.Push(img); err != nil {
		return 0, err
	}
	var magnitudes []float64
	sum := 0.0
	e.FFT(func(value complex128) {
		m := cmplx.Abs(value)
		magnitudes = append(magnitudes, m)
		sum += m
	})
	if sum == 0 {
		return 0, nil
	}
	entropy := 0.0
	for _, m := range magnitudes {
		if m == 0 {
			continue
		}
		p := m / sum
		entropy += p * math.Log2(p)
	}
	return -entropy, nil
}
