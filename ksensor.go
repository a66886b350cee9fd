// Copyright 2024 The AS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbmfield

import (
	"bytes"
	"image"
	"math"
	"math/cmplx"

	"github.com/pointlander/compress"
)

// KSensor is a kolmogorov complexity sensor
type KSensor struct {
	Spectrum
}

// Sense senses a frame and returns the compressed size of its recent
// spectrum relative to the raw size, scaled to [0, 255]
func (k *KSensor) Sense(img *image.Gray) (float64, error) {
	if err := k.Push(img); err != nil {
		return 0, err
	}
	var values []complex128
	sum := 0.0
	k.FFT(func(value complex128) {
		values = append(values, value)
		sum += cmplx.Abs(value)
	})
	state := make([]byte, 0, 2*len(values))
	for _, value := range values {
		magnitude := 0.0
		if sum > 0 {
			magnitude = 255 * cmplx.Abs(value) / sum
		}
		phase := 255 * (cmplx.Phase(value) + math.Pi) / (2 * math.Pi)
		state = append(state, byte(magnitude), byte(phase))
	}
	output := bytes.Buffer{}
	compress.Mark1Compress1(state, &output)
	return 255 * float64(output.Len()) / float64(len(state)), nil
}
