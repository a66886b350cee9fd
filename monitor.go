// Copyright 2024 The AS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbmfield

import (
	"image"
	"image/draw"
	"log/slog"
	"time"

	"github.com/nfnt/resize"
)

// Reading is one diagnostics sample of the rendered field
type Reading struct {
	Frame      int
	Entropy    float64
	Complexity float64
	FrameTime  time.Duration
}

// Monitor periodically senses rendered frames and logs what it sees
type Monitor struct {
	Interval int
	Size     int
	Frames   int
	ESensor  ESensor
	KSensor  KSensor
	Logger   *slog.Logger
}

// NewMonitor creates a monitor that senses every interval frames at size x size
func NewMonitor(logger *slog.Logger, interval, size int) *Monitor {
	if interval < 1 {
		interval = 1
	}
	return &Monitor{
		Interval: interval,
		Size:     size,
		Logger:   logger,
	}
}

// Downsample shrinks a frame to a size x size grayscale image
func Downsample(img image.Image, size int) *image.Gray {
	small := resize.Resize(uint(size), uint(size), img, resize.Bilinear)
	gray := image.NewGray(image.Rect(0, 0, size, size))
	draw.Draw(gray, gray.Bounds(), small, small.Bounds().Min, draw.Src)
	return gray
}

// Observe counts a frame and senses it if it falls on the interval.
// The bool result reports whether a reading was taken.
func (m *Monitor) Observe(img image.Image, frameTime time.Duration) (Reading, bool, error) {
	m.Frames++
	if m.Frames%m.Interval != 0 {
		return Reading{}, false, nil
	}
	gray := Downsample(img, m.Size)
	entropy, err := m.ESensor.Sense(gray)
	if err != nil {
		return Reading{}, false, err
	}
	complexity, err := m.KSensor.Sense(gray)
	if err != nil {
		return Reading{}, false, err
	}
	reading := Reading{
		Frame:      m.Frames,
		Entropy:    entropy,
		Complexity: complexity,
		FrameTime:  frameTime,
	}
	if m.Logger != nil {
		m.Logger.Info("field",
			"frame", reading.Frame,
			"entropy", reading.Entropy,
			"complexity", reading.Complexity,
			"frame_time", reading.FrameTime)
	}
	return reading, true, nil
}
