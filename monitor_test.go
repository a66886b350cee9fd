// Copyright 2024 The AS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbmfield

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownsample(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 120, 120))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 128, 128, 128, 255
	}
	gray := Downsample(img, 16)
	assert.Equal(t, image.Rect(0, 0, 16, 16), gray.Bounds())
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			assert.InDelta(t, 128, int(gray.GrayAt(x, y).Y), 1)
		}
	}
}

func TestMonitorInterval(t *testing.T) {
	var buf bytes.Buffer
	m := NewMonitor(slog.New(slog.NewTextHandler(&buf, nil)), 3, 16)

	c := newTestCompositor(t, 100, 100, 2)
	frame := c.NewFrame()
	for i := 1; i <= 6; i++ {
		require.NoError(t, c.Compose(frame, float64(i)*0.1))
		reading, ok, err := m.Observe(frame, time.Millisecond)
		require.NoError(t, err)
		if i%3 != 0 {
			assert.False(t, ok, "frame %d", i)
			continue
		}
		assert.True(t, ok, "frame %d", i)
		assert.Equal(t, i, reading.Frame)
		assert.Equal(t, time.Millisecond, reading.FrameTime)
		assert.Greater(t, reading.Entropy, 0.0)
		assert.Greater(t, reading.Complexity, 0.0)
	}
	assert.Equal(t, 6, m.Frames)
	assert.Contains(t, buf.String(), "entropy=")
	assert.Contains(t, buf.String(), "complexity=")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("msg=field")))
}

func TestMonitorWithoutLogger(t *testing.T) {
	m := NewMonitor(nil, 0, 8)
	assert.Equal(t, 1, m.Interval)
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	img.SetRGBA(5, 5, color.RGBA{R: 255, G: 255, A: 255})
	_, ok, err := m.Observe(img, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errors.New("boom")) })
	assert.Equal(t, 3, Must1(3, nil))
	assert.Panics(t, func() { Must1(0, errors.New("boom")) })
	err := errors.New("logged")
	assert.Equal(t, err, Log(err))
	assert.NoError(t, Log(nil))
}
