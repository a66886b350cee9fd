// Copyright 2024 The AS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pointlander/fbmfield"
)

const (
	// Title is the window title
	Title = "fbm field"
	// Width is the window width in pixels
	Width = 600
	// Height is the window height in pixels
	Height = 600
	// Octaves is the number of noise layers
	Octaves = 5
	// Persistence is the amplitude falloff between octaves
	Persistence = 0.5
	// Seed seeds the noise permutation
	Seed = 0
	// Noise is the noise basis
	Noise = fbmfield.SourcePerlin
	// SenseSize is the side of the downsampled frame the sensors see
	SenseSize = 32
	// MonitorInterval is the number of frames between diagnostics
	MonitorInterval = 120
)

func init() {
	// sdl calls must come from the main thread
	runtime.LockOSThread()
}

// Model is the state shared by every frame
type Model struct {
	Display    *Display
	Compositor *fbmfield.Compositor
	Monitor    *fbmfield.Monitor
	Frame      *image.RGBA
	Start      time.Time
}

// Render builds the frame for time t, uploads it and draws it
func (m *Model) Render(t float64) error {
	begin := time.Now()
	if err := m.Compositor.Compose(m.Frame, t); err != nil {
		return err
	}
	if err := m.Display.Upload(m.Frame); err != nil {
		return err
	}
	if err := m.Display.Draw(); err != nil {
		return err
	}
	_, _, err := m.Monitor.Observe(m.Frame, time.Since(begin))
	return err
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	sampler := fbmfield.Must1(fbmfield.NewSampler(Noise, Octaves, Persistence, Seed))
	compositor := fbmfield.NewCompositor(sampler, Width, Height, runtime.NumCPU())
	display := fbmfield.Must1(NewDisplay(Title, Width, Height))
	defer func() {
		fbmfield.Log(display.Close())
	}()

	model := &Model{
		Display:    display,
		Compositor: compositor,
		Monitor:    fbmfield.NewMonitor(logger, MonitorInterval, SenseSize),
		Frame:      compositor.NewFrame(),
		Start:      time.Now(),
	}
	logger.Info("started",
		"width", Width,
		"height", Height,
		"octaves", Octaves,
		"persistence", Persistence,
		"noise", Noise.String())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	running := true
	for running {
		select {
		case s := <-c:
			logger.Info("signal", "signal", s.String())
			running = false
			continue
		default:
		}
		if display.Poll() {
			running = false
			continue
		}
		fbmfield.Must(model.Render(time.Since(model.Start).Seconds()))
		sdl.Delay(16)
	}
	logger.Info("stopped", "frames", model.Monitor.Frames)
}
