// Copyright 2024 The AS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"

	"github.com/veandco/go-sdl2/sdl"
)

// Display is a window with a streaming texture the size of the window
type Display struct {
	Width    int
	Height   int
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Texture  *sdl.Texture
}

// NewDisplay opens a width x height window with an RGBA texture to draw frames into
func NewDisplay(title string, width, height int) (*Display, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("display: init: %w", err)
	}
	d := &Display{
		Width:  width,
		Height: height,
	}
	var err error
	d.Window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("display: window: %w", err)
	}
	d.Renderer, err = sdl.CreateRenderer(d.Window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("display: renderer: %w", err)
	}
	d.Texture, err = d.Renderer.CreateTexture(sdl.PIXELFORMAT_RGBA32, sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height))
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("display: texture: %w", err)
	}
	return d, nil
}

// Upload copies a frame into the texture
func (d *Display) Upload(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != d.Width || b.Dy() != d.Height {
		return fmt.Errorf("display: upload %dx%d into %dx%d texture", b.Dx(), b.Dy(), d.Width, d.Height)
	}
	pixels, pitch, err := d.Texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("display: lock: %w", err)
	}
	defer d.Texture.Unlock()
	row := 4 * d.Width
	for y := 0; y < d.Height; y++ {
		offset := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pixels[y*pitch:y*pitch+row], img.Pix[offset:offset+row])
	}
	return nil
}

// Draw clears the window to black and draws the whole texture over it
func (d *Display) Draw() error {
	if err := d.Renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return fmt.Errorf("display: draw color: %w", err)
	}
	if err := d.Renderer.Clear(); err != nil {
		return fmt.Errorf("display: clear: %w", err)
	}
	if err := d.Renderer.Copy(d.Texture, nil, nil); err != nil {
		return fmt.Errorf("display: copy: %w", err)
	}
	d.Renderer.Present()
	return nil
}

// Poll drains pending events and reports whether the window was closed
func (d *Display) Poll() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			quit = true
		}
	}
	return quit
}

// Close releases the texture, renderer and window and shuts down sdl
func (d *Display) Close() error {
	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}
	if d.Texture != nil {
		keep(d.Texture.Destroy())
		d.Texture = nil
	}
	if d.Renderer != nil {
		keep(d.Renderer.Destroy())
		d.Renderer = nil
	}
	if d.Window != nil {
		keep(d.Window.Destroy())
		d.Window = nil
	}
	sdl.Quit()
	return first
}
