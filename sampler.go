// Copyright 2024 The AS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fbmfield renders an animated fractal brownian motion field
package fbmfield

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Lacunarity is the frequency growth between octaves
const Lacunarity = 2.0

// Source is a single octave of 3D gradient noise
type Source interface {
	Eval3(x, y, z float64) float64
}

// SourceKind selects the noise basis of a sampler
type SourceKind uint

const (
	// SourcePerlin is classic perlin noise
	SourcePerlin SourceKind = iota
	// SourceSimplex is open simplex noise
	SourceSimplex
)

// String returns a string representation of the SourceKind
func (s SourceKind) String() string {
	switch s {
	case SourcePerlin:
		return "perlin"
	case SourceSimplex:
		return "simplex"
	default:
		return fmt.Sprintf("SourceKind(%d)", uint(s))
	}
}

// perlinSource adapts a one octave perlin generator to Source
type perlinSource struct {
	p *perlin.Perlin
}

func (p perlinSource) Eval3(x, y, z float64) float64 {
	return p.p.Noise3D(x, y, z)
}

// PerlinSource creates a single octave perlin source
func PerlinSource(seed int64) Source {
	return perlinSource{p: perlin.NewPerlin(2, 2, 1, seed)}
}

// SimplexSource creates a single octave open simplex source with output in [-1, 1]
func SimplexSource(seed int64) Source {
	return opensimplex.New(seed)
}

// Sampler is fractal brownian motion over a Source.
// It is immutable after construction and safe for concurrent use.
type Sampler struct {
	Kind        SourceKind
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Amplitudes  []float64
	Total       float64
	Seed        int64
	Source      Source
}

// NewSampler creates a new fbm sampler
func NewSampler(kind SourceKind, octaves int, persistence float64, seed int64) (*Sampler, error) {
	if octaves < 1 {
		return nil, fmt.Errorf("sampler: octaves must be positive, got %d", octaves)
	}
	var source Source
	switch kind {
	case SourcePerlin:
		source = PerlinSource(seed)
	case SourceSimplex:
		source = SimplexSource(seed)
	default:
		return nil, fmt.Errorf("sampler: unknown source %v", kind)
	}
	s := &Sampler{
		Kind:        kind,
		Octaves:     octaves,
		Persistence: persistence,
		Lacunarity:  Lacunarity,
		Amplitudes:  make([]float64, octaves),
		Seed:        seed,
		Source:      source,
	}
	for i := range s.Amplitudes {
		s.Amplitudes[i] = math.Pow(persistence, float64(i))
		s.Total += s.Amplitudes[i]
	}
	if s.Total == 0 {
		return nil, fmt.Errorf("sampler: persistence %v gives zero total amplitude", persistence)
	}
	return s, nil
}

// Sample returns the noise value at (x, y, t), roughly in [-1, 1] and not clamped
func (s *Sampler) Sample(x, y, t float64) float64 {
	sum, frequency := 0.0, 1.0
	for _, amplitude := range s.Amplitudes {
		sum += amplitude * s.Source.Eval3(x*frequency, y*frequency, t*frequency)
		frequency *= s.Lacunarity
	}
	return sum / s.Total
}
