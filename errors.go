// Copyright 2024 The AS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbmfield

import "log/slog"

// Log logs err if it is non-nil and returns it
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Must panics if err is non-nil. The intended usage is:
//
//	Must(display.Upload(frame))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v if err is nil and panics otherwise. The intended usage is:
//
//	display := Must1(NewDisplay(Title, Width, Height))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
