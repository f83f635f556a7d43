// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "errors"

// Engine errors. ErrConfig is fatal at construction time,
// ErrInvalidAction leaves the episode state untouched, and ErrGenerate
// is surfaced when bounded retries cannot satisfy the generation
// constraints -- an unchecked board is never returned instead.
var (
	ErrConfig        = errors.New("invalid configuration")
	ErrInvalidAction = errors.New("invalid action")
	ErrGenerate      = errors.New("generation failed")
)
