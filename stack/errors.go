// SPDX-License-Identifier: MIT

package stack

import "errors"

var (
	// ErrNegativeThickness indicates a layer or slice thickness < 0 (or NaN).
	ErrNegativeThickness = errors.New("stack: negative thickness")

	// ErrInfiniteThickness indicates an infinite thickness; half-spaces
	// belong to the structure, not to the stack.
	ErrInfiniteThickness = errors.New("stack: infinite thickness")

	// ErrInvalidSlices indicates a graded layer with fewer than one slice
	// or a nil material.
	ErrInvalidSlices = errors.New("stack: invalid slicing")

	// ErrNegativeRepeat indicates a Repeat with N < 0.
	ErrNegativeRepeat = errors.New("stack: negative repeat count")
)
