// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"
)

// StepNone is reported by Chain.Run when no attempt produced a value.
const StepNone = "none"

// Attempt is one named step of a fallback chain. Run reports whether it
// produced a usable value; a non-nil error means the store itself failed.
type Attempt[T any] struct {
	Name string
	Run  func(ctx context.Context) (T, bool, error)
}

// Chain tries its attempts in order and stops at the first one that yields.
type Chain[T any] struct {
	Name     string
	Attempts []Attempt[T]
}

// Run returns the first yielded value and the name of the step that produced
// it. When nothing yields the step is StepNone. A store error stops the chain:
// later attempts are not tried and the zero value is returned with the error.
func (c Chain[T]) Run(ctx context.Context) (T, string, error) {
	var zero T
	for _, a := range c.Attempts {
		if err := ctx.Err(); err != nil {
			return zero, a.Name, fmt.Errorf("%s: %w", c.Name, err)
		}
		v, ok, err := a.Run(ctx)
		if err != nil {
			return zero, a.Name, fmt.Errorf("%s/%s: %w", c.Name, a.Name, err)
		}
		if ok {
			return v, a.Name, nil
		}
	}
	return zero, StepNone, nil
}
