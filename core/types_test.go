// SPDX-License-Identifier: MIT
// Package core_test verifies the error and Path contracts of package core.

package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ukpath/core"
)

func TestUnknownLocationError_Is(t *testing.T) {
	err := fmt.Errorf("lookup: %w", core.UnknownLocationError{Name: "Leeds"})

	assert.True(t, errors.Is(err, core.ErrUnknownLocation))
	assert.False(t, errors.Is(err, core.ErrEmptyLocation))
	assert.Equal(t, `lookup: core: unknown location "Leeds"`, err.Error())
}

func TestPath_Accessors(t *testing.T) {
	p := core.Path{LocA, LocB, LocC}

	assert.True(t, p.Found())
	assert.Equal(t, 2, p.Hops())
	assert.Equal(t, LocA, p.Start())
	assert.Equal(t, LocC, p.End())
	assert.True(t, p.Contains(LocB))
	assert.False(t, p.Contains(LocD))
	assert.Equal(t, "A -> B -> C", p.String())

	p.Reverse()
	assert.Equal(t, core.Path{LocC, LocB, LocA}, p)
}

func TestPath_Empty(t *testing.T) {
	var p core.Path

	assert.False(t, p.Found())
	assert.Zero(t, p.Hops())
	assert.Empty(t, p.Start())
	assert.Empty(t, p.End())
	assert.Empty(t, p.String())
}
