package cpr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistryTrackerIsStablePerICAO(t *testing.T) {
	reg := NewRegistry(5*time.Minute, 10*time.Minute)

	a := reg.Tracker(0x4840D6)
	b := reg.Tracker(0x4840D6)
	assert.Same(t, a, b)

	c := reg.Tracker(0x123456)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryForget(t *testing.T) {
	reg := NewRegistry(5*time.Minute, 10*time.Minute)
	reg.Tracker(0x4840D6)
	assert.Equal(t, 1, reg.Len())

	reg.Forget(0x4840D6)
	assert.Equal(t, 0, reg.Len())
}
