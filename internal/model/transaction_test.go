package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssignment_IsZero(t *testing.T) {
	assert.True(t, Assignment{}.IsZero())
	assert.False(t, Assignment{CategoryID: 1}.IsZero())
	assert.False(t, Assignment{TagIDs: []int{1}}.IsZero())
}

func TestAssignment_CloneIsDeep(t *testing.T) {
	a := Assignment{CategoryID: 1, TagIDs: []int{1, 2}}
	b := a.Clone()
	b.TagIDs[0] = 99

	assert.Equal(t, []int{1, 2}, a.TagIDs)
}

func TestSameDay_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	night := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	next := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, next))
}
