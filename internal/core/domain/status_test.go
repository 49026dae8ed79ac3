package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCategory(t *testing.T) {
	assert.Equal(t, CategoryGood, Status("On Track").Category())
	assert.Equal(t, CategoryCaution, Status("Warning").Category())
	assert.Equal(t, CategoryDanger, Status("Over Budget").Category())

	// labels the client does not know about must not break rendering
	for _, s := range []Status{"No Budget", "", "on track", "Paused"} {
		assert.Equal(t, CategoryNeutral, s.Category(), "status %q", s)
	}
}
