package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedDecrementIDsIsDeterministic(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	c := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	decrements := map[uuid.UUID]int{c: 1, a: 2, b: 3}

	first := sortedDecrementIDs(decrements)
	require.Len(t, first, 3)
	assert.Equal(t, []uuid.UUID{a, b, c}, first)

	// Two carts holding the same products must lock rows in the same order,
	// whatever order the map hands them back in.
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, sortedDecrementIDs(decrements))
	}
}

func TestSortedDecrementIDsEmpty(t *testing.T) {
	assert.Empty(t, sortedDecrementIDs(map[uuid.UUID]int{}))
}
