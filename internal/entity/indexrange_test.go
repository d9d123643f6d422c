package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRange_Step(t *testing.T) {
	t.Run("Moves right within a non-cyclic axis", func(t *testing.T) {
		// Given: a non-cyclic axis of size 5 with the cursor at 1
		ir := NewIndexRange(5, false, 1)

		// When: stepping right by 3
		next, ok := ir.Step(3, Right)

		// Then: the cursor lands on 4
		require.True(t, ok)
		assert.Equal(t, 4, next.Index())
	})

	t.Run("Moves left within a non-cyclic axis", func(t *testing.T) {
		// Given: a non-cyclic axis of size 5 with the cursor at 3
		ir := NewIndexRange(5, false, 3)

		// When: stepping left by 3
		next, ok := ir.Step(3, Left)

		// Then: the cursor lands on 0
		require.True(t, ok)
		assert.Equal(t, 0, next.Index())
	})

	t.Run("Blocks at the right boundary of a non-cyclic axis", func(t *testing.T) {
		// Given: a non-cyclic axis of size 5 with the cursor at the last position
		ir := NewIndexRange(5, false, 4)

		// When: stepping right by 1
		next, ok := ir.Step(1, Right)

		// Then: the move is blocked and the cursor is unchanged
		assert.False(t, ok)
		assert.Equal(t, 4, next.Index())
	})

	t.Run("Blocks at the left boundary of a non-cyclic axis", func(t *testing.T) {
		// Given: a non-cyclic axis of size 5 with the cursor at the first position
		ir := NewIndexRange(5, false, 0)

		// When: stepping left by 1
		next, ok := ir.Step(1, Left)

		// Then: the move is blocked and the cursor is unchanged
		assert.False(t, ok)
		assert.Equal(t, 0, next.Index())
	})

	t.Run("Wraps around the right boundary of a cyclic axis", func(t *testing.T) {
		// Given: a cyclic axis of size 5 with the cursor at the last position
		ir := NewIndexRange(5, true, 4)

		// When: stepping right by 2
		next, ok := ir.Step(2, Right)

		// Then: the cursor wraps to 1
		require.True(t, ok)
		assert.Equal(t, 1, next.Index())
	})

	t.Run("Wraps around the left boundary of a cyclic axis", func(t *testing.T) {
		// Given: a cyclic axis of size 5 with the cursor at 0
		ir := NewIndexRange(5, true, 0)

		// When: stepping left by 1
		next, ok := ir.Step(1, Left)

		// Then: the cursor wraps to the last position
		require.True(t, ok)
		assert.Equal(t, 4, next.Index())
	})

	t.Run("Step of zero always succeeds", func(t *testing.T) {
		// Given: cursors on cyclic and non-cyclic axes
		for _, cyclic := range []bool{false, true} {
			ir := NewIndexRange(5, cyclic, 2)

			// When: stepping by 0 in both directions
			next, ok := ir.Step(0, Right)

			// Then: the move succeeds and the cursor is unchanged
			require.True(t, ok)
			assert.Equal(t, 2, next.Index())

			next, ok = ir.Step(0, Left)
			require.True(t, ok)
			assert.Equal(t, 2, next.Index())
		}
	})

	t.Run("Distance is reduced modulo the axis size", func(t *testing.T) {
		// Given: a cyclic axis of size 5 with the cursor at 2
		ir := NewIndexRange(5, true, 2)

		// When: stepping right by a full loop plus one
		next, ok := ir.Step(6, Right)

		// Then: the move behaves like a single step
		require.True(t, ok)
		assert.Equal(t, 3, next.Index())
	})

	t.Run("Never leaves the axis on a non-cyclic board", func(t *testing.T) {
		// Given: every cursor position and distance on a non-cyclic axis of size 7
		const size = 7
		for cursor := 0; cursor < size; cursor++ {
			for distance := 0; distance < 2*size; distance++ {
				for _, dir := range []Direction{Left, Right} {
					ir := NewIndexRange(size, false, cursor)

					// When: stepping
					next, ok := ir.Step(distance, dir)

					// Then: the result stays within [0, size) and blocking
					// happens exactly when the unwrapped destination would
					// fall outside
					reduced := distance % size
					var unwrapped int
					if dir == Left {
						unwrapped = cursor - reduced
					} else {
						unwrapped = cursor + reduced
					}

					if unwrapped < 0 || unwrapped >= size {
						assert.False(t, ok, "cursor=%d distance=%d dir=%v", cursor, distance, dir)
						assert.Equal(t, cursor, next.Index())
					} else {
						require.True(t, ok, "cursor=%d distance=%d dir=%v", cursor, distance, dir)
						assert.Equal(t, unwrapped, next.Index())
					}
				}
			}
		}
	})

	t.Run("A full loop right returns to the start on a cyclic axis", func(t *testing.T) {
		// Given: a cyclic axis of size 6 with the cursor at 3
		const size = 6
		ir := NewIndexRange(size, true, 3)

		// When: stepping right by 1 exactly size times
		for i := 0; i < size; i++ {
			next, ok := ir.Step(1, Right)
			require.True(t, ok)
			ir = next
		}

		// Then: the cursor is back at the start
		assert.Equal(t, 3, ir.Index())
	})
}
