package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every table with foreign keys must be emptied before its parents, or
// teardown trips constraint violations on Postgres.
func TestTeardownOrderRespectsParents(t *testing.T) {
	pos := make(map[string]int, len(TeardownOrder))
	for i, table := range TeardownOrder {
		pos[table] = i
	}

	for table, parents := range tableParents {
		childPos, ok := pos[table]
		assert.True(t, ok, "table %s missing from TeardownOrder", table)
		for _, parent := range parents {
			parentPos, ok := pos[parent]
			assert.True(t, ok, "parent %s missing from TeardownOrder", parent)
			assert.Less(t, childPos, parentPos, "%s must be emptied before %s", table, parent)
		}
	}
}

func TestTeardownOrderCoversAllModels(t *testing.T) {
	// unit_amenities is a join table with no model of its own.
	assert.Len(t, TeardownOrder, len(AllModels())+1)
}
