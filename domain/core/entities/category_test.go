package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeCategories(t *testing.T) {
	existing := []Category{
		{ID: "health-sleep-routine", Name: "Health > Sleep", IsNew: false},
		{ID: "general", Name: "General", IsNew: false},
	}
	incoming := []Category{
		{ID: "health-sleep-routine", Name: "Health > Sleep"},
		{ID: "creative-video", Name: "Creative > Video"},
	}

	merged := MergeCategories(existing, incoming)

	assert.Equal(t, []Category{
		{ID: "health-sleep-routine", Name: "Health > Sleep", IsNew: false},
		{ID: "general", Name: "General", IsNew: false},
		{ID: "creative-video", Name: "Creative > Video", IsNew: true},
	}, merged)
}

func TestMergeCategories_UnionContainsEachIDOnce(t *testing.T) {
	existing := []Category{{ID: "a"}, {ID: "b"}}
	incoming := []Category{{ID: "b"}, {ID: "c"}, {ID: "c"}}

	merged := MergeCategories(existing, incoming)

	seen := make(map[string]int)
	for _, c := range merged {
		seen[c.ID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "category %s appears more than once", id)
	}
	assert.Len(t, merged, 3)
}

func TestMergeCategories_EmptyInputs(t *testing.T) {
	assert.Empty(t, MergeCategories(nil, nil))
	assert.Len(t, MergeCategories([]Category{{ID: "a"}}, nil), 1)

	merged := MergeCategories(nil, []Category{{ID: "a", Name: "A"}})
	assert.Equal(t, []Category{{ID: "a", Name: "A", IsNew: true}}, merged)
}
