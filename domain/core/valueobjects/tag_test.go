package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sleep", "sleep"},
		{"Video Editing", "video-editing"},
		{"video  editing", "video-editing"},
		{"  time management ", "time-management"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTag(tt.in), "NormalizeTag(%q)", tt.in)
	}
}

func TestTagNodeID(t *testing.T) {
	assert.Equal(t, "tag-video-editing", TagNodeID("Video Editing"))
	assert.True(t, IsTagNodeID("tag-sleep"))
	assert.False(t, IsTagNodeID("doc-123"))
}

func TestTimeOrderedIDs(t *testing.T) {
	first := NewDocumentID()
	second := NewDocumentID()

	assert.False(t, first.IsZero())
	assert.False(t, first.Equals(second))

	parsed, err := NewDocumentIDFromString(first.String())
	assert.NoError(t, err)
	assert.True(t, parsed.Equals(first))

	_, err = NewDocumentIDFromString("")
	assert.Error(t, err)
}
