package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchTopics(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "single topic",
			in:   "booked a trip for the summer",
			want: []string{"travel"},
		},
		{
			name: "multiple topics in table order",
			in:   "cooking a meal while planning our vacation budget",
			want: []string{"travel", "finance", "cooking"},
		},
		{
			name: "substring containment matches",
			in:   "rebooking the journeyman",
			want: []string{"travel"},
		},
		{
			name: "no topics",
			in:   "zzz qqq",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchTopics(tt.in))
		})
	}
}

func TestMatchTopics_OrderIsStable(t *testing.T) {
	in := "a social gathering at our house with the kids"

	first := MatchTopics(in)
	second := MatchTopics(in)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"home improvement", "parenting", "social"}, first)
}
