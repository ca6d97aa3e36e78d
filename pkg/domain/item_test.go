package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUrgencyLevel_AtLeast(t *testing.T) {
	tests := []struct {
		level UrgencyLevel
		other UrgencyLevel
		want  bool
	}{
		{UrgencyUrgent, UrgencyUrgent, true},
		{UrgencyUrgent, UrgencyLow, true},
		{UrgencyHigh, UrgencyUrgent, false},
		{UrgencyHigh, UrgencyMedium, true},
		{UrgencyMedium, UrgencyHigh, false},
		{UrgencyLow, UrgencyLow, true},
		{UrgencyLevel("bogus"), UrgencyLow, true}, // unknown ranks as low
		{UrgencyLow, UrgencyMedium, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.AtLeast(tt.other), "%s at least %s", tt.level, tt.other)
	}
}
