package validator

import (
	"MatchEngineApi/internal/assert"
	"testing"
)

func TestFormationRX(t *testing.T) {
	tests := []struct {
		formation string
		want      bool
	}{
		{"4-4-2", true},
		{"4-2-3-1", true},
		{"3-4-1-1-1", true},
		{"4", false},
		{"442", false},
		{"4-0-6", false},
		{"4-4-2-", false},
		{"1-1-1-1-1-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.formation, func(t *testing.T) {
			assert.Equal(t, Matches(tt.formation, FormationRX), tt.want)
		})
	}
}

func TestValidator(t *testing.T) {
	v := New()
	assert.True(t, v.Valid(), "new validator is valid")

	v.Check(true, "ok", "never recorded")
	v.Check(false, "name", "must be provided")
	v.Check(false, "name", "second message dropped")

	assert.Equal(t, v.Valid(), false)
	assert.Equal(t, len(v.Errors), 1)
	assert.Equal(t, v.Errors["name"], "must be provided")
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, In("b", "a", "b"), true)
	assert.Equal(t, In(3, 1, 2), false)
	assert.Equal(t, Unique([]int{1, 2, 3}), true)
	assert.Equal(t, Unique([]string{"x", "y", "x"}), false)
}
