package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateGet(t *testing.T) {
	s := NewStore()

	created := s.Create("female", "common_voice")
	_, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	got, ok := s.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
	assert.Equal(t, 1, s.Len())

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestStore_Phrases(t *testing.T) {
	s := NewStore()

	p, ok := s.Phrases("common_voice")
	require.True(t, ok)
	assert.NotEmpty(t, p)

	p[0] = "mutated"
	again, _ := s.Phrases("common_voice")
	assert.NotEqual(t, "mutated", again[0])

	_, ok = s.Phrases("unknown")
	assert.False(t, ok)
	assert.Equal(t, []string{"common_voice", "emotions"}, s.Datasets())
}
