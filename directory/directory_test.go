package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentralMinisters(t *testing.T) {
	s := NewService()
	set := s.CentralMinisters()
	assert.NotEmpty(t, set.Ministers)
	assert.NotEmpty(t, set.Departments)
}

func TestStateMinisters_KnownAndUnknown(t *testing.T) {
	s := NewService()

	mh := s.StateMinisters("mh")
	require.NotEmpty(t, mh.Ministers)
	assert.Equal(t, "Chief Minister", mh.Ministers[0].Portfolio)

	// Unknown codes return empty sets, not nil and not an error
	unknown := s.StateMinisters("ZZ")
	assert.NotNil(t, unknown.Ministers)
	assert.Empty(t, unknown.Ministers)
	assert.Empty(t, unknown.Departments)
}

func TestStateConstitution(t *testing.T) {
	s := NewService()

	ka, ok := s.StateConstitution("ka")
	require.True(t, ok)
	assert.Equal(t, "Karnataka", ka.Name)
	assert.NotEmpty(t, ka.Articles)
	assert.NotEmpty(t, ka.Laws)

	_, ok = s.StateConstitution("ZZ")
	assert.False(t, ok)
}

func TestStateCodes(t *testing.T) {
	s := NewService()
	codes := s.StateCodes()
	assert.Contains(t, codes, "AP")
	assert.Contains(t, codes, "KA")
	assert.Contains(t, codes, "MH")
}
