package station

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Order(t *testing.T) {
	assert.Equal(t, []string{"lofi", "deephouse", "synthwave", "ambient"}, Keys())
	assert.Equal(t, 4, Len())
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("synthwave")
	require.True(t, ok)
	assert.Equal(t, "Synthwave", s.Name)
	assert.Equal(t, "4xDzrJKXOOY", s.StreamID)

	_, ok = Lookup("polka")
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	s, err := Find("ambient")
	require.NoError(t, err)
	assert.Equal(t, "Ambient", s.Name)

	_, err = Find("polka")
	require.ErrorIs(t, err, ErrUnknownStation)
	assert.Contains(t, err.Error(), `"polka"`)
}

func TestAt(t *testing.T) {
	tests := []struct {
		pos  int
		key  string
		isOK bool
	}{
		{0, "", false},
		{1, "lofi", true},
		{3, "synthwave", true},
		{4, "ambient", true},
		{5, "", false},
		{-1, "", false},
	}
	for _, tt := range tests {
		s, ok := At(tt.pos)
		assert.Equal(t, tt.isOK, ok, "At(%d)", tt.pos)
		assert.Equal(t, tt.key, s.Key, "At(%d)", tt.pos)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"

	s, _ := Lookup("lofi")
	assert.Equal(t, "Lofi", s.Name)
}

func TestNextPrevious_Wrap(t *testing.T) {
	assert.Equal(t, "deephouse", Next("lofi").Key)
	assert.Equal(t, "lofi", Next("ambient").Key)
	assert.Equal(t, "ambient", Previous("lofi").Key)
	assert.Equal(t, "synthwave", Previous("ambient").Key)

	assert.Equal(t, "lofi", Next("unknown").Key)
	assert.Equal(t, "ambient", Previous("unknown").Key)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, DefaultKey, Default().Key)
}
