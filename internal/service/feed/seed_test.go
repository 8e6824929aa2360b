package feed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeeds(t *testing.T) {
	seeds, err := DefaultSeeds()
	require.NoError(t, err)

	require.Len(t, seeds.Projects, 5)
	assert.Len(t, seeds.Skills, 39)
	assert.Contains(t, seeds.Skills, "C#")
	assert.Contains(t, seeds.Skills, "REST API")

	first := seeds.Projects[0]
	assert.True(t, first.IsSeed())
	assert.Equal(t, "seed-1", first.DisplayID())
	assert.Equal(t, "E-commerce Mobile App", first.Project().Title)
	assert.Equal(t, uuid.Nil, first.Project().ID)
	assert.Equal(t, "Sarah Johnson", *first.Project().Owner.FullName)

	assert.Equal(t, uuid.Nil, first.Project().OwnerID)

	for _, p := range seeds.Projects {
		assert.NotEmpty(t, p.Project().RequiredSkills, p.DisplayID())
		assert.NotEmpty(t, p.Project().Description, p.DisplayID())
	}
}

func TestParseSeeds(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseSeeds([]byte("projects: ["))
		assert.Error(t, err)
	})

	t.Run("duplicate key", func(t *testing.T) {
		_, err := ParseSeeds([]byte(`
projects:
  - key: a
    title: One
  - key: a
    title: Two
`))
		assert.ErrorContains(t, err, "duplicate key")
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := ParseSeeds([]byte(`
projects:
  - key: a
`))
		assert.Error(t, err)
	})
}
