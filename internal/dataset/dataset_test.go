package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/datatable/internal/adapters/fs"
)

type person struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

func TestLoad(t *testing.T) {
	fsys := fs.NewMemFileSystem()
	require.NoError(t, fsys.WriteFile("people.yaml", []byte(`
- id: 1
  name: Ann
- id: 2
  name: Bo
`), 0o644))

	people, err := Load[person](fsys, "people.yaml")
	require.NoError(t, err)
	assert.Equal(t, []person{{ID: 1, Name: "Ann"}, {ID: 2, Name: "Bo"}}, people)
}

func TestLoadErrors(t *testing.T) {
	fsys := fs.NewMemFileSystem()

	_, err := Load[person](fsys, "missing.yaml")
	assert.Error(t, err)

	_, err = Parse[person]([]byte("- id: 1\n  nickname: A\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Parse[person]([]byte("id: 1\n"))
	assert.Error(t, err, "a mapping is not a sequence")
}

func TestParseEmpty(t *testing.T) {
	for _, doc := range []string{"", "[]", "# no users yet\n"} {
		people, err := Parse[person]([]byte(doc))
		require.NoError(t, err, doc)
		assert.NotNil(t, people, doc)
		assert.Empty(t, people, doc)
	}
}
