package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNormalizeOneThemeWithArcs(t *testing.T) {
	data := []byte(`{
		"name": "Dragon Ball",
		"arcs": [
			{"name": "Saiyan", "characters": [
				{"name": "Goku", "imageUrl": "https://img.test/goku.png"},
				{"name": "Vegeta", "imageUrl": "https://img.test/vegeta.png"}
			]},
			{"name": "Namek", "characters": [
				{"name": "Frieza", "imageUrl": "https://img.test/frieza.png"}
			]}
		]
	}`)

	th, err := NormalizeOne(data)
	require.NoError(t, err)
	assert.Equal(t, "Dragon Ball", th.Name)
	require.Len(t, th.Arcs, 2)
	assert.Equal(t, "Saiyan", th.Arcs[0].Name)
	assert.Len(t, th.Arcs[0].Characters, 2)
}

func TestNormalizeOneFlatListWrapsIntoSingleArc(t *testing.T) {
	data := []byte(`{
		"name": "Custom",
		"characters": [
			{"name": "A", "imageUrl": "https://img.test/a.png"}
		]
	}`)

	th, err := NormalizeOne(data)
	require.NoError(t, err)
	require.Len(t, th.Arcs, 1)
	assert.Equal(t, "All", th.Arcs[0].Name)
	require.Len(t, th.Arcs[0].Characters, 1)
	assert.Equal(t, "A", th.Arcs[0].Characters[0].Name)
}

func TestNormalizeOneDropsMalformedCharacters(t *testing.T) {
	data := []byte(`{
		"name": "Custom",
		"characters": [
			{"name": "Good", "imageUrl": "https://img.test/good.png"},
			{"name": 42, "imageUrl": "https://img.test/bad.png"},
			{"name": "NoImage"},
			"not an object"
		]
	}`)

	th, err := NormalizeOne(data)
	require.NoError(t, err)
	require.Len(t, th.Arcs, 1)
	require.Len(t, th.Arcs[0].Characters, 1)
	assert.Equal(t, "Good", th.Arcs[0].Characters[0].Name)
}

func TestNormalizeOneRejectsUnknownShape(t *testing.T) {
	_, err := NormalizeOne([]byte(`{"name": "NoContent"}`))
	assert.Error(t, err)
	_, err = NormalizeOne([]byte(`{"characters": []}`))
	assert.Error(t, err)
}

func TestNormalizeSkipsMalformedEntriesIndividually(t *testing.T) {
	data := []byte(`[
		{"name": "Good", "characters": [{"name": "A", "imageUrl": "u"}]},
		{"bogus": true},
		{"name": "AlsoGood", "arcs": [{"name": "One", "characters": []}]}
	]`)

	themes, err := Normalize(data)
	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, "Good", themes[0].Name)
	assert.Equal(t, "AlsoGood", themes[1].Name)
}

func TestNormalizeRejectsNonArray(t *testing.T) {
	_, err := Normalize([]byte(`{"name": "not a list"}`))
	assert.Error(t, err)
}

func TestFlattenAllArcs(t *testing.T) {
	th := Theme{Name: "T", Arcs: []Arc{
		{Name: "One", Characters: []Character{{Name: "a"}, {Name: "b"}}},
		{Name: "Two", Characters: []Character{{Name: "c"}}},
	}}

	out := Flatten(th, nil)
	require.Len(t, out, 3)
	// Order is arc order then character order.
	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, "b", out[1].Name)
	assert.Equal(t, "c", out[2].Name)
}

func TestFlattenSelectedArcsOnly(t *testing.T) {
	th := Theme{Name: "T", Arcs: []Arc{
		{Name: "One", Characters: []Character{{Name: "a"}}},
		{Name: "Two", Characters: []Character{{Name: "b"}}},
	}}

	out := Flatten(th, []string{"Two"})
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].Name)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCatalogReadsDataDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", `{"name": "Good", "characters": [{"name": "A", "imageUrl": "u"}]}`)
	writeFile(t, dir, "broken.json", `{invalid`)
	writeFile(t, dir, "notes.txt", `ignored`)

	c := NewCatalog(dir, zap.NewNop())
	themes, err := c.Themes()
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.Equal(t, "Good", themes[0].Name)
}

func TestCatalogImportMergesAheadOfFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.json", `{"name": "FromFile", "characters": [{"name": "A", "imageUrl": "u"}]}`)

	c := NewCatalog(dir, zap.NewNop())
	imported, err := c.Import([]byte(`[{"name": "Imported", "characters": [{"name": "B", "imageUrl": "u"}]}]`))
	require.NoError(t, err)
	require.Len(t, imported, 1)

	themes, err := c.Themes()
	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, "Imported", themes[0].Name)
	assert.Equal(t, "FromFile", themes[1].Name)
}

func TestCatalogFind(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.json", `{"name": "FromFile", "characters": [{"name": "A", "imageUrl": "u"}]}`)

	c := NewCatalog(dir, zap.NewNop())
	th, ok := c.Find("FromFile")
	require.True(t, ok)
	assert.Equal(t, "FromFile", th.Name)

	_, ok = c.Find("Missing")
	assert.False(t, ok)
}
