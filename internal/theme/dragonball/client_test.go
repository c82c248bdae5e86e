package dragonball

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"character-auction/internal/theme"
)

func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/characters", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"items": [
				{"id": 1, "name": "Goku", "image": "goku.png", "race": "Saiyan", "affiliation": "Z Fighter"},
				{"id": 2, "name": "Frieza", "image": "frieza.png", "race": "Frieza Race", "affiliation": "Army of Frieza"}
			],
			"meta": {"totalPages": 1}
		}`)
	})
	mux.HandleFunc("/characters/1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": 1, "name": "Goku", "image": "goku.png", "race": "Saiyan", "affiliation": "Z Fighter",
			"transformations": [
				{"name": "Goku SSJ", "image": "goku-ssj.png"}
			]
		}`)
	})
	mux.HandleFunc("/characters/2", func(w http.ResponseWriter, r *http.Request) {
		// Detail endpoint down: the basic record must be kept.
		w.WriteHeader(http.StatusInternalServerError)
	})
	return httptest.NewServer(mux)
}

func TestFetchAllWithDetailFallback(t *testing.T) {
	srv := catalogServer(t)
	defer srv.Close()

	c := NewClient(srv.URL, zap.NewNop())
	chars, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, chars, 2)
	assert.Len(t, chars[0].Transformations, 1)
	assert.Empty(t, chars[1].Transformations)
}

func sample() []APICharacter {
	return []APICharacter{
		{
			Name: "Goku", Image: "goku.png", Race: "Saiyan", Affiliation: "Z Fighter",
			Transformations: []Transformation{{Name: "Goku SSJ", Image: "goku-ssj.png"}},
		},
		{Name: "Frieza", Image: "frieza.png", Race: "Frieza Race", Affiliation: "Army of Frieza"},
		{Name: "Vegeta", Image: "vegeta.png", Race: "Saiyan", Affiliation: "Z Fighter"},
	}
}

func TestFilterCharactersByRace(t *testing.T) {
	out := FilterCharacters(sample(), Filter{Races: []string{"Saiyan"}})
	require.Len(t, out, 2)
	assert.Equal(t, "Goku", out[0].Name)
	assert.Equal(t, "Vegeta", out[1].Name)
}

func TestFilterCharactersByAffiliation(t *testing.T) {
	out := FilterCharacters(sample(), Filter{Affiliations: []string{"Army of Frieza"}})
	require.Len(t, out, 1)
	assert.Equal(t, "Frieza", out[0].Name)
}

func TestFilterCharactersFlattensTransformations(t *testing.T) {
	out := FilterCharacters(sample(), Filter{Races: []string{"Saiyan"}, IncludeTransformations: true})
	require.Len(t, out, 3)
	assert.Equal(t, []theme.Character{
		{Name: "Goku", ImageURL: "goku.png"},
		{Name: "Goku SSJ", ImageURL: "goku-ssj.png"},
		{Name: "Vegeta", ImageURL: "vegeta.png"},
	}, out)
}

func TestUniqueFilterOptions(t *testing.T) {
	chars := sample()
	assert.Equal(t, []string{"Frieza Race", "Saiyan"}, UniqueRaces(chars))
	assert.Equal(t, []string{"Army of Frieza", "Z Fighter"}, UniqueAffiliations(chars))
}
