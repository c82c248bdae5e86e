package theme

import (
	"encoding/json"
	"errors"
)

var errMalformedTheme = errors.New("entry is neither a theme with arcs nor a flat character list")

type rawCharacter struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type rawArc struct {
	Name       string            `json:"name"`
	Characters []json.RawMessage `json:"characters"`
}

type rawTheme struct {
	Name       string            `json:"name"`
	Arcs       []rawArc          `json:"arcs"`
	Characters []json.RawMessage `json:"characters"`
}

// normalizeCharacters decodes each element on its own so that one malformed
// character does not sink the rest of the list.
func normalizeCharacters(raw []json.RawMessage) []Character {
	out := make([]Character, 0, len(raw))
	for _, item := range raw {
		var c rawCharacter
		if err := json.Unmarshal(item, &c); err != nil {
			continue
		}
		if c.Name == "" || c.ImageURL == "" {
			continue
		}
		out = append(out, Character{Name: c.Name, ImageURL: c.ImageURL})
	}
	return out
}

// NormalizeOne accepts either of the two supported encodings and resolves it
// to the canonical Theme shape: a theme that already carries arcs passes
// through, a flat {name, characters} dataset is wrapped into a single "All"
// arc.
func NormalizeOne(data []byte) (Theme, error) {
	var rt rawTheme
	if err := json.Unmarshal(data, &rt); err != nil {
		return Theme{}, err
	}
	if rt.Name == "" {
		return Theme{}, errMalformedTheme
	}
	if len(rt.Arcs) > 0 {
		t := Theme{Name: rt.Name, Arcs: make([]Arc, 0, len(rt.Arcs))}
		for _, a := range rt.Arcs {
			t.Arcs = append(t.Arcs, Arc{Name: a.Name, Characters: normalizeCharacters(a.Characters)})
		}
		return t, nil
	}
	if rt.Characters != nil {
		return Theme{
			Name: rt.Name,
			Arcs: []Arc{{Name: "All", Characters: normalizeCharacters(rt.Characters)}},
		}, nil
	}
	return Theme{}, errMalformedTheme
}

// Normalize resolves a user-supplied dataset array, dropping malformed entries
// individually rather than failing the whole import.
func Normalize(data []byte) ([]Theme, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	themes := make([]Theme, 0, len(entries))
	for _, entry := range entries {
		t, err := NormalizeOne(entry)
		if err != nil {
			continue
		}
		themes = append(themes, t)
	}
	return themes, nil
}
