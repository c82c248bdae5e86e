package theme

// Character is an immutable value; identity is the name, two entries with the
// same name count as one character for pool-exhaustion purposes.
type Character struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Arc is a named sub-grouping of characters within a theme.
type Arc struct {
	Name       string      `json:"name"`
	Characters []Character `json:"characters"`
}

// Theme is a named character catalog composed of one or more arcs. Legacy
// datasets that ship a flat character list are wrapped into a single "All" arc
// at ingestion.
type Theme struct {
	Name string `json:"name"`
	Arcs []Arc  `json:"arcs"`
}

// Flatten resolves the character pool for a game: the characters of every arc
// whose name appears in selectedArcs, in arc order then character order. An
// empty selection means all arcs.
func Flatten(t Theme, selectedArcs []string) []Character {
	selected := make(map[string]bool, len(selectedArcs))
	for _, name := range selectedArcs {
		selected[name] = true
	}
	var out []Character
	for _, arc := range t.Arcs {
		if len(selected) > 0 && !selected[arc.Name] {
			continue
		}
		out = append(out, arc.Characters...)
	}
	return out
}
