package game

import (
	"math/rand"

	"character-auction/internal/theme"
)

// Available filters the configured pool down to characters not yet drawn this
// game. Membership is by name: two entries sharing a name are one character.
func Available(pool, used []theme.Character) []theme.Character {
	usedNames := make(map[string]bool, len(used))
	for _, c := range used {
		usedNames[c.Name] = true
	}
	out := make([]theme.Character, 0, len(pool))
	for _, c := range pool {
		if usedNames[c.Name] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Draw picks one character uniformly from the pool minus the used set, or nil
// when the pool is exhausted.
func Draw(rng *rand.Rand, pool, used []theme.Character) *theme.Character {
	available := Available(pool, used)
	if len(available) == 0 {
		return nil
	}
	c := available[rng.Intn(len(available))]
	return &c
}
