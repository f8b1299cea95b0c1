package game

import (
	"slices"
	"strings"
)

// Dedup collapses games sharing a title into the one with the smallest ID and
// returns the survivors sorted by title (byte-wise, like SQLite's BINARY collation).
func Dedup(games []Game) []Game {
	best := make(map[string]int, len(games))
	for i := range games {
		j, seen := best[games[i].title]
		if !seen || games[i].id < games[j].id {
			best[games[i].title] = i
		}
	}

	out := make([]Game, 0, len(best))
	for _, i := range best {
		out = append(out, games[i])
	}
	slices.SortFunc(out, func(a, b Game) int {
		return strings.Compare(a.title, b.title)
	})
	return out
}
