package game

import "strings"

// Compose builds the composite document for a game: title, genre, platform,
// description and space-joined tags, in that order, separated by spaces.
func Compose(g *Game) string {
	var b strings.Builder
	b.Grow(len(g.title) + len(g.genre) + len(g.platform) + len(g.description) + 16*len(g.tags))
	b.WriteString(g.title)
	b.WriteByte(' ')
	b.WriteString(g.genre)
	b.WriteByte(' ')
	b.WriteString(g.platform)
	b.WriteByte(' ')
	b.WriteString(g.description)
	b.WriteByte(' ')
	b.WriteString(strings.Join(g.tags, " "))
	return b.String()
}

// Corpus composes one document per game, preserving catalog order.
func Corpus(games []Game) []string {
	docs := make([]string, len(games))
	for i := range games {
		docs[i] = Compose(&games[i])
	}
	return docs
}
