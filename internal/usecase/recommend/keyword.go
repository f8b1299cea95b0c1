package recommend

import (
	"slices"
	"strings"

	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
)

// KeywordRecommender matches by genre and keyword substrings without an index.
type KeywordRecommender struct {
	catalog []game.Game
	docs    []string // lower-cased composite documents
}

var _ Engine = (*KeywordRecommender)(nil)

// NewKeywordRecommender creates the fallback engine over a catalog snapshot.
func NewKeywordRecommender(catalog []game.Game) *KeywordRecommender {
	docs := game.Corpus(catalog)
	for i := range docs {
		docs[i] = strings.ToLower(docs[i])
	}
	return &KeywordRecommender{catalog: slices.Clone(catalog), docs: docs}
}

// Kind returns recommendation.EngineKeyword.
func (k *KeywordRecommender) Kind() recommendation.Engine { return recommendation.EngineKeyword }

// ByTitle finds the first game whose title contains title (case-insensitive)
// and returns other games of the same genre in catalog order. Without a match
// or any same-genre peer it returns the head of the catalog.
func (k *KeywordRecommender) ByTitle(title string, topN int) ([]recommendation.Entry, error) {
	if topN <= 0 {
		return []recommendation.Entry{}, nil
	}

	ref := findTitle(k.catalog, title)
	if ref < 0 {
		return head(k.catalog, topN), nil
	}

	genre := k.catalog[ref].Genre()
	out := make([]recommendation.Entry, 0, topN)
	for i := range k.catalog {
		if i == ref || k.catalog[i].Genre() != genre {
			continue
		}
		out = append(out, recommendation.Unscored(k.catalog[i]))
		if len(out) == topN {
			break
		}
	}
	if len(out) == 0 {
		return head(k.catalog, topN), nil
	}
	return out, nil
}

// ByFeatures returns games whose composite document contains any query token.
// A hit is binary, so hits keep catalog order. With no hits it returns the
// head of the catalog.
func (k *KeywordRecommender) ByFeatures(text string, topN int) ([]recommendation.Entry, error) {
	if topN <= 0 {
		return []recommendation.Entry{}, nil
	}

	tokens := strings.Fields(strings.ToLower(text))
	out := make([]recommendation.Entry, 0, topN)
	for i, doc := range k.docs {
		if !containsAny(doc, tokens) {
			continue
		}
		out = append(out, recommendation.Unscored(k.catalog[i]))
		if len(out) == topN {
			break
		}
	}
	if len(out) == 0 {
		return head(k.catalog, topN), nil
	}
	return out, nil
}

func containsAny(doc string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(doc, t) {
			return true
		}
	}
	return false
}

// findTitle returns the position of the first game whose title contains
// needle case-insensitively, or -1.
func findTitle(catalog []game.Game, needle string) int {
	needle = strings.ToLower(needle)
	for i := range catalog {
		if strings.Contains(strings.ToLower(catalog[i].Title()), needle) {
			return i
		}
	}
	return -1
}

// head returns the first n games of the catalog as unscored entries.
func head(catalog []game.Game, n int) []recommendation.Entry {
	if n <= 0 {
		return []recommendation.Entry{}
	}
	if n > len(catalog) {
		n = len(catalog)
	}
	return recommendation.FromGames(catalog[:n])
}
