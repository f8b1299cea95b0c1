package recommend

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/kailas-cloud/gamerec/internal/domain"
)

// NoExclude disables self-exclusion in Rank.
const NoExclude = -1

// Ranked is a corpus position with its similarity to the query.
type Ranked struct {
	Index int
	Score float64
}

// Cosine returns dot(a, b) / (|a| * |b|), or 0 when either norm is 0.
func Cosine(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return a.Dot(b) / (na * nb)
}

// Rank scores every document against query and returns the topN best,
// ordered by descending score with ties on ascending position. The document
// at exclude (unless NoExclude) is dropped before truncation.
func Rank(query Vector, docs []Vector, exclude, topN int) ([]Ranked, error) {
	if topN <= 0 {
		return []Ranked{}, nil
	}

	ranked := make([]Ranked, 0, len(docs))
	for i, d := range docs {
		if i == exclude {
			continue
		}
		score := Cosine(query, d)
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return nil, fmt.Errorf("%w: non-finite similarity for document %d", domain.ErrQuery, i)
		}
		ranked = append(ranked, Ranked{Index: i, Score: score})
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, nil
}
