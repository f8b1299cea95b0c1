package recommend

import (
	"fmt"
	"slices"

	"github.com/kailas-cloud/gamerec/internal/domain"
	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
)

// VectorRecommender ranks games by TF-IDF cosine similarity.
type VectorRecommender struct {
	catalog []game.Game
	index   *Index
}

var _ Engine = (*VectorRecommender)(nil)

// NewVectorRecommender fits an index over the catalog's composite documents.
// Fails with domain.ErrConstruction on a degenerate catalog.
func NewVectorRecommender(catalog []game.Game, cfg IndexConfig) (*VectorRecommender, error) {
	ix, err := BuildIndex(game.Corpus(catalog), cfg)
	if err != nil {
		return nil, err
	}
	return &VectorRecommender{catalog: slices.Clone(catalog), index: ix}, nil
}

// Kind returns recommendation.EngineVector.
func (v *VectorRecommender) Kind() recommendation.Engine { return recommendation.EngineVector }

// VocabularySize returns the number of fitted terms.
func (v *VectorRecommender) VocabularySize() int { return v.index.VocabularySize() }

// ByTitle ranks the catalog against the first game whose title contains title,
// never returning that game itself. Without a match it returns the head of the catalog.
func (v *VectorRecommender) ByTitle(title string, topN int) ([]recommendation.Entry, error) {
	if topN <= 0 {
		return []recommendation.Entry{}, nil
	}

	ref := findTitle(v.catalog, title)
	if ref < 0 {
		return head(v.catalog, topN), nil
	}

	ranked, err := Rank(v.index.Doc(ref), v.index.Docs(), ref, topN)
	if err != nil {
		return nil, fmt.Errorf("rank similar to %q: %w", v.catalog[ref].Title(), err)
	}
	return v.entries(ranked)
}

// ByFeatures encodes free text as-is and ranks the whole catalog against it.
func (v *VectorRecommender) ByFeatures(text string, topN int) ([]recommendation.Entry, error) {
	if topN <= 0 {
		return []recommendation.Entry{}, nil
	}

	ranked, err := Rank(v.index.Encode(text), v.index.Docs(), NoExclude, topN)
	if err != nil {
		return nil, fmt.Errorf("rank features: %w", err)
	}
	return v.entries(ranked)
}

func (v *VectorRecommender) entries(ranked []Ranked) ([]recommendation.Entry, error) {
	out := make([]recommendation.Entry, len(ranked))
	for i, r := range ranked {
		if r.Index < 0 || r.Index >= len(v.catalog) {
			return nil, fmt.Errorf("%w: ranked position %d out of catalog", domain.ErrQuery, r.Index)
		}
		out[i] = recommendation.Scored(v.catalog[r.Index], r.Score)
	}
	return out, nil
}
