package recommend

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/kailas-cloud/gamerec/internal/domain"
)

// StopWords selects the stop-word list applied by the tokenizer.
type StopWords string

const (
	// StopWordsEnglish drops common English function words.
	StopWordsEnglish StopWords = "english"
	// StopWordsNone keeps every token.
	StopWordsNone StopWords = "none"
)

// IndexConfig controls vocabulary fitting.
type IndexConfig struct {
	MaxFeatures int // <= 0 means unlimited
	StopWords   StopWords
}

// DefaultIndexConfig mirrors the settings the service ships with.
func DefaultIndexConfig() IndexConfig {
	return IndexConfig{MaxFeatures: 1000, StopWords: StopWordsEnglish}
}

// Vector is a sparse term-weight vector keyed by vocabulary position.
//
// Norm and Dot accumulate their terms in ascending value order, so the result
// depends only on the multiset of weights and never on map iteration or on
// which positions the weights sit at. Documents that differ only by a
// permutation of equally weighted terms therefore score bit-for-bit equal.
type Vector map[int]float64

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	squares := make([]float64, 0, len(v))
	for _, w := range v {
		squares = append(squares, w*w)
	}
	return math.Sqrt(sumSorted(squares))
}

// Dot returns the inner product of v and o.
func (v Vector) Dot(o Vector) float64 {
	if len(o) < len(v) {
		v, o = o, v
	}
	products := make([]float64, 0, len(v))
	for term, w := range v {
		if ow, ok := o[term]; ok {
			products = append(products, w*ow)
		}
	}
	return sumSorted(products)
}

// sumSorted sorts xs in place and adds it up smallest first.
func sumSorted(xs []float64) float64 {
	slices.Sort(xs)
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum
}

// Index is a TF-IDF vector space fitted once over a corpus.
// It is read-only after BuildIndex returns and safe for concurrent use.
type Index struct {
	vocab     map[string]int
	idf       []float64
	docs      []Vector
	stopWords map[string]struct{}
}

// BuildIndex fits the vocabulary and idf weights over corpus and encodes
// every document. It fails with domain.ErrConstruction when the corpus is
// empty or no term survives tokenization.
func BuildIndex(corpus []string, cfg IndexConfig) (*Index, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("%w: empty corpus", domain.ErrConstruction)
	}

	var stop map[string]struct{}
	switch cfg.StopWords {
	case StopWordsEnglish, "":
		stop = englishStopWords
	case StopWordsNone:
	default:
		return nil, fmt.Errorf("%w: unknown stop-word list %q", domain.ErrConstruction, cfg.StopWords)
	}

	tokenized := make([][]string, len(corpus))
	totals := make(map[string]int)
	for i, doc := range corpus {
		tokenized[i] = tokenize(doc, stop)
		for _, t := range tokenized[i] {
			totals[t]++
		}
	}
	if len(totals) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", domain.ErrConstruction)
	}

	terms := selectFeatures(totals, cfg.MaxFeatures)
	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}

	df := make([]int, len(terms))
	for _, toks := range tokenized {
		seen := make(map[int]struct{}, len(toks))
		for _, t := range toks {
			pos, ok := vocab[t]
			if !ok {
				continue
			}
			if _, dup := seen[pos]; !dup {
				seen[pos] = struct{}{}
				df[pos]++
			}
		}
	}

	n := float64(len(corpus))
	idf := make([]float64, len(terms))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	ix := &Index{vocab: vocab, idf: idf, stopWords: stop}
	ix.docs = make([]Vector, len(tokenized))
	for i, toks := range tokenized {
		ix.docs[i] = ix.weigh(toks)
	}
	return ix, nil
}

// selectFeatures keeps the maxFeatures most frequent terms (ties broken
// alphabetically) and returns them sorted alphabetically.
func selectFeatures(totals map[string]int, maxFeatures int) []string {
	terms := make([]string, 0, len(totals))
	for t := range totals {
		terms = append(terms, t)
	}
	if maxFeatures > 0 && len(terms) > maxFeatures {
		slices.SortFunc(terms, func(a, b string) int {
			if c := cmp.Compare(totals[b], totals[a]); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
		terms = terms[:maxFeatures]
	}
	slices.Sort(terms)
	return terms
}

// Encode projects text into the fitted vocabulary. Unknown terms are dropped,
// so text sharing no vocabulary yields an empty vector.
func (ix *Index) Encode(text string) Vector {
	return ix.weigh(tokenize(text, ix.stopWords))
}

// Doc returns the fitted vector of the i-th corpus document.
func (ix *Index) Doc(i int) Vector { return ix.docs[i] }

// Docs returns all fitted document vectors in corpus order.
func (ix *Index) Docs() []Vector { return ix.docs }

// VocabularySize returns the number of fitted terms.
func (ix *Index) VocabularySize() int { return len(ix.vocab) }

// weigh turns tokens into an L2-normalized tf*idf vector.
func (ix *Index) weigh(tokens []string) Vector {
	v := make(Vector)
	for _, t := range tokens {
		if pos, ok := ix.vocab[t]; ok {
			v[pos]++
		}
	}
	for pos, tf := range v {
		v[pos] = tf * ix.idf[pos]
	}
	if norm := v.Norm(); norm > 0 {
		for pos := range v {
			v[pos] /= norm
		}
	}
	return v
}
