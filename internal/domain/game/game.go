package game

import (
	"fmt"
	"slices"
	"strings"
)

// Field limits enforced on new records.
const (
	MaxTitleLength       = 256
	MaxDescriptionLength = 4096
	MaxTags              = 64
)

// Game is a catalog item (immutable value object).
type Game struct {
	id          int64
	title       string
	genre       string
	platform    string
	price       float64
	rating      float64
	description string
	tags        []string
}

// New validates and creates a Game that has not been persisted yet (ID 0).
func New(title, genre, platform string, price, rating float64, description string, tags []string) (Game, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Game{}, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return Game{}, fmt.Errorf("title too long (max %d)", MaxTitleLength)
	}
	if strings.TrimSpace(genre) == "" {
		return Game{}, fmt.Errorf("genre is required")
	}
	if strings.TrimSpace(platform) == "" {
		return Game{}, fmt.Errorf("platform is required")
	}
	if price < 0 {
		return Game{}, fmt.Errorf("price must be >= 0, got %v", price)
	}
	if len(description) > MaxDescriptionLength {
		return Game{}, fmt.Errorf("description too long (max %d)", MaxDescriptionLength)
	}
	if len(tags) > MaxTags {
		return Game{}, fmt.Errorf("too many tags (max %d)", MaxTags)
	}

	return Game{
		title:       title,
		genre:       genre,
		platform:    platform,
		price:       price,
		rating:      rating,
		description: description,
		tags:        slices.Clone(normalizeTags(tags)),
	}, nil
}

// Reconstruct creates a Game without validation (storage hydration).
func Reconstruct(
	id int64, title, genre, platform string,
	price, rating float64, description string, tags []string,
) Game {
	return Game{
		id: id, title: title, genre: genre, platform: platform,
		price: price, rating: rating, description: description,
		tags: normalizeTags(tags),
	}
}

// ID returns the storage identifier.
func (g *Game) ID() int64 { return g.id }

// Title returns the display title, also the catalog deduplication key.
func (g *Game) Title() string { return g.title }

// Genre returns the genre.
func (g *Game) Genre() string { return g.genre }

// Platform returns the platform list as stored.
func (g *Game) Platform() string { return g.platform }

// Price returns the price.
func (g *Game) Price() float64 { return g.price }

// Rating returns the rating.
func (g *Game) Rating() float64 { return g.rating }

// Description returns the description.
func (g *Game) Description() string { return g.description }

// Tags returns the tags, never nil.
func (g *Game) Tags() []string { return g.tags }

// WithID returns a copy carrying the given storage identifier.
func (g *Game) WithID(id int64) Game {
	c := *g
	c.id = id
	return c
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
