// Package dataset reads seed files of games for the catalog.
package dataset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/gamerec/internal/domain/game"
)

// record is the on-disk shape of a game. JSON is a subset of YAML, so one
// decoder serves .yaml, .yml and .json files.
type record struct {
	Title       string   `yaml:"title"`
	Genre       string   `yaml:"genre"`
	Platform    string   `yaml:"platform"`
	Price       float64  `yaml:"price"`
	Rating      float64  `yaml:"rating"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// file accepts either a bare list or a {games: [...]} document.
type file struct {
	Games []record `yaml:"games"`
}

// Load reads and validates every game in the file at path.
func Load(path string) ([]game.Game, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a dataset document.
func Parse(data []byte) ([]game.Game, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []game.Game{}, nil
	}

	var records []record
	if data[0] == '[' || data[0] == '-' {
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse dataset: %w", err)
		}
	} else {
		var f file
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse dataset: %w", err)
		}
		records = f.Games
	}

	games := make([]game.Game, 0, len(records))
	for i, r := range records {
		g, err := game.New(r.Title, r.Genre, r.Platform, r.Price, r.Rating, r.Description, r.Tags)
		if err != nil {
			return nil, fmt.Errorf("dataset entry %d: %w", i, err)
		}
		games = append(games, g)
	}
	return games, nil
}
