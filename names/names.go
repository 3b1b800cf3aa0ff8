// Package names generates cosmetic wave labels and enemy ship names
package names

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/vmath"
)

//go:embed names.yaml
var defaultWords []byte

var ErrEmptyWordList = errors.New("names: empty word list")

// Words is the vocabulary used by the generators
type Words struct {
	Level struct {
		Adjectives []string `yaml:"adjectives"`
		LastNames  []string `yaml:"lastNames"`
		Nouns      []string `yaml:"nouns"`
	} `yaml:"level"`
	Enemy struct {
		Prefixes []string `yaml:"prefixes"`
		Names    []string `yaml:"names"`
	} `yaml:"enemy"`
}

// Generator produces names from a vocabulary
type Generator struct {
	words Words
}

// Default returns a generator over the built-in vocabulary
func Default() *Generator {
	g, err := Parse(defaultWords)
	if err != nil {
		panic(fmt.Sprintf("names: embedded vocabulary: %v", err))
	}
	return g
}

// Parse builds a generator from a YAML vocabulary document
func Parse(data []byte) (*Generator, error) {
	var w Words
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("names: parse vocabulary: %w", err)
	}
	if len(w.Level.Adjectives) == 0 || len(w.Level.LastNames) == 0 || len(w.Level.Nouns) == 0 ||
		len(w.Enemy.Prefixes) == 0 || len(w.Enemy.Names) == 0 {
		return nil, ErrEmptyWordList
	}
	return &Generator{words: w}, nil
}

// LevelNames returns n names of the form "<Adjective> <LastName> <Noun>"
func (g *Generator) LevelNames(rng *vmath.FastRand, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = vmath.Pick(rng, g.words.Level.Adjectives) + " " +
			vmath.Pick(rng, g.words.Level.LastNames) + " " +
			vmath.Pick(rng, g.words.Level.Nouns)
	}
	return out
}

// EnemyName returns a name of the form "<Prefix> <Name>"
func (g *Generator) EnemyName(rng *vmath.FastRand) string {
	return vmath.Pick(rng, g.words.Enemy.Prefixes) + " " + vmath.Pick(rng, g.words.Enemy.Names)
}

// WaveLabel returns "Wave N: <name>" for generated levels, or the endless label beyond them
func WaveLabel(levels []string, wave int) string {
	if wave >= 1 && wave <= len(levels) {
		return fmt.Sprintf("Wave %d: %s", wave, levels[wave-1])
	}
	return parameter.EndlessLevelName
}
