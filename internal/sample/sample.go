// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sample draws stratified topic samples for comparison runs.
// Each configured category contributes a share of the sample
// proportional to its weight; the seeded RNG keeps runs reproducible.
package sample

import (
	"fmt"
	"math/rand"

	"github.com/pdiddy/wikicompare/pkg/types"
)

// Topic is one sampled article title with its category.
type Topic struct {
	Category string
	Title    string
}

// Sampler draws topics from the configured categories.
type Sampler struct {
	cfg types.SamplingConfig
	rng *rand.Rand
}

// New returns a Sampler seeded from the configuration. A zero seed
// falls back to 42 so unconfigured runs stay reproducible.
func New(cfg types.SamplingConfig) *Sampler {
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = 42
	}
	return &Sampler{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Sample draws a stratified sample of the given total size. Each
// category receives floor(total × weight) slots, filled without
// replacement while the pool lasts and with replacement once it is
// exhausted. When total is 0 the configured default size is used.
func (s *Sampler) Sample(total int) ([]Topic, error) {
	if total <= 0 {
		total = s.cfg.TotalSampleSize
	}
	if total <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", total)
	}
	if len(s.cfg.Categories) == 0 {
		return nil, fmt.Errorf("no sampling categories configured")
	}

	var out []Topic
	for _, cat := range s.cfg.Categories {
		quota := int(float64(total) * cat.Weight)
		if quota == 0 || len(cat.Topics) == 0 {
			continue
		}

		picks := s.pick(cat.Topics, quota)
		for _, title := range picks {
			out = append(out, Topic{Category: cat.Name, Title: title})
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("sampling produced no topics: category pools are empty")
	}
	return out, nil
}

// pick draws n titles from pool: a shuffled prefix when the pool is
// large enough, otherwise the whole pool plus random repeats.
func (s *Sampler) pick(pool []string, n int) []string {
	if len(pool) >= n {
		shuffled := append([]string(nil), pool...)
		s.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		return shuffled[:n]
	}

	picks := append([]string(nil), pool...)
	for len(picks) < n {
		picks = append(picks, pool[s.rng.Intn(len(pool))])
	}
	return picks
}

// Literal wraps an explicit topic list in the sampler's output shape,
// bypassing category weighting.
func Literal(titles []string) []Topic {
	topics := make([]Topic, len(titles))
	for i, t := range titles {
		topics[i] = Topic{Title: t}
	}
	return topics
}
