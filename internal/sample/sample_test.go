// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wikicompare/pkg/types"
)

func testCfg() types.SamplingConfig {
	return types.SamplingConfig{
		TotalSampleSize: 10,
		RandomSeed:      42,
		Categories: []types.SamplingCategory{
			{Name: "science", Weight: 0.5, Topics: []string{
				"Quantum computing", "Photosynthesis", "General relativity",
				"CRISPR", "Plate tectonics", "Dark matter",
			}},
			{Name: "history", Weight: 0.3, Topics: []string{
				"Roman Empire", "French Revolution", "Silk Road", "Cold War",
			}},
			{Name: "culture", Weight: 0.2, Topics: []string{
				"Jazz", "Haiku",
			}},
		},
	}
}

func TestSampleQuotas(t *testing.T) {
	topics, err := New(testCfg()).Sample(10)
	require.NoError(t, err)

	byCategory := map[string]int{}
	for _, topic := range topics {
		byCategory[topic.Category]++
	}
	assert.Equal(t, 5, byCategory["science"])
	assert.Equal(t, 3, byCategory["history"])
	assert.Equal(t, 2, byCategory["culture"])
}

func TestSampleReproducible(t *testing.T) {
	first, err := New(testCfg()).Sample(10)
	require.NoError(t, err)
	second, err := New(testCfg()).Sample(10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSampleWithoutReplacementWhenPoolSuffices(t *testing.T) {
	cfg := testCfg()
	topics, err := New(cfg).Sample(10)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, topic := range topics {
		if topic.Category == "science" {
			assert.False(t, seen[topic.Title], "science pool is large enough to avoid repeats")
			seen[topic.Title] = true
		}
	}
}

func TestSampleTopsUpSmallPools(t *testing.T) {
	cfg := testCfg()
	// culture has 2 topics but a quota of 4 at sample size 20.
	topics, err := New(cfg).Sample(20)
	require.NoError(t, err)

	var culture int
	for _, topic := range topics {
		if topic.Category == "culture" {
			culture++
		}
	}
	assert.Equal(t, 4, culture)
}

func TestSampleDefaultSize(t *testing.T) {
	topics, err := New(testCfg()).Sample(0)
	require.NoError(t, err)
	assert.Len(t, topics, 10)
}

func TestSampleNoCategories(t *testing.T) {
	_, err := New(types.SamplingConfig{TotalSampleSize: 5}).Sample(5)
	assert.Error(t, err)
}

func TestLiteral(t *testing.T) {
	topics := Literal([]string{"Jazz", "CRISPR"})
	require.Len(t, topics, 2)
	assert.Equal(t, "Jazz", topics[0].Title)
	assert.Empty(t, topics[0].Category)
}
