package maintenance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetmaint/internal/models"
)

func TestGenerate_DeterministicPerKey(t *testing.T) {
	gen := NewFindingGenerator(DefaultStochasticParams())

	first := gen.Generate("TC-JJK25A")
	second := gen.Generate("TC-JJK25A")
	assert.Equal(t, first, second)

	// A fresh generator derives the same stream from the same key, so the
	// outcome is reproducible across processes too.
	other := NewFindingGenerator(DefaultStochasticParams())
	assert.Equal(t, first, other.Generate("TC-JJK25A"))
}

func TestGenerate_AbsentFinding(t *testing.T) {
	params := DefaultStochasticParams()
	params.Probability = 0
	gen := NewFindingGenerator(params)

	finding := gen.Generate("TC-JPA42C")
	assert.False(t, finding.Present)
	assert.Equal(t, models.FindingNone, finding.Kind)
	assert.Zero(t, finding.ExtraDays)
}

func TestGenerate_FlatKinds(t *testing.T) {
	params := DefaultStochasticParams()
	params.Probability = 1 // force a finding on every draw
	gen := NewFindingGenerator(params)

	allowed := map[models.FindingKind]bool{
		models.FindingCorrosion:     true,
		models.FindingFatigueCrack:  true,
		models.FindingSystemFailure: true,
	}
	seen := map[models.FindingKind]int{}
	for i := 0; i < 1000; i++ {
		finding := gen.Generate(fmt.Sprintf("TC-%04d", i))
		require.True(t, finding.Present)
		require.True(t, allowed[finding.Kind], "unexpected kind %s", finding.Kind)
		require.GreaterOrEqual(t, finding.ExtraDays, params.MinExtraDays)
		require.LessOrEqual(t, finding.ExtraDays, params.MaxExtraDays)
		require.NotEmpty(t, finding.Description)
		seen[finding.Kind]++
	}
	// All three kinds show up over a large key space.
	assert.Len(t, seen, 3)
}

func TestGenerate_WeightedKinds(t *testing.T) {
	params := DefaultStochasticParams()
	params.Probability = 1
	params.Weighted = true
	gen := NewFindingGenerator(params)

	seen := map[models.FindingKind]int{}
	for i := 0; i < 5000; i++ {
		finding := gen.Generate(fmt.Sprintf("TC-W%04d", i))
		seen[finding.Kind]++
	}
	// The remainder of the distribution is structural damage, so it dominates.
	assert.Greater(t, seen[models.FindingStructuralDamage], seen[models.FindingCorrosion])
	assert.Greater(t, seen[models.FindingCorrosion], 0)
	assert.Greater(t, seen[models.FindingFatigueCrack], 0)
}

func TestGenerate_FindingRate(t *testing.T) {
	gen := NewFindingGenerator(DefaultStochasticParams())

	const draws = 100000
	present := 0
	for i := 0; i < draws; i++ {
		if gen.Generate(fmt.Sprintf("TC-RATE-%06d", i)).Present {
			present++
		}
	}
	rate := float64(present) / float64(draws)
	assert.InDelta(t, 0.15, rate, 0.02, "finding rate %f outside tolerance", rate)
}
