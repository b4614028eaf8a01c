package maintenance

import (
	"hash/fnv"
	"math/rand"

	"fleetmaint/internal/models"
)

// StochasticParams tunes the non-routine-finding model. A finding occurs as
// an independent Bernoulli trial per check evaluation with the given
// probability; its extra delay is uniform in [MinExtraDays, MaxExtraDays].
//
// With Weighted false the finding kind is a flat choice among corrosion,
// fatigue crack and system failure. With Weighted true the kind is drawn from
// the per-kind probabilities on a fresh uniform variate, with the remainder
// of the trial classed as structural damage.
type StochasticParams struct {
	Probability  float64
	MinExtraDays int
	MaxExtraDays int

	Weighted                 bool
	CorrosionProbability     float64
	FatigueCrackProbability  float64
	SystemFailureProbability float64
}

// DefaultStochasticParams mirrors the EASA non-routine-finding rates used in
// the reference literature: 15% of checks surface a finding, adding 1-3 days.
func DefaultStochasticParams() StochasticParams {
	return StochasticParams{
		Probability:              0.15,
		MinExtraDays:             1,
		MaxExtraDays:             3,
		Weighted:                 false,
		CorrosionProbability:     0.08,
		FatigueCrackProbability:  0.05,
		SystemFailureProbability: 0.02,
	}
}

var findingDescriptions = map[models.FindingKind]string{
	models.FindingCorrosion:        "Corrosion detected in structural components",
	models.FindingFatigueCrack:     "Fatigue crack found during NDT inspection",
	models.FindingSystemFailure:    "System malfunction during functional test",
	models.FindingStructuralDamage: "Minor structural damage requiring repair",
}

// FindingGenerator produces non-routine findings from a deterministic
// per-key pseudo-random stream. There is no shared generator state: every
// Generate call derives a private stream from its seed key, so calls are
// reproducible regardless of order and safe to run concurrently.
type FindingGenerator struct {
	params StochasticParams
}

// NewFindingGenerator creates a generator with the given parameters.
func NewFindingGenerator(params StochasticParams) *FindingGenerator {
	return &FindingGenerator{params: params}
}

// Generate draws one finding outcome for the given seed key, typically the
// tail number concatenated with the check letter (e.g. "TC-JJK25A").
// Repeated calls with the same key always yield the same outcome, in the
// same process and across processes.
func (g *FindingGenerator) Generate(seedKey string) models.NonRoutineFinding {
	rng := rand.New(rand.NewSource(seedFromKey(seedKey)))

	if rng.Float64() >= g.params.Probability {
		return absentFinding()
	}

	var kind models.FindingKind
	if g.params.Weighted {
		roll := rng.Float64()
		switch {
		case roll < g.params.CorrosionProbability:
			kind = models.FindingCorrosion
		case roll < g.params.CorrosionProbability+g.params.FatigueCrackProbability:
			kind = models.FindingFatigueCrack
		case roll < g.params.CorrosionProbability+g.params.FatigueCrackProbability+g.params.SystemFailureProbability:
			kind = models.FindingSystemFailure
		default:
			kind = models.FindingStructuralDamage
		}
	} else {
		flat := []models.FindingKind{
			models.FindingCorrosion,
			models.FindingFatigueCrack,
			models.FindingSystemFailure,
		}
		kind = flat[rng.Intn(len(flat))]
	}

	extraDays := g.params.MinExtraDays
	if spread := g.params.MaxExtraDays - g.params.MinExtraDays; spread > 0 {
		extraDays += rng.Intn(spread + 1)
	}

	return models.NonRoutineFinding{
		Present:     true,
		Kind:        kind,
		ExtraDays:   extraDays,
		Description: findingDescriptions[kind],
	}
}

func absentFinding() models.NonRoutineFinding {
	return models.NonRoutineFinding{Kind: models.FindingNone}
}

// seedFromKey hashes the key with FNV-1a so the stream depends only on the
// key bytes, not on process state.
func seedFromKey(key string) int64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return int64(h.Sum64())
}
