package builder

import (
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to generated edges when no
// WeightFn is configured. Zero keeps path scores equal to the sum of the
// explicit weights only.
const DefaultEdgeWeight float64 = 0

// WeightFn produces an edge weight (a log-score) from the configured RNG.
// It must be deterministic for a given seed. rng may be nil.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Log-scores may be negative, so any finite value is accepted.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max). Panics if max < min.
// With a nil rng it yields min so results stay deterministic.
func UniformWeightFn(min, max float64) WeightFn {
	if max < min {
		panic("UniformWeightFn: require min ≤ max")
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// LogProbWeightFn samples a probability p in (0,1] and returns log(p)
// rounded to three decimals, mimicking acoustic-model scores.
func LogProbWeightFn(rng *rand.Rand) float64 {
	if rng == nil {
		return DefaultEdgeWeight
	}
	p := 1 - rng.Float64() // (0,1]

	return roundMilli(math.Log(p))
}
