// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cityroute/core"
)

// ConstantWeightFn returns value for every road.
// Panics unless 0 ≤ value ≤ core.MaxWeight.
func ConstantWeightFn(value int64) func(*rand.Rand) int64 {
	if value < 0 || value > core.MaxWeight {
		panic(fmt.Sprintf("ConstantWeightFn: value must be in [0,%d], got %d", core.MaxWeight, value))
	}

	return func(*rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws road lengths uniformly from [min, max].
// Without an rng it returns min. Panics unless 0 ≤ min ≤ max ≤ core.MaxWeight.
func UniformWeightFn(min, max int64) func(*rand.Rand) int64 {
	if min < 0 || max < min || max > core.MaxWeight {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max ≤ %d, got min=%d, max=%d", core.MaxWeight, min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
