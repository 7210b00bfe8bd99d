// Package builder generates synthetic road networks for tests, benchmarks
// and demos.
//
// A network is assembled from topology Constructors (Path, Cycle, Star,
// Grid, Complete, RandomSparse). BuildGraph places them side by side in one
// core.Graph: each constructor owns a contiguous block of vertex indices, so
// several constructors produce several disconnected regions.
//
// Configuration primitives:
//   - BuilderOption: mutates the builder configuration before use.
//   - WithIDScheme: city names from the global vertex index ("C0","C1",…).
//   - WithSeed / WithRand: freezes every stochastic choice.
//   - WithWeightFn: road lengths (ConstantWeightFn, UniformWeightFn).
//
// Guarantees:
//   - Determinism: same constructors, options and seed ⇒ identical graphs,
//     including edge insertion order.
//   - Constructors validate their parameters and return sentinel errors;
//     they never panic at build time. Option constructors panic on nil
//     functions, which is a programming error.
//   - Every generated weight lies in [0, core.MaxWeight].
package builder
