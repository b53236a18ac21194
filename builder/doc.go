// SPDX-License-Identifier: MIT

// Package builder generates deterministic weighted digraphs for tests,
// examples and benchmarks of the shortest-path solvers.
//
// Components:
//
//   - BuildGraph:   creates a core.Graph and runs Constructors in order.
//   - Constructors: Path(n), Cycle(n), Complete(n), RandomSparse(n, p).
//   - Options:
//     – WithSeed / WithRand: RNG for RandomSparse and drawn weights.
//     – WithWeights(min, max): uniform integer weights in [min, max], negatives allowed.
//     – WithLabels(fn):        vertex labels from the local index.
//
// Guarantees:
//
//   - Same options, seed and constructor order produce identical graphs.
//   - Each constructor appends its own vertices, so constructors compose into
//     disjoint components.
//   - Invalid parameters return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource); invalid option values panic
//     in the option constructor (ErrBadWeightRange from WithWeights).
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeights(-2, 9)},
//	    builder.RandomSparse(50, 0.1))
package builder
