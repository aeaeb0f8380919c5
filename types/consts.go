package types

// Tolerance for floating point comparisons.
const floatCmpEpsilon float32 = 1e-6

// Epsilon is the tolerance used by geometric predicates throughout the
// package. Ray parameters closer than Epsilon are considered coincident.
const Epsilon float32 = 1e-4
