package types

// floatCmpEpsilon is the tolerance used by the vector code for
// guarding against near-zero divisions (e.g. normalizing a degenerate vector).
const floatCmpEpsilon = 1e-7
