package vector

import "golang.org/x/exp/constraints"

// Scalar is the set of component types a vector can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Signed is the set of scalars that can be negated without wrapping into a
// different sign domain.
type Signed interface {
	constraints.Signed | constraints.Float
}
