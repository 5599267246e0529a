package tpntree

// Error types reported by tree operations. Discriminate with errors.IsType
// from github.com/aukilabs/go-tooling/pkg/errors.
const (
	// The tree region does not contain the given coordinates.
	ErrTypeDoesNotSpan = "tree_does_not_span"

	// The tree has been divided before.
	ErrTypeCanNotDivide = "tree_can_not_divide"

	// The dimension of the data does not match the dimension of the tree.
	ErrTypeDimensionMismatch = "tree_dimension_mismatch"
)
