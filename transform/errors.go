package transform

import "github.com/pkg/errors"

var (
	// ErrDegenerateConfiguration is returned when a point correspondence has
	// no unique perspective fit: coincident points or collinear triples.
	ErrDegenerateConfiguration = errors.New("transform: degenerate point configuration")

	// ErrSingularMatrix is returned when inverting a matrix whose determinant
	// is too close to zero.
	ErrSingularMatrix = errors.New("transform: singular matrix")
)
