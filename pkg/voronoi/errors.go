package voronoi

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvariant is the cause of every internal invariant violation. Such
	// an error means the sweep itself is broken, never the input.
	ErrInvariant = errors.New("voronoi: internal invariant violated")

	// ErrNonFiniteSite is returned for sites with NaN or infinite coordinates.
	ErrNonFiniteSite = errors.New("voronoi: site has non-finite coordinates")
)

// InvariantError names the violated invariant and the handles involved.
type InvariantError struct {
	Invariant string
	Handles   []Handle
	cause     error
}

func (e *InvariantError) Error() string {
	if len(e.Handles) == 0 {
		return fmt.Sprintf("%v: %s", ErrInvariant, e.Invariant)
	}
	hs := make([]string, len(e.Handles))
	for i, h := range e.Handles {
		hs[i] = h.String()
	}
	return fmt.Sprintf("%v: %s [%s]", ErrInvariant, e.Invariant, strings.Join(hs, " "))
}

func (e *InvariantError) Unwrap() error { return e.cause }

// Cause implements the github.com/pkg/errors causer interface.
func (e *InvariantError) Cause() error { return e.cause }

// Threading errors through every tree and mesh helper would bury the sweep in
// plumbing. Broken invariants panic instead and Compute recovers them.

func violated(invariant string, handles ...Handle) {
	panic(&InvariantError{
		Invariant: invariant,
		Handles:   handles,
		cause:     errors.WithStack(ErrInvariant),
	})
}

// recoverInvariant converts a recovered *InvariantError into an error and
// re-raises any other panic.
func recoverInvariant(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(*InvariantError); ok {
		return err
	}
	panic(r)
}
