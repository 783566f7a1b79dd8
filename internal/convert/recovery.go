package convert

import (
	"errors"
	"fmt"
)

// MissingDependencyError reports that an external resource the conversion
// needs is absent. Recovery may provision it once.
type MissingDependencyError struct {
	Resource string
	Err      error
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("missing dependency %s: %v", e.Resource, e.Err)
}

func (e *MissingDependencyError) Unwrap() error {
	return e.Err
}

// WithRecovery runs op. If it fails with a MissingDependencyError, provision
// is called once and op is retried once; a second failure is returned as
// is. Any other error is returned immediately.
func WithRecovery(op func() error, provision func(*MissingDependencyError) error) error {
	err := op()
	var missing *MissingDependencyError
	if !errors.As(err, &missing) {
		return err
	}
	if rerr := provision(missing); rerr != nil {
		return fmt.Errorf("recover %s: %w", missing.Resource, errors.Join(rerr, err))
	}
	return op()
}
