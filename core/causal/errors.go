package causal

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRole is matched by every MissingRoleError.
	ErrMissingRole = errors.New("missing role variable")
	// ErrNoData is returned when Build is called without a dataset.
	ErrNoData = errors.New("no data")
	// ErrInvalidSubmodel is returned when a nested model is requested without
	// a task kind or a learner family.
	ErrInvalidSubmodel = errors.New("invalid sub-model request")
)

// MissingRoleError reports a role the method cannot work without.
type MissingRoleError struct {
	Method string
	Role   Role
}

func (e *MissingRoleError) Error() string {
	return fmt.Sprintf("%s requires %s", e.Method, e.Role)
}

func (e *MissingRoleError) Is(target error) bool { return target == ErrMissingRole }
