package transform

import (
	"fmt"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/errors"
)

// ResolutionError reports a phase precondition that does not hold for a
// function that passed validation.
type ResolutionError struct {
	Class     string
	Function  string
	Parameter string
	Reason    string
}

func (e *ResolutionError) Error() string {
	if e.Parameter == "" {
		return fmt.Sprintf("%s [%s.%s]", e.Reason, e.Class, e.Function)
	}
	return fmt.Sprintf("%s [%s.%s, parameter: %s]", e.Reason, e.Class, e.Function, e.Parameter)
}

// Unwrap makes errors.Is(err, errors.ErrResolution) hold.
func (e *ResolutionError) Unwrap() error { return errors.ErrResolution }

func resolutionError(fn *decl.Function, p *decl.Parameter, format string, args ...interface{}) error {
	e := &ResolutionError{Function: fn.Name, Reason: fmt.Sprintf(format, args...)}
	if fn.Class != nil {
		e.Class = fn.Class.ClassName
	}
	if p != nil {
		e.Parameter = p.Name
	}
	return e
}
