package decl

import (
	"fmt"

	"github.com/teranos/nativegen/errors"
)

// DeclarationError reports an inconsistent declaration: a modifier
// referencing a missing parameter or a parameter of the wrong shape.
type DeclarationError struct {
	Class     string
	Function  string
	Parameter string
	Reason    string
}

func (e *DeclarationError) Error() string {
	if e.Parameter == "" {
		return fmt.Sprintf("%s [%s.%s]", e.Reason, e.Class, e.Function)
	}
	return fmt.Sprintf("%s [%s.%s, parameter: %s]", e.Reason, e.Class, e.Function, e.Parameter)
}

// Unwrap makes errors.Is(err, errors.ErrDeclaration) hold.
func (e *DeclarationError) Unwrap() error { return errors.ErrDeclaration }

func (f *Function) errorf(p *Parameter, format string, args ...interface{}) error {
	e := &DeclarationError{
		Class:    f.Class.ClassName,
		Function: f.Name,
		Reason:   fmt.Sprintf(format, args...),
	}
	if p != nil {
		e.Parameter = p.Name
	}
	return e
}
