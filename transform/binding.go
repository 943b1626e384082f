package transform

import "github.com/teranos/nativegen/decl"

// EmitFunc emits one alternative overload built from the current state of
// the shared set. The set is snapshotted; later changes do not leak into
// the emitted overload.
type EmitFunc func(name, description string) error

// Binding customizes how the functions of a native class group are
// resolved and called. NoBinding is used for statically linked classes.
type Binding interface {
	// Name identifies the binding in class declarations.
	Name() string
	// FunctionAddress returns the host expression loading the function
	// pointer of fn.
	FunctionAddress(fn *decl.Function) string
	// ShouldCheckFunctionAddress reports whether a missing function pointer
	// is rejected at the call site.
	ShouldCheckFunctionAddress(fn *decl.Function) bool
	// ParameterChecks returns extra check statements for p.
	ParameterChecks(ctx *Context, p *decl.Parameter) []string
	// Alternatives may add transforms to set and emit additional overloads.
	// It must remove what it added before returning.
	Alternatives(fn *decl.Function, set *Set, emit EmitFunc) error
}

type noBinding struct{}

// NoBinding is the binding of statically linked classes: functions are
// called directly and add no checks or overloads.
var NoBinding Binding = noBinding{}

func (noBinding) Name() string { return "" }
func (noBinding) FunctionAddress(*decl.Function) string { return "" }
func (noBinding) ShouldCheckFunctionAddress(*decl.Function) bool { return false }
func (noBinding) ParameterChecks(*Context, *decl.Parameter) []string { return nil }
func (noBinding) Alternatives(*decl.Function, *Set, EmitFunc) error { return nil }
