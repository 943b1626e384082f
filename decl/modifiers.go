package decl

import (
	"strconv"
	"strings"

	"github.com/teranos/nativegen/native"
)

// RESULT is the name of the local holding the native call result.
const RESULT = "__result"

// ApplyTo selects the generation modes a modifier or code statement applies to.
type ApplyTo int

const (
	ApplyBoth ApplyTo = iota
	ApplyNormal
	ApplyAlternative
)

// Normal reports whether the value covers normal (base) generation.
func (a ApplyTo) Normal() bool { return a != ApplyAlternative }

// Alternative reports whether the value covers alternative generation.
func (a ApplyTo) Alternative() bool { return a != ApplyNormal }

// flag is a modifier without a payload.
type flag struct {
	key     Key
	targets Target
}

func (f flag) Key() Key { return f.key }
func (f flag) Targets() Target { return f.targets }
func (f flag) String() string { return string(f.key) }

// Marker modifiers
var (
	// Nullable allows null for a pointer parameter or return value.
	Nullable Modifier = flag{KeyNullable, TargetParameter | TargetReturn}
	// Optional replaces the parameter with a null/zero constant in alternatives.
	Optional Modifier = flag{KeyOptional, TargetParameter}
	// AutoSizeResult marks the parameter holding the element count of the returned buffer.
	AutoSizeResult Modifier = flag{KeyAutoSizeResult, TargetParameter}
	// StructBuffer marks a struct pointer as a buffer of structs.
	StructBuffer Modifier = flag{KeyStructBuffer, TargetParameter | TargetReturn}
	// Virtual parameters exist in Java signatures only and are never passed to the native call.
	Virtual Modifier = flag{KeyVirtual, TargetParameter}
	// Address returns the address of the native result instead of the value.
	Address Modifier = flag{KeyAddress, TargetReturn}
	// IgnoreMissing tolerates a missing function pointer.
	IgnoreMissing Modifier = flag{KeyIgnoreMissing, TargetFunction}
	// Macro marks a native symbol that is invoked without a parameter list.
	Macro Modifier = flag{KeyMacro, TargetFunction}
)

// FactorOp is the arithmetic relating a buffer's element count to an AutoSize value.
type FactorOp int

const (
	FactorDiv FactorOp = iota
	FactorMul
	FactorShr
	FactorShl
)

var factorOps = [...]struct{ op, inv string }{
	FactorDiv: {"/", "*"},
	FactorMul: {"*", "/"},
	FactorShr: {">>", "<<"},
	FactorShl: {"<<", ">>"},
}

// Factor scales an AutoSize value relative to its buffer's element count.
type Factor struct {
	Op     FactorOp
	Amount string
}

// Expression returns the operator and operand applied to the element count, e.g. ">> 1".
func (f *Factor) Expression() string { return factorOps[f.Op].op + " " + f.Amount }

// Inverse returns the operator and operand applied to the AutoSize value to recover the element count.
func (f *Factor) Inverse() string { return factorOps[f.Op].inv + " " + f.Amount }

func (f *Factor) String() string { return f.Expression() }

// doubled returns the factor that yields half the size value of f, i.e. the
// factor converting a byte count to a count of 2-byte code units. A nil
// result with ok means no factor.
func (f *Factor) doubled() (*Factor, bool) {
	if f == nil {
		return &Factor{Op: FactorShr, Amount: "1"}, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(f.Amount))
	if err != nil || n < 0 {
		return nil, false
	}
	switch f.Op {
	case FactorShr:
		return &Factor{Op: FactorShr, Amount: strconv.Itoa(n + 1)}, true
	case FactorDiv:
		return &Factor{Op: FactorDiv, Amount: strconv.Itoa(n * 2)}, true
	case FactorShl:
		if n <= 1 {
			return nil, n == 1
		}
		return &Factor{Op: FactorShl, Amount: strconv.Itoa(n - 1)}, true
	case FactorMul:
		if n%2 != 0 {
			return nil, false
		}
		if n == 2 {
			return nil, true
		}
		return &Factor{Op: FactorMul, Amount: strconv.Itoa(n / 2)}, true
	}
	return nil, false
}

// AutoSize derives a size parameter from the element count of one or more
// buffer parameters. The first reference drives the value; the dependent
// references are checked against it.
type AutoSize struct {
	Reference string
	Dependent []string
	Factor    *Factor
	ApplyTo   ApplyTo
}

func (*AutoSize) Key() Key { return KeyAutoSize }
func (*AutoSize) Targets() Target { return TargetParameter }

// References returns the primary reference followed by the dependent ones.
func (a *AutoSize) References() []string {
	return append([]string{a.Reference}, a.Dependent...)
}

// HasReference reports whether name is the primary or a dependent reference.
func (a *AutoSize) HasReference(name string) bool {
	if a.Reference == name {
		return true
	}
	for _, d := range a.Dependent {
		if d == name {
			return true
		}
	}
	return false
}

// Only restricts the AutoSize to one generation mode.
func (a *AutoSize) Only(applyTo ApplyTo) *AutoSize {
	c := *a
	c.ApplyTo = applyTo
	return &c
}

func (a *AutoSize) String() string {
	s := "AutoSize(" + strings.Join(a.References(), ", ") + ")"
	if a.Factor != nil {
		s += " " + a.Factor.Expression()
	}
	return s
}

// AutoSizeOf sizes a parameter by the element count of reference.
func AutoSizeOf(reference string, dependent ...string) *AutoSize {
	return &AutoSize{Reference: reference, Dependent: dependent}
}

// AutoSizeN sizes a parameter by the element count of reference divided by div.
// Powers of two become shifts.
func AutoSizeN(div int, reference string, dependent ...string) *AutoSize {
	a := AutoSizeOf(reference, dependent...)
	switch {
	case div <= 1:
	case div&(div-1) == 0:
		shift := 0
		for v := div; v > 1; v >>= 1 {
			shift++
		}
		a.Factor = &Factor{Op: FactorShr, Amount: strconv.Itoa(shift)}
	default:
		a.Factor = &Factor{Op: FactorDiv, Amount: strconv.Itoa(div)}
	}
	return a
}

// AutoSizeShr sizes a parameter by the element count of reference shifted right by expr.
func AutoSizeShr(expr, reference string, dependent ...string) *AutoSize {
	a := AutoSizeOf(reference, dependent...)
	a.Factor = &Factor{Op: FactorShr, Amount: expr}
	return a
}

// AutoSizeShl sizes a parameter by the element count of reference shifted left by expr.
func AutoSizeShl(expr, reference string, dependent ...string) *AutoSize {
	a := AutoSizeOf(reference, dependent...)
	a.Factor = &Factor{Op: FactorShl, Amount: expr}
	return a
}

// AutoSizeMul sizes a parameter by the element count of reference multiplied by expr.
func AutoSizeMul(expr, reference string, dependent ...string) *AutoSize {
	a := AutoSizeOf(reference, dependent...)
	a.Factor = &Factor{Op: FactorMul, Amount: expr}
	return a
}

// AutoTypeToken is one enumerated element type of an AutoType modifier.
type AutoTypeToken struct {
	ClassName string
	Name      string
	Mapping   *native.Mapping
}

// AutoType derives a type enum parameter from the typed view chosen for
// the referenced untyped data buffer.
type AutoType struct {
	Reference string
	Types     []AutoTypeToken
}

func (*AutoType) Key() Key { return KeyAutoType }
func (*AutoType) Targets() Target { return TargetParameter }

// AutoTypeOf builds an AutoType modifier.
func AutoTypeOf(reference string, types ...AutoTypeToken) *AutoType {
	return &AutoType{Reference: reference, Types: types}
}

// Check asserts a minimum buffer size before the native call.
type Check struct {
	Expression string
	Debug      bool
}

func (*Check) Key() Key { return KeyCheck }
func (*Check) Targets() Target { return TargetParameter }

// CheckN requires at least n elements.
func CheckN(n int) *Check { return &Check{Expression: strconv.Itoa(n)} }

// CheckExpr requires at least expr elements.
func CheckExpr(expr string) *Check { return &Check{Expression: expr} }

// DebugCheck requires at least expr elements in debug builds only.
func DebugCheck(expr string) *Check { return &Check{Expression: expr, Debug: true} }

// Expression replaces a parameter with a fixed expression in alternatives.
type Expression struct {
	Value     string
	KeepParam bool
}

func (*Expression) Key() Key { return KeyExpression }
func (*Expression) Targets() Target { return TargetParameter }

// Expr builds an Expression modifier that hides the parameter.
func Expr(value string) *Expression { return &Expression{Value: value} }

// Return promotes a parameter to the method return value.
type Return struct {
	param       bool
	LengthParam string
	MaxLength   string
}

func (*Return) Key() Key { return KeyReturn }
func (*Return) Targets() Target { return TargetParameter }

// IsParam reports whether this is the ReturnParam modifier.
func (r *Return) IsParam() bool { return r.param }

// IsResultLength reports whether the returned buffer length derives from the native result.
func (r *Return) IsResultLength() bool { return !r.param && strings.HasPrefix(r.LengthParam, RESULT) }

// ReturnParam promotes a single-element out parameter to the return value.
var ReturnParam = &Return{param: true}

// ReturnLength returns a buffer or string whose length is written to lengthParam.
// An empty lengthParam means the result is null-terminated.
func ReturnLength(lengthParam string) *Return { return &Return{LengthParam: lengthParam} }

// ReturnLengthMax is ReturnLength with an implicit max length expression.
func ReturnLengthMax(lengthParam, maxLength string) *Return {
	return &Return{LengthParam: lengthParam, MaxLength: maxLength}
}

// ReturnResult returns the parameter buffer sized by an expression over the
// native result, e.g. "__result".
func ReturnResult(expr string) *Return { return &Return{LengthParam: expr} }

// MultiType generates one typed overload per element mapping.
type MultiType struct {
	Types []*native.Mapping
}

func (*MultiType) Key() Key { return KeyMultiType }
func (*MultiType) Targets() Target { return TargetParameter }

// MultiTypeOf builds a MultiType modifier.
func MultiTypeOf(types ...*native.Mapping) *MultiType { return &MultiType{Types: types} }

// SingleValue generates an overload taking a single value instead of a buffer.
type SingleValue struct {
	NewName string
}

func (*SingleValue) Key() Key { return KeySingleValue }
func (*SingleValue) Targets() Target { return TargetParameter }

// SingleValueOf builds a SingleValue modifier.
func SingleValueOf(newName string) *SingleValue { return &SingleValue{NewName: newName} }

// PointerArray marks a pointer to an array of pointers that can be built
// from a host array of buffers or strings.
type PointerArray struct {
	ElementType  *native.Type
	SingleName   string
	LengthsParam string
}

func (*PointerArray) Key() Key { return KeyPointerArray }
func (*PointerArray) Targets() Target { return TargetParameter }

// PointerArrayOf builds a PointerArray modifier.
func PointerArrayOf(elementType *native.Type, singleName, lengthsParam string) *PointerArray {
	return &PointerArray{ElementType: elementType, SingleName: singleName, LengthsParam: lengthsParam}
}

// Terminated requires the buffer to end with a terminator value.
type Terminated struct {
	Value string
}

func (*Terminated) Key() Key { return KeyTerminated }
func (*Terminated) Targets() Target { return TargetParameter }

// Terminator values
var (
	NullTerminated = &Terminated{}
	NoneTerminated = &Terminated{Value: "EGL10.EGL_NONE"}
)

// TerminatedBy requires the buffer to end with value.
func TerminatedBy(value string) *Terminated { return &Terminated{Value: value} }

// MapPointer marks a returned pointer to mapped memory of the given size.
type MapPointer struct {
	SizeExpression string
}

func (*MapPointer) Key() Key { return KeyMapPointer }
func (*MapPointer) Targets() Target { return TargetReturn }

// MapPointerOf builds a MapPointer modifier.
func MapPointerOf(sizeExpression string) *MapPointer { return &MapPointer{SizeExpression: sizeExpression} }

// Construct passes extra arguments to the wrapper object built from a returned address.
type Construct struct {
	FirstArg  string
	OtherArgs []string
}

func (*Construct) Key() Key { return KeyConstruct }
func (*Construct) Targets() Target { return TargetReturn }

// ConstructWith builds a Construct modifier.
func ConstructWith(firstArg string, otherArgs ...string) *Construct {
	return &Construct{FirstArg: firstArg, OtherArgs: otherArgs}
}

// Statement is one injected line of host code.
type Statement struct {
	Code    string
	ApplyTo ApplyTo
}

// Stmt builds a statement that applies to every generated method.
func Stmt(code string) Statement { return Statement{Code: code} }

// Code injects host and native statements around the native call.
type Code struct {
	JavaInit         []Statement
	JavaBeforeNative []Statement
	JavaAfterNative  []Statement
	JavaFinally      []Statement

	NativeBeforeCall string
	NativeCall       string
	NativeAfterCall  string
}

func (*Code) Key() Key { return KeyCode }
func (*Code) Targets() Target { return TargetFunction }

// NoCode is the empty code injection.
var NoCode = &Code{}

// Statements filters statements by generation mode.
func (*Code) Statements(list []Statement, applyTo ApplyTo) []Statement {
	var out []Statement
	for _, s := range list {
		if s.ApplyTo == ApplyBoth || s.ApplyTo == applyTo {
			out = append(out, s)
		}
	}
	return out
}

// HasStatements reports whether any statement of list applies to applyTo.
func (c *Code) HasStatements(list []Statement, applyTo ApplyTo) bool {
	return len(c.Statements(list, applyTo)) != 0
}

// HasNative reports whether the code injects native statements.
func (c *Code) HasNative() bool {
	return c.NativeBeforeCall != "" || c.NativeCall != "" || c.NativeAfterCall != ""
}

// Append returns a copy of c with extra statements appended.
func (c *Code) Append(init, before, after, finally []Statement) *Code {
	n := *c
	n.JavaInit = append(append([]Statement(nil), c.JavaInit...), init...)
	n.JavaBeforeNative = append(append([]Statement(nil), c.JavaBeforeNative...), before...)
	n.JavaAfterNative = append(append([]Statement(nil), c.JavaAfterNative...), after...)
	n.JavaFinally = append(append([]Statement(nil), c.JavaFinally...), finally...)
	return &n
}

// NativeName overrides the native symbol name.
type NativeName struct {
	Name string
}

func (*NativeName) Key() Key { return KeyNativeName }
func (*NativeName) Targets() Target { return TargetFunction }

// NativeNameOf builds a NativeName modifier.
func NativeNameOf(name string) *NativeName { return &NativeName{Name: name} }

// AccessModifier overrides method visibility.
type AccessModifier struct {
	Access string
}

func (*AccessModifier) Key() Key { return KeyAccessModifier }
func (*AccessModifier) Targets() Target { return TargetFunction }

// Access values
var (
	Public   = &AccessModifier{Access: "public"}
	Private  = &AccessModifier{Access: "private"}
	Internal = &AccessModifier{Access: ""}
)

// DependsOn makes a function conditional on another extension.
type DependsOn struct {
	Reference string
	Postfix   string
}

func (*DependsOn) Key() Key { return KeyDependsOn }
func (*DependsOn) Targets() Target { return TargetFunction }

// DependsOnExt builds a DependsOn modifier.
func DependsOnExt(reference, postfix string) *DependsOn {
	return &DependsOn{Reference: reference, Postfix: postfix}
}
