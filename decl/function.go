package decl

import "github.com/teranos/nativegen/native"

// Function is a native function declaration. It belongs to exactly one
// NativeClass and is read-only once validated, apart from the UTF-16
// AutoSize rewrite performed by Validate.
type Function struct {
	Modifiers

	Class      *NativeClass
	Returns    *ReturnValue
	SimpleName string
	Name       string
	Doc        string
	Parameters []*Parameter

	attachErr string
	links     links
	validated bool
	validErr  error
}

// links is the resolved cross-reference table of a function. Indices
// point into Function.Parameters; -1 means none.
type links struct {
	autoSize      map[int][]int // AutoSize param -> referenced buffers, primary first
	autoSizeFor   map[int][]int // buffer -> AutoSize params referencing it
	autoType      map[int]int   // AutoType param -> buffer
	returnLength  map[int]int   // Return param -> length param
	pointerArrays map[int]int   // PointerArray param -> lengths param
	mapPointer    int           // MapPointer size parameter
	autoSizeOut   int           // hidden AutoSizeResult out parameter
}

// Returning attaches modifiers to the return value.
func (f *Function) Returning(mods ...Modifier) *Function {
	if problem := f.Returns.attach(TargetReturn, mods); problem != "" && f.Returns.attachErr == "" {
		f.Returns.attachErr = problem
	}
	return f
}

// With attaches function modifiers.
func (f *Function) With(mods ...Modifier) *Function {
	if problem := f.attach(TargetFunction, mods); problem != "" && f.attachErr == "" {
		f.attachErr = problem
	}
	return f
}

// ReturnDoc sets the documentation of the return value.
func (f *Function) ReturnDoc(doc string) *Function {
	f.Returns.Doc = doc
	return f
}

// Validated reports whether the function passed validation.
func (f *Function) Validated() bool { return f.validated && f.validErr == nil }

// NativeName returns the native symbol invoked by the function.
func (f *Function) NativeName() string {
	if n := f.NativeNameModifier(); n != nil {
		return n.Name
	}
	return f.Name
}

// Access returns the method access modifier, "" for package-private.
func (f *Function) Access() string {
	if a := f.AccessModifier(); a != nil {
		return a.Access
	}
	return f.Class.Access
}

// Param returns the parameter with the given name, or nil.
func (f *Function) Param(name string) *Parameter {
	for _, p := range f.Parameters {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// NativeParams returns the parameters passed to the native call.
func (f *Function) NativeParams() []*Parameter {
	out := make([]*Parameter, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		if !p.Has(KeyVirtual) {
			out = append(out, p)
		}
	}
	return out
}

// ParamsWith returns the parameters carrying the modifier key.
func (f *Function) ParamsWith(k Key) []*Parameter {
	var out []*Parameter
	for _, p := range f.Parameters {
		if p.Has(k) {
			out = append(out, p)
		}
	}
	return out
}

// HasParamWith reports whether any parameter carries the modifier key.
func (f *Function) HasParamWith(k Key) bool {
	for _, p := range f.Parameters {
		if p.Has(k) {
			return true
		}
	}
	return false
}

func (f *Function) params(idx []int) []*Parameter {
	out := make([]*Parameter, 0, len(idx))
	for _, i := range idx {
		out = append(out, f.Parameters[i])
	}
	return out
}

func (f *Function) param(i int, ok bool) *Parameter {
	if !ok || i < 0 {
		return nil
	}
	return f.Parameters[i]
}

// AutoSizeReferences returns the buffers referenced by an AutoSize parameter,
// primary reference first.
func (f *Function) AutoSizeReferences(p *Parameter) []*Parameter {
	return f.params(f.links.autoSize[p.index])
}

// AutoSizeReference returns the primary buffer of an AutoSize parameter.
func (f *Function) AutoSizeReference(p *Parameter) *Parameter {
	refs := f.links.autoSize[p.index]
	if len(refs) == 0 {
		return nil
	}
	return f.Parameters[refs[0]]
}

// AutoSizeParamsFor returns the AutoSize parameters that reference buffer.
func (f *Function) AutoSizeParamsFor(buffer *Parameter) []*Parameter {
	return f.params(f.links.autoSizeFor[buffer.index])
}

// AutoSizeParamFor returns the first AutoSize parameter referencing buffer, or nil.
func (f *Function) AutoSizeParamFor(buffer *Parameter) *Parameter {
	idx := f.links.autoSizeFor[buffer.index]
	if len(idx) == 0 {
		return nil
	}
	return f.Parameters[idx[0]]
}

// AutoSizePrimaryFor returns the AutoSize parameter whose primary reference is buffer, or nil.
func (f *Function) AutoSizePrimaryFor(buffer *Parameter) *Parameter {
	for _, i := range f.links.autoSizeFor[buffer.index] {
		if refs := f.links.autoSize[i]; len(refs) != 0 && refs[0] == buffer.index {
			return f.Parameters[i]
		}
	}
	return nil
}

// AutoTypeReference returns the buffer referenced by an AutoType parameter.
func (f *Function) AutoTypeReference(p *Parameter) *Parameter {
	i, ok := f.links.autoType[p.index]
	return f.param(i, ok)
}

// ReturnLengthParam returns the length parameter of a Return modifier, or nil.
func (f *Function) ReturnLengthParam(p *Parameter) *Parameter {
	i, ok := f.links.returnLength[p.index]
	return f.param(i, ok)
}

// PointerArrayLengths returns the lengths parameter of a PointerArray parameter, or nil.
func (f *Function) PointerArrayLengths(p *Parameter) *Parameter {
	i, ok := f.links.pointerArrays[p.index]
	return f.param(i, ok)
}

// MapPointerSizeParam returns the parameter named by the MapPointer size
// expression, or nil when the expression is not a parameter.
func (f *Function) MapPointerSizeParam() *Parameter {
	return f.param(f.links.mapPointer, true)
}

// AutoSizeResultOut returns the hidden AutoSizeResult out parameter, or nil.
func (f *Function) AutoSizeResultOut() *Parameter {
	return f.param(f.links.autoSizeOut, true)
}

// HidesAutoSizeResult reports whether the AutoSizeResult out parameter is
// replaced by scratch memory: the function returns a pointer and has exactly
// one AutoSizeResult out parameter.
func (f *Function) HidesAutoSizeResult() bool {
	return f.links.autoSizeOut >= 0
}

func (f *Function) hidesAutoSizeResult() int {
	if !f.Returns.Type.IsPointer() {
		return -1
	}
	found := -1
	for i, p := range f.Parameters {
		if p.IsAutoSizeResultOut() {
			if found >= 0 {
				return -1
			}
			found = i
		}
	}
	return found
}

// IsBound reports whether the function is called through a function pointer.
func (f *Function) IsBound() bool { return f.Class.Binding != "" }

// ReturnsStructValue reports whether the function returns a struct by value
// through a caller-supplied result slot.
func (f *Function) ReturnsStructValue() bool {
	return f.Returns.Type.IsStructValue() && !f.HasParamWith(KeyAutoSizeResult)
}

// HasCustomJNI reports whether the function needs its own JNI shim.
func (f *Function) HasCustomJNI() bool {
	if !f.IsBound() {
		return true
	}
	c := f.Code()
	return c != nil && c.HasNative()
}

// IsSimple reports whether the function maps 1:1 to a public native method.
func (f *Function) IsSimple() bool {
	if f.IsBound() || len(f.order) != 0 || f.Returns.IsSpecial() {
		return false
	}
	for _, p := range f.Parameters {
		if p.IsSpecial() {
			return false
		}
	}
	return true
}

// HasUnsafeMethod reports whether an address-level method is generated in
// front of a bound function.
func (f *Function) HasUnsafeMethod() bool {
	if !f.IsBound() || f.Returns.Has(KeyAddress) {
		return false
	}
	if f.Returns.IsBufferPointer() {
		return true
	}
	for _, p := range f.Parameters {
		if p.IsBufferPointer() {
			return true
		}
	}
	return false
}

// HasNativeParams reports whether any parameter is passed to the native call.
func (f *Function) HasNativeParams() bool { return len(f.NativeParams()) != 0 }

// ReturnType is a convenience accessor for the declared return type.
func (f *Function) ReturnType() *native.Type { return f.Returns.Type }
