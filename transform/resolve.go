package transform

import (
	"strconv"
	"strings"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/logger"
	"github.com/teranos/nativegen/native"
)

// Overload is one generated host method of a function.
type Overload struct {
	Name        string
	Description string
	Mode        Mode
	Set         *Set
}

// Context returns the rendering context of the overload.
func (o Overload) Context(fn *decl.Function) *Context {
	return &Context{Func: fn, Mode: o.Mode, Set: o.Set}
}

// IsBase reports whether the overload is the base method of its function.
func (o Overload) IsBase() bool { return o.Mode == ModeNormal }

type resolver struct {
	fn      *decl.Function
	binding Binding
	set     *Set
	out     []Overload
}

// Resolve derives the overloads of a validated function. The first overload
// is the base method; the others are alternatives in phase order. Every
// overload owns a snapshot of the shared set at the time it was emitted.
func Resolve(fn *decl.Function, b Binding) ([]Overload, error) {
	if !fn.Validated() {
		return nil, resolutionError(fn, nil, "Function has not been validated")
	}
	if b == nil {
		b = NoBinding
	}
	r := &resolver{fn: fn, binding: b, set: NewSet()}
	phases := []func() error{
		r.basic,
		r.typedBuffers,
		r.mapPointer,
		r.charSequences,
		r.parameters,
		r.pointerArrays,
		r.singleValues,
	}
	for _, phase := range phases {
		if err := phase(); err != nil {
			return nil, err
		}
	}
	logger.Logger.Debugw("Resolved overloads",
		logger.FieldClass, fn.Class.ClassName,
		logger.FieldFunction, fn.Name,
		logger.FieldOverloads, len(r.out))
	return r.out, nil
}

func (r *resolver) emitMode(name, description string, mode Mode) error {
	r.out = append(r.out, Overload{Name: name, Description: description, Mode: mode, Set: r.set.Clone()})
	return nil
}

func (r *resolver) emit(name, description string) error {
	return r.emitMode(name, description, ModeAlternative)
}

func (r *resolver) hiddenScratch(p *decl.Parameter) bool {
	return p != nil && r.fn.HidesAutoSizeResult() && p == r.fn.AutoSizeResultOut()
}

// basic applies the parameter substitutions of the base method and emits it.
func (r *resolver) basic() error {
	fn := r.fn
	if fn.Returns.Type.IsCharSequence() {
		r.set.Put(fn.Returns, StringReturn{})
	}

	var scratchSized []*decl.Parameter
	for _, p := range fn.Parameters {
		if p.Direction != decl.DirectionIn {
			continue
		}
		switch {
		case p.Has(decl.KeyAutoSize):
			ref := fn.AutoSizeReference(p)
			if ref == nil {
				return resolutionError(fn, p, "AutoSize reference was not resolved")
			}
			switch {
			case ref.Has(decl.KeyOptional):
			case r.hiddenScratch(ref):
				scratchSized = append(scratchSized, p)
			default:
				r.set.Put(p, NewAutoSize(ref, p.AutoSize().ApplyTo))
			}
		case p.Has(decl.KeyExpression):
			expr := p.Expression()
			r.set.Put(p, &Expression{Value: expr.Value, KeepParam: expr.KeepParam, Inner: r.set.Get(p)})
		}
	}
	if err := r.emitMode(fn.Name, "", ModeNormal); err != nil {
		return err
	}

	if len(scratchSized) == 0 {
		return nil
	}
	for _, p := range scratchSized {
		r.set.Put(p, Expression1)
	}
	return r.emit(fn.Name, "Scratch size version of:")
}

// typedBuffers replaces optional parameters and emits the typed buffer
// alternative, then runs the binding hook.
func (r *resolver) typedBuffers() error {
	fn := r.fn
	optional := false
	typed := false
	for _, p := range fn.Parameters {
		if p.Direction == decl.DirectionIn && p.Has(decl.KeyOptional) && !p.Has(decl.KeyAutoSize) && !r.set.Has(p) {
			zero := "0"
			if p.Type.IsPointer() {
				zero = "0L"
			}
			r.set.Put(p, &Expression{Value: zero})
			optional = true
		}
	}
	for _, p := range fn.Parameters {
		if p.Type.IsMultiByte() && !r.set.Has(p) && !r.hiddenScratch(p) {
			typed = true
		}
	}
	if optional || typed {
		if err := r.emit(fn.Name, "Alternative version of:"); err != nil {
			return err
		}
	}
	return r.binding.Alternatives(fn, r.set, r.emit)
}

func (r *resolver) mapPointer() error {
	fn := r.fn
	mp := fn.Returns.MapPointer()
	if mp == nil {
		return nil
	}
	if fn.MapPointerSizeParam() != nil {
		r.set.Put(fn.Returns, &MapPointerExplicit{LengthParam: mp.SizeExpression})
		return r.emit(fn.Name, "Old buffer version of:")
	}
	r.set.Put(fn.Returns, &MapPointer{Size: mp.SizeExpression})
	if err := r.emit(fn.Name, "Old buffer version of:"); err != nil {
		return err
	}
	r.set.Put(fn.Returns, &MapPointerExplicit{LengthParam: MapLength, AddParam: true})
	return r.emit(fn.Name, "Explicit size alternative version of:")
}

func (r *resolver) charSequences() error {
	fn := r.fn
	count := 0
	for _, p := range fn.Parameters {
		if p.Direction == decl.DirectionOut || !p.Type.IsCharSequence() {
			continue
		}
		sizers := fn.AutoSizeParamsFor(p)
		for _, a := range sizers {
			r.set.Put(a, &AutoSizeCharSequence{Buffer: p})
		}
		r.set.Put(p, &CharSequence{NullTerminated: len(sizers) == 0, WithLength: len(sizers) != 0})
		count++
	}
	if count == 0 {
		return nil
	}
	return r.emit(fn.Name, "CharSequence version of:")
}

// returnValue promotes p to the return value of the method.
func (r *resolver) returnValue(p *decl.Parameter) {
	r.set.Put(r.fn.Returns, NewPrimitiveValueReturn(p))
	for _, a := range r.fn.AutoSizeParamsFor(p) {
		r.set.Put(a, Expression1)
	}
	r.set.Put(p, NewPrimitiveValue(p))
}

func (r *resolver) returnParams() []*decl.Parameter {
	var out []*decl.Parameter
	for _, p := range r.fn.ParamsWith(decl.KeyReturn) {
		if p.Return().IsParam() {
			out = append(out, p)
		}
	}
	return out
}

// parameters runs the return, MultiType and AutoType phases in parameter order.
func (r *resolver) parameters() error {
	fn := r.fn
	for _, p := range fn.Parameters {
		var err error
		switch {
		case p.Has(decl.KeyReturn) && !fn.HasParamWith(decl.KeyPointerArray):
			err = r.returns(p)
		case p.Has(decl.KeyMultiType):
			err = r.multiType(p)
		case p.Has(decl.KeyAutoType):
			err = r.autoType(p)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) returns(p *decl.Parameter) error {
	fn := r.fn
	ret := p.Return()
	switch {
	case ret.IsParam() && !p.Type.IsCharSequence():
		if fn.HasParamWith(decl.KeySingleValue) {
			return nil
		}
		r.returnValue(p)
		return r.emit(StripPostfix(fn, fn.Name, false), "Single return value version of:")
	case ret.IsResultLength():
		r.set.Put(fn.Returns, &BufferAutoSizeReturn{Param: p, Length: ret.LengthParam})
		r.set.Put(p, BufferReplaceReturn{})
		return r.emit(fn.Name, "Buffer return version of:")
	}

	maxLength := fn.AutoSizeParamFor(p)
	if maxLength == nil {
		return resolutionError(fn, p, "Return buffer has no AutoSize parameter")
	}
	r.set.Remove(maxLength)

	var length *decl.Parameter
	if ret.LengthParam != "" {
		if length = fn.ReturnLengthParam(p); length == nil {
			return resolutionError(fn, p, "Return length parameter was not resolved: %s", ret.LengthParam)
		}
		r.set.Put(length, BufferLength{})
	}
	r.set.Put(p, &BufferAutoSize{MaxLength: maxLength})

	max := intCast(maxLength.Name, maxLength.Type.Mapping())
	kind := "Buffer"
	if p.Type.IsCharSequence() {
		kind = "String"
		charset := p.Type.Char().Charset()
		if length != nil {
			r.set.Put(fn.Returns, &BufferReturn{Param: p, Length: length, Charset: charset})
		} else {
			r.set.Put(fn.Returns, &BufferReturnNT{Param: p, MaxLength: max, Charset: charset})
		}
	} else {
		r.set.Put(fn.Returns, &BufferReturn{Param: p, Length: length, MaxLength: max})
	}
	if err := r.emit(fn.Name, kind+" return version of:"); err != nil {
		return err
	}

	if ret.MaxLength == "" {
		return nil
	}
	r.set.Put(maxLength, &ExpressionLocal{Value: ret.MaxLength})
	return r.emit(fn.Name, kind+" return (w/ implicit max length) version of:")
}

func (r *resolver) multiType(p *decl.Parameter) error {
	fn := r.fn
	for _, a := range fn.ParamsWith(decl.KeyAutoSize) {
		if ref := fn.AutoSizeReference(a); ref != nil && !r.hiddenScratch(ref) {
			r.set.Put(a, NewAutoSize(ref, a.AutoSize().ApplyTo))
		}
	}

	types := p.MultiType().Types
	if p.Has(decl.KeyOptional) {
		types = append([]*native.Mapping{native.DataByte}, types...)
	}
	sizer := fn.AutoSizePrimaryFor(p)
	for _, m := range types {
		if sizer != nil {
			r.set.Put(sizer, &AutoSize{Buffer: p, ApplyTo: decl.ApplyAlternative, ByteShift: m.ByteShift(), ApplyFactor: true})
		}
		r.set.Put(p, &AutoTypeTarget{Mapping: m})
		if err := r.emit(fn.Name, m.JavaType()+" version of:"); err != nil {
			return err
		}
	}
	if sizer != nil {
		r.set.Remove(sizer)
	}

	if sv := p.SingleValue(); sv != nil {
		sizer := fn.AutoSizeParamFor(p)
		if sizer == nil {
			return resolutionError(fn, p, "SingleValue requires an AutoSize parameter")
		}
		for _, m := range types {
			primitive := m.PrimitiveName()
			for i := 1; i <= 4; i++ {
				r.set.Put(sizer, &Expression{Value: "(1 << " + m.ByteShift() + ") * " + strconv.Itoa(i)})
				r.set.Put(p, &VectorValue{ParamType: PrimitiveJavaType(primitive), Primitive: primitive, NewName: sv.NewName, Size: i})
				description := primitive + strconv.Itoa(i) + " value version of:"
				if i == 1 {
					description = "Single " + primitive + " value version of:"
				}
				if err := r.emit(fn.Name+strconv.Itoa(i)+primitive[:1], description); err != nil {
					return err
				}
			}
		}
		r.set.Remove(sizer)
	}

	r.set.Remove(p)
	return nil
}

func (r *resolver) autoType(p *decl.Parameter) error {
	fn := r.fn
	buffer := fn.AutoTypeReference(p)
	if buffer == nil {
		return resolutionError(fn, p, "AutoType reference was not resolved")
	}
	if sizer := fn.AutoSizePrimaryFor(buffer); sizer != nil {
		r.set.Put(sizer, &AutoSize{Buffer: buffer, ApplyTo: sizer.AutoSize().ApplyTo})
	}
	for _, tok := range p.AutoType().Types {
		r.set.Put(p, &AutoTypeParam{Expr: tok.ClassName + "." + tok.Name})
		r.set.Put(buffer, &AutoTypeTarget{Mapping: tok.Mapping})
		if err := r.emit(fn.Name, tok.Name+" version of:"); err != nil {
			return err
		}
	}
	r.set.Remove(buffer)
	r.set.Remove(p)
	return nil
}

func (r *resolver) pointerArrays() error {
	fn := r.fn
	arrays := fn.ParamsWith(decl.KeyPointerArray)
	if len(arrays) == 0 {
		return nil
	}

	for _, p := range arrays {
		lengths := fn.PointerArrayLengths(p)
		if lengths != nil {
			r.set.Put(lengths, &PointerArrayLengths{Array: p, Multi: true})
		}
		count := fn.AutoSizePrimaryFor(p)
		if count != nil {
			r.set.Put(count, &Expression{Value: p.Name + ".length"})
		}
		kind := PointerArrayArray
		if r.lastVisible(lengths, count) == p {
			kind = PointerArrayVararg
		}
		r.set.Put(p, &PointerArray{Kind: kind})
	}
	if err := r.emit(fn.Name, "Array version of:"); err != nil {
		return err
	}

	for _, p := range r.returnParams() {
		r.returnValue(p)
	}
	names := make([]string, 0, len(arrays))
	for _, p := range arrays {
		if lengths := fn.PointerArrayLengths(p); lengths != nil {
			r.set.Put(lengths, &PointerArrayLengths{Array: p})
		}
		if count := fn.AutoSizePrimaryFor(p); count != nil {
			r.set.Put(count, Expression1)
		}
		r.set.Put(p, &PointerArray{Kind: PointerArraySingle})
		names = append(names, p.PointerArray().SingleName)
	}
	if err := r.emit(fn.Name, "Single "+strings.Join(names, " &amp; ")+" version of:"); err != nil {
		return err
	}

	for _, p := range arrays {
		if count := fn.AutoSizePrimaryFor(p); count != nil {
			r.set.Remove(count)
		}
		r.set.Remove(p)
	}
	return nil
}

// lastVisible returns the last parameter other than the hidden ones.
func (r *resolver) lastVisible(hidden ...*decl.Parameter) *decl.Parameter {
	params := r.fn.Parameters
	for i := len(params) - 1; i >= 0; i-- {
		p := params[i]
		skip := false
		for _, h := range hidden {
			if h == p {
				skip = true
			}
		}
		if !skip {
			return p
		}
	}
	return nil
}

func (r *resolver) singleValues() error {
	fn := r.fn
	count := 0
	for _, p := range fn.Parameters {
		if !p.Has(decl.KeySingleValue) || p.Has(decl.KeyMultiType) {
			continue
		}
		for _, rp := range r.returnParams() {
			r.returnValue(rp)
		}
		for _, a := range fn.AutoSizeParamsFor(p) {
			r.set.Put(a, Expression1)
		}
		r.set.Put(p, NewSingleValue(p))
		count++
	}
	if count == 0 {
		return nil
	}
	return r.emit(StripPostfix(fn, fn.Name, false), "Single value version of:")
}

// ReturnTypeOf returns the host return type of fn in an overload.
func ReturnTypeOf(ctx *Context) string {
	return Declaration(ctx, ctx.Func.Returns, ReturnJavaType(ctx.Func))
}

// Signature returns the visible host parameters of an overload, including
// parameters appended by the return transform.
func Signature(ctx *Context) []string {
	fn := ctx.Func
	params := make([]string, 0, len(fn.Parameters))
	for _, p := range fn.Parameters {
		if p.IsAutoSizeResultOut() && fn.HidesAutoSizeResult() {
			continue
		}
		if d := Declaration(ctx, p, BaseParam(ctx, p)); d != "" {
			params = append(params, d)
		}
	}
	if x, ok := ctx.Transform(fn.Returns).(ExtraParameters); ok {
		params = append(params, x.ExtraParams(ctx)...)
	}
	return params
}

// IsHidden reports whether p is absent from the signature of an overload.
func IsHidden(ctx *Context, p *decl.Parameter) bool {
	if p.IsAutoSizeResultOut() && ctx.Func.HidesAutoSizeResult() {
		return true
	}
	return Declaration(ctx, p, BaseParam(ctx, p)) == ""
}
