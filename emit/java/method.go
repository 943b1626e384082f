package java

import (
	"fmt"
	"strings"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/emit"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/native"
	"github.com/teranos/nativegen/transform"
)

type methodWriter struct {
	unit *emit.Unit
	fn   *decl.Function
	sb   *strings.Builder
}

func (w *methodWriter) printf(format string, args ...interface{}) {
	fmt.Fprintf(w.sb, format, args...)
}

func (w *methodWriter) println(s string) {
	w.sb.WriteString(s)
	w.sb.WriteByte('\n')
}

func (w *methodWriter) writeFunction(overloads []transform.Overload) error {
	fn := w.fn
	simple := fn.IsSimple()
	if fn.HasCustomJNI() {
		w.nativeMethod(simple)
	}
	if simple {
		return nil
	}
	if fn.HasUnsafeMethod() {
		w.unsafeMethod()
	}
	for _, o := range overloads {
		if err := w.method(o); err != nil {
			return err
		}
	}
	return nil
}

func (w *methodWriter) link(description string) {
	w.printf("\t/** %s {@link #%s} */\n", description, w.fn.Name)
}

// nativeParams renders the parameters of native and unsafe methods.
func nativeParams(fn *decl.Function, withAddress bool) string {
	var params []string
	if withAddress {
		params = append(params, "long "+transform.FunctionAddressVar)
	}
	for _, p := range fn.NativeParams() {
		params = append(params, transform.NativeParam(p))
	}
	if fn.ReturnsStructValue() {
		params = append(params, "long "+transform.ResultVar)
	}
	return strings.Join(params, ", ")
}

func (w *methodWriter) nativeMethod(nativeOnly bool) {
	fn := w.fn
	if nativeOnly {
		if fn.Doc != "" {
			w.sb.WriteString(javadoc("\t", fn.Doc))
		}
	} else {
		w.link("JNI method for")
		w.println("\t@JavadocExclude")
	}
	name := fn.Name
	if !nativeOnly {
		name = "n" + name
	}
	w.printf("\t%sstatic native %s %s(%s);\n\n",
		access(fn.Access()), transform.ReturnNativeType(fn), name, nativeParams(fn, fn.IsBound()))
}

// callName returns the dispatch method invoking a bound function pointer
// with the JNI signature of fn, e.g. "callPIV".
func callName(fn *decl.Function) string {
	var sig strings.Builder
	sig.WriteString("call")
	for _, p := range fn.NativeParams() {
		sig.WriteString(p.Type.Mapping().JNISignature())
	}
	if fn.ReturnsStructValue() {
		sig.WriteString("PV")
		return sig.String()
	}
	sig.WriteString(fn.Returns.Type.Mapping().JNISignature())
	return sig.String()
}

func (w *methodWriter) checksFunctionAddress() bool {
	fn := w.fn
	return fn.Has(decl.KeyDependsOn) || fn.Has(decl.KeyIgnoreMissing) || w.unit.Binding.ShouldCheckFunctionAddress(fn)
}

func (w *methodWriter) unsafeMethod() {
	fn := w.fn
	w.link("Unsafe version of")
	w.println("\t@JavadocExclude")
	w.printf("\t%sstatic %s n%s(%s) {\n",
		access(fn.Access()), transform.ReturnNativeType(fn), fn.Name, nativeParams(fn, false))
	w.printf("\t\tlong %s = %s;\n", transform.FunctionAddressVar, w.unit.Binding.FunctionAddress(fn))

	var checks []string
	if w.checksFunctionAddress() {
		checks = append(checks, "checkFunctionAddress("+transform.FunctionAddressVar+");")
	}
	for _, p := range fn.Parameters {
		if p.Type.IsOpaque() && !p.Has(decl.KeyNullable) && !p.Type.IsObject() {
			checks = append(checks, "checkPointer("+transform.NativeParamName(p)+");")
		}
	}
	w.writeChecks(checks)

	args := []string{transform.FunctionAddressVar}
	for _, p := range fn.NativeParams() {
		args = append(args, transform.NativeParamName(p))
	}
	if fn.ReturnsStructValue() {
		args = append(args, transform.ResultVar)
	}
	callee := callName(fn)
	if fn.HasCustomJNI() {
		callee = "n" + fn.Name
	}
	w.sb.WriteString("\t\t")
	if transform.ReturnNativeType(fn) != "void" {
		w.sb.WriteString("return ")
	}
	w.printf("%s(%s);\n", callee, strings.Join(args, ", "))
	w.println("\t}\n")
}

// code folds the statements injected by the transforms of an overload
// into the function's own code.
func code(ctx *transform.Context) *decl.Code {
	c := ctx.Func.Code()
	if c == nil {
		c = decl.NoCode
	}
	ctx.Set.Each(func(e decl.Element, t transform.Transform) {
		if inj, ok := t.(transform.CodeInjector); ok {
			c = inj.Inject(ctx, e, c)
		}
	})
	return c
}

func (w *methodWriter) printCode(statements []decl.Statement, indent string) {
	for _, s := range statements {
		w.println(indent + s.Code)
	}
}

func (w *methodWriter) method(o transform.Overload) error {
	fn := w.fn
	ctx := o.Context(fn)
	applyTo := o.Mode.ApplyTo()

	if o.IsBase() {
		if fn.Doc != "" {
			w.sb.WriteString(javadoc("\t", fn.Doc))
		}
	} else {
		w.link(o.Description)
	}

	params := transform.Signature(ctx)
	if fn.ReturnsStructValue() {
		params = append(params, fn.Returns.Type.ClassName()+" "+transform.ResultVar)
	}
	w.printf("\t%sstatic %s %s(%s) {\n", access(fn.Access()), transform.ReturnTypeOf(ctx), o.Name, strings.Join(params, ", "))

	c := code(ctx)

	if fn.IsBound() && !fn.HasUnsafeMethod() {
		w.printf("\t\tlong %s = %s;\n", transform.FunctionAddressVar, w.unit.Binding.FunctionAddress(fn))
	}

	w.printCode(c.Statements(c.JavaInit, applyTo), "")
	w.writeChecks(w.checks(ctx))
	w.scratch(ctx)

	finally := c.Statements(c.JavaFinally, applyTo)
	indent := ""
	w.printCode(c.Statements(c.JavaBeforeNative, applyTo), "")
	if len(finally) != 0 {
		w.println("\t\ttry {")
		indent = "\t"
	}

	_, autoSized := ctx.Transform(fn.Returns).(*transform.BufferAutoSizeReturn)
	returnLater := c.HasStatements(c.JavaAfterNative, applyTo) || autoSized
	w.println(indent + w.nativeCall(ctx, returnLater))

	w.printCode(c.Statements(c.JavaAfterNative, applyTo), indent)
	if len(finally) != 0 {
		w.println("\t\t} finally {")
		w.printCode(finally, "")
		w.println("\t\t}")
	}

	if err := w.returnStatement(ctx, returnLater); err != nil {
		return err
	}
	w.println("\t}\n")
	return nil
}

// scratch allocates the APIBuffer and stages the scratch values of the overload.
func (w *methodWriter) scratch(ctx *transform.Context) {
	fn := w.fn
	set := false
	open := func() {
		if !set {
			w.printf("\t\tAPIBuffer %s = apiBuffer();\n", transform.APIBufferVar)
			set = true
		}
	}
	if fn.HidesAutoSizeResult() {
		open()
		p := fn.AutoSizeResultOut()
		kind := "long"
		if p.Type.Mapping() == native.DataInt {
			kind = "int"
		}
		w.printf("\t\tint %s = %s.%sParam();\n", p.Name, transform.APIBufferVar, kind)
	}
	ctx.Set.Each(func(e decl.Element, t transform.Transform) {
		s, ok := t.(transform.ScratchUser)
		if !ok {
			return
		}
		open()
		for _, line := range s.Scratch(ctx, e) {
			w.println("\t\t" + line)
		}
	})
}

func (w *methodWriter) nativeCall(ctx *transform.Context, returnLater bool) string {
	fn := w.fn
	var sb strings.Builder
	sb.WriteString("\t\t")

	ret := fn.Returns.Type
	constructor := ret.IsObject()
	returnType := transform.ReturnNativeType(fn)
	if constructor {
		returnType = ret.ClassName()
	}
	if !ret.IsVoid() && !fn.ReturnsStructValue() {
		if returnLater || ret.IsBufferPointer() {
			sb.WriteString(returnType + " " + transform.ResultVar + " = ")
		} else {
			sb.WriteString("return ")
		}
		if constructor {
			sb.WriteString(returnType + ".create(")
		}
	}

	var args []string
	switch {
	case fn.HasUnsafeMethod():
		sb.WriteString("n" + fn.Name + "(")
	case fn.HasCustomJNI():
		sb.WriteString("n" + fn.Name + "(")
		if fn.IsBound() {
			args = append(args, transform.FunctionAddressVar)
		}
	default:
		sb.WriteString(callName(fn) + "(")
		args = append(args, transform.FunctionAddressVar)
	}
	for _, p := range fn.NativeParams() {
		args = append(args, transform.Call(ctx, p, transform.NativeCallArg(fn, p, ctx.Mode)))
	}
	if fn.ReturnsStructValue() {
		args = append(args, transform.ResultVar+".address()")
	}
	sb.WriteString(strings.Join(args, ", "))
	sb.WriteString(")")

	if constructor {
		if c := fn.Returns.Construct(); c != nil {
			sb.WriteString(", " + c.FirstArg)
			for _, arg := range c.OtherArgs {
				sb.WriteString(", " + arg)
			}
		}
		sb.WriteString(")")
	}
	sb.WriteString(";")
	return sb.String()
}

func (w *methodWriter) returnStatement(ctx *transform.Context, returnLater bool) error {
	fn := w.fn
	ret := fn.Returns
	if ret.IsVoid() || fn.ReturnsStructValue() {
		if result := transform.Call(ctx, ret, ""); result != "" {
			w.println(result)
		}
		return nil
	}
	if !ret.IsBufferPointer() {
		if returnLater {
			w.println(transform.Call(ctx, ret, "\t\treturn "+transform.ResultVar+";"))
		}
		return nil
	}

	if ret.Type.IsStruct() {
		class := ret.Type.ClassName()
		if !ret.Has(decl.KeyStructBuffer) {
			w.printf("\t\treturn new %s(%s);\n", class, transform.ResultVar)
			return nil
		}
		sizes := fn.ParamsWith(decl.KeyAutoSizeResult)
		if len(sizes) == 0 {
			return w.errorf("No AutoSizeResult parameter could be found.")
		}
		w.printf("\t\treturn new %s.Buffer(memByteBuffer(%s, %s * %s.SIZEOF));\n",
			class, transform.ResultVar, resultSize(ctx, sizes[0], false), class)
		return nil
	}

	t := ret.Type
	nullTerminated := t.IsCharSequence() && t.NullTerminated()
	bufferType := "ByteBuffer"
	if !nullTerminated && t.Mapping() != native.Data && !t.IsCharSequence() {
		bufferType = t.Mapping().JavaType()
	}
	var expr strings.Builder
	expr.WriteString("mem" + bufferType)
	if nullTerminated {
		fmt.Fprintf(&expr, "NT%d", t.Char().Bytes())
	}
	expr.WriteString("(" + transform.ResultVar)
	switch mp := ret.MapPointer(); {
	case mp != nil:
		size := mp.SizeExpression
		if p := fn.MapPointerSizeParam(); p != nil && p.Type.Mapping() == native.Pointer {
			size = "(int)" + size
		}
		expr.WriteString(", " + size)
	case nullTerminated:
	case fn.HasParamWith(decl.KeyAutoSizeResult):
		sizes := fn.ParamsWith(decl.KeyAutoSizeResult)
		parts := make([]string, len(sizes))
		for i, p := range sizes {
			parts[i] = resultSize(ctx, p, true)
		}
		expr.WriteString(", " + strings.Join(parts, " * "))
	case ret.Has(decl.KeyAddress):
		expr.WriteString(", 1")
	default:
		return w.errorf("No AutoSizeResult parameter could be found.")
	}
	expr.WriteString(")")

	result := transform.Call(ctx, ret, expr.String())
	if strings.Contains(result, "return ") {
		w.println(result)
	} else {
		w.println("\t\treturn " + result + ";")
	}
	return nil
}

// resultSize returns the element count written to or passed through an
// AutoSizeResult parameter.
func resultSize(ctx *transform.Context, p *decl.Parameter, castIn bool) string {
	fn := ctx.Func
	normal := ctx.Mode == transform.ModeNormal
	if p.Direction == decl.DirectionIn {
		if !castIn || p.Type.Mapping() == native.Int {
			return p.Name
		}
		return "(int)" + p.Name
	}
	hidden := fn.HidesAutoSizeResult() && p == fn.AutoSizeResultOut()
	if p.Type.Mapping() == native.DataInt {
		switch {
		case hidden:
			return transform.APIBufferVar + ".intValue(" + p.Name + ")"
		case normal:
			return p.Name + ".getInt(" + p.Name + ".position())"
		}
		return p.Name + ".get(" + p.Name + ".position())"
	}
	switch {
	case hidden:
		return "(int)" + transform.APIBufferVar + ".longValue(" + p.Name + ")"
	case normal:
		return "(int)" + p.Name + ".getLong(" + p.Name + ".position())"
	}
	return "(int)" + p.Name + ".get(" + p.Name + ".position())"
}

func (w *methodWriter) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrResolution, "%s [%s.%s]",
		fmt.Sprintf(format, args...), w.unit.Class.ClassName, w.fn.Name)
}
