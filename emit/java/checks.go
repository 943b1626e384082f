package java

import (
	"strconv"
	"strings"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/native"
	"github.com/teranos/nativegen/transform"
)

const debugGuard = "if ( LWJGLUtil.DEBUG )\n\t\t\t\t"

func (w *methodWriter) writeChecks(checks []string) {
	if len(checks) == 0 {
		return
	}
	if len(checks) == 1 {
		w.println("\t\tif ( LWJGLUtil.CHECKS )")
	} else {
		w.println("\t\tif ( LWJGLUtil.CHECKS ) {")
	}
	for _, check := range checks {
		w.println("\t\t\t" + check)
	}
	if len(checks) > 1 {
		w.println("\t\t}")
	}
}

// bufferShift scales a check expression between bytes and elements of m.
func bufferShift(expr string, m *native.Mapping, op string) string {
	if !m.IsMultiByte() {
		return expr
	}
	if strings.Contains(expr, " ") {
		expr = "(" + expr + ")"
	}
	return expr + " " + op + " " + m.ByteShift()
}

func nullGuard(p *decl.Parameter) string {
	if p.Has(decl.KeyNullable) && !p.Type.IsOpaque() {
		return "if ( " + p.Name + " != null ) "
	}
	return ""
}

// terminatorPostfix returns the checkNT width suffix of a terminated buffer.
func terminatorPostfix(ctx *transform.Context, p *decl.Parameter) string {
	m := p.Type.Mapping()
	if ctx.Mode != transform.ModeNormal && m.JavaType() != "ByteBuffer" {
		return ""
	}
	switch m {
	case native.DataShort:
		return "2"
	case native.DataInt, native.DataFloat:
		return "4"
	case native.DataLong, native.DataDouble:
		return "8"
	case native.DataPointer:
		return "P"
	}
	return "1"
}

// checks returns the precondition checks of an overload in parameter order.
func (w *methodWriter) checks(ctx *transform.Context) []string {
	fn := w.fn
	normal := ctx.Mode == transform.ModeNormal
	unsafe := fn.HasUnsafeMethod()
	var checks []string

	if w.checksFunctionAddress() && !unsafe {
		checks = append(checks, "checkFunctionAddress("+transform.FunctionAddressVar+");")
	}

	for _, p := range fn.Parameters {
		t := ctx.Transform(p)
		skip := transform.SkipsCheck(t)
		prefix := nullGuard(p)

		if p.Type.IsOpaque() && !p.Has(decl.KeyNullable) && !unsafe && !p.Type.IsObject() {
			checks = append(checks, "checkPointer("+p.Name+");")
		}

		if normal && p.Direction == decl.DirectionIn && p.Type.IsCharSequence() && t == nil &&
			p.Type.NullTerminated() && fn.AutoSizeParamFor(p) == nil {
			checks = append(checks, prefix+"checkNT"+strconv.Itoa(p.Type.Char().Bytes())+"("+p.Name+");")
		}

		if p.Direction == decl.DirectionIn && !skip {
			if term := p.Terminated(); term != nil {
				value := ""
				if term.Value != "" {
					value = ", " + term.Value
				}
				checks = append(checks, prefix+"checkNT"+terminatorPostfix(ctx, p)+"("+p.Name+value+");")
			}
		}

		if check := p.Check(); check != nil && !skip && (!check.Debug || w.unit.Options.DebugChecks) {
			checks = append(checks, w.bufferCheck(ctx, p, check, prefix))
		}

		if p.Has(decl.KeyAutoSize) && !skip {
			checks = append(checks, w.autoSizeChecks(ctx, p)...)
		}

		checks = append(checks, w.unit.Binding.ParameterChecks(ctx, p)...)
	}
	return dedupe(checks)
}

func (w *methodWriter) bufferCheck(ctx *transform.Context, p *decl.Parameter, check *decl.Check, prefix string) string {
	if check.Debug {
		prefix = debugGuard + prefix
	}
	m := p.Type.Mapping()
	if target, ok := ctx.Transform(p).(*transform.AutoTypeTarget); ok {
		m = target.Mapping
	}
	expr := check.Expression
	switch {
	case p.Type.Mapping().JavaType() == "ByteBuffer" && !p.Type.IsStruct():
		expr = bufferShift(expr, m, ">>")
	case transform.ByteView(ctx, p) || p.Type.IsStruct():
		expr = bufferShift(expr, m, "<<")
	}
	return prefix + "checkBuffer(" + p.Name + ", " + expr + ");"
}

// autoSizeChecks verifies the referenced buffers of an AutoSize parameter:
// against the explicit size while it is visible, and the dependent
// references against the primary one once the size is computed.
func (w *methodWriter) autoSizeChecks(ctx *transform.Context, p *decl.Parameter) []string {
	fn := w.fn
	a := p.AutoSize()
	normal := ctx.Mode == transform.ModeNormal
	hidden := transform.IsHidden(ctx, p)
	var checks []string

	if (normal && !hidden) || p.Direction == decl.DirectionInOut {
		expr := p.Name
		if p.Direction == decl.DirectionInOut {
			switch {
			case !normal:
				expr += ".get(" + p.Name + ".position())"
			case p.Type.Mapping() == native.DataInt:
				expr += ".getInt(" + p.Name + ".position())"
			default:
				expr = "PointerBuffer.get(" + p.Name + ", " + p.Name + ".position())"
			}
		}
		if a.Factor != nil {
			expr += " " + a.Factor.Inverse()
		}
		for _, ref := range fn.AutoSizeReferences(p) {
			if transform.SkipsCheck(ctx.Transform(ref)) || (fn.HidesAutoSizeResult() && ref == fn.AutoSizeResultOut()) {
				continue
			}
			arg := expr
			if normal && transform.ByteView(ctx, ref) {
				arg = bufferShift(expr, ref.Type.Mapping(), "<<")
			}
			checks = append(checks, nullGuard(ref)+"checkBuffer("+ref.Name+", "+arg+");")
		}
	}

	if !normal || hidden {
		refs := fn.AutoSizeReferences(p)
		if len(refs) < 2 {
			return checks
		}
		count := transform.ElementCount(ctx, refs[0])
		for _, dep := range refs[1:] {
			t := ctx.Transform(dep)
			if pa, ok := t.(*transform.PointerArray); ok {
				if pa.Kind != transform.PointerArraySingle {
					checks = append(checks, "checkArray("+dep.Name+", "+count+");")
				}
				continue
			}
			if !transform.SkipsCheck(t) {
				checks = append(checks, nullGuard(dep)+"checkBuffer("+dep.Name+", "+count+");")
			}
		}
	}
	return checks
}

func dedupe(checks []string) []string {
	seen := make(map[string]bool, len(checks))
	out := checks[:0]
	for _, c := range checks {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
