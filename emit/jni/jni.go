// Package jni renders the native glue of a class: function pointer
// typedefs, JNI shims and the optional typedef header.
package jni

import (
	"fmt"
	"strings"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/emit"
	"github.com/teranos/nativegen/logger"
	"github.com/teranos/nativegen/native"
	"github.com/teranos/nativegen/transform"
)

// Generator implements emit.Generator for JNI shims
type Generator struct{}

// NewGenerator creates a new JNI generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "jni"
func (g *Generator) Language() string {
	return "jni"
}

// FileExtension returns "c"
func (g *Generator) FileExtension() string {
	return "c"
}

// Generate renders the shim source of the unit, when any function needs
// one, and the typedef header when enabled.
func (g *Generator) Generate(u *emit.Unit) ([]emit.OutputFile, error) {
	var files []emit.OutputFile
	if u.HasCustomJNI() {
		files = append(files, emit.OutputFile{
			Root:    emit.RootNative,
			Path:    emit.NativePath(u.Class, g.FileExtension()),
			Content: GenerateSource(u),
		})
	}
	if u.Options.Headers && len(u.Functions) != 0 {
		files = append(files, emit.OutputFile{
			Root:    emit.RootNative,
			Path:    emit.NativePath(u.Class, "h"),
			Content: GenerateHeader(u),
		})
	}
	logger.Logger.Debugw("Generated native files", "class", u.Class.ClassName, "files", len(files))
	return files, nil
}

// GenerateSource renders the JNI shims of the functions that need one.
func GenerateSource(u *emit.Unit) string {
	c := u.Class
	var sb strings.Builder
	sb.WriteString(emit.Header(u.Options))
	sb.WriteString("#include \"common_tools.h\"\n")
	for _, inc := range c.NativeImports {
		sb.WriteString(include(inc))
	}
	sb.WriteString("\n")

	var typedefs int
	for _, f := range u.Functions {
		if f.Func.IsBound() && f.Func.HasCustomJNI() {
			sb.WriteString(Typedef(f.Func))
			typedefs++
		}
	}
	if typedefs != 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("EXTERN_C_ENTER\n")
	for _, f := range u.Functions {
		if f.Func.HasCustomJNI() {
			sb.WriteString("\n")
			sb.WriteString(Shim(f.Func))
		}
	}
	sb.WriteString("\nEXTERN_C_EXIT\n")
	return sb.String()
}

// GenerateHeader renders a header with one function pointer typedef per function.
func GenerateHeader(u *emit.Unit) string {
	c := u.Class
	guard := strings.ToUpper(strings.ReplaceAll(c.Package, ".", "_")) + "_" + strings.ToUpper(c.ClassName) + "_H"
	var sb strings.Builder
	sb.WriteString(emit.Header(u.Options))
	fmt.Fprintf(&sb, "#ifndef %s\n#define %s\n\n", guard, guard)
	for _, f := range u.Functions {
		if !f.Func.Has(decl.KeyMacro) {
			sb.WriteString(Typedef(f.Func))
		}
	}
	fmt.Fprintf(&sb, "\n#endif /* %s */\n", guard)
	return sb.String()
}

func include(name string) string {
	if strings.HasPrefix(name, "<") || strings.HasPrefix(name, "\"") {
		return "#include " + name + "\n"
	}
	return "#include \"" + name + "\"\n"
}

// Typedef renders the function pointer typedef of fn, e.g.
// "typedef EGLint (APIENTRY *eglGetErrorPROC) (void);".
func Typedef(fn *decl.Function) string {
	params := fn.NativeParams()
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = p.Type.Declaration()
	}
	args := "void"
	if len(types) != 0 {
		args = strings.Join(types, ", ")
	}
	return fmt.Sprintf("typedef %s (APIENTRY *%sPROC) (%s);\n", fn.Returns.Type.Declaration(), fn.Name, args)
}

func jniReturnType(fn *decl.Function) string {
	if fn.ReturnsStructValue() {
		return "void"
	}
	return fn.Returns.Type.Mapping().JNIType()
}

// SymbolName returns the exported JNI symbol of the native method of fn.
func SymbolName(fn *decl.Function) string {
	name := fn.Name
	if !fn.IsSimple() {
		name = "n" + name
	}
	return "Java_" + emit.JNIClassName(fn.Class) + "_" + emit.JNIName(name)
}

// Shim renders the JNI function of fn.
func Shim(fn *decl.Function) string {
	var sb strings.Builder
	ret := fn.Returns.Type
	retJNI := jniReturnType(fn)
	code := fn.Code()

	fmt.Fprintf(&sb, "JNIEXPORT %s JNICALL %s(JNIEnv *%s, jclass clazz", retJNI, SymbolName(fn), transform.JNIEnvVar)
	if fn.IsBound() {
		fmt.Fprintf(&sb, ", jlong %s", transform.FunctionAddressVar)
	}
	for _, p := range fn.NativeParams() {
		name := p.Name
		if p.Type.IsPointer() {
			name = transform.NativeParamName(p)
		}
		fmt.Fprintf(&sb, ", %s %s", p.Type.Mapping().JNIType(), name)
	}
	if fn.ReturnsStructValue() {
		fmt.Fprintf(&sb, ", jlong %s", transform.ResultVar)
	}
	sb.WriteString(") {\n")

	if fn.IsBound() {
		fmt.Fprintf(&sb, "\t%sPROC %s = (%sPROC)(intptr_t)%s;\n", fn.Name, fn.Name, fn.Name, transform.FunctionAddressVar)
	}

	for _, p := range fn.NativeParams() {
		if !p.Type.IsPointer() {
			continue
		}
		pointerType := p.Type.Declaration()
		if p.Type.IsStructValue() {
			pointerType += " *"
		}
		sep := " "
		if strings.HasSuffix(pointerType, "*") {
			sep = ""
		}
		fmt.Fprintf(&sb, "\t%s%s%s = (%s)(intptr_t)%s;\n", pointerType, sep, p.Name, pointerType, transform.NativeParamName(p))
	}

	afterCall := code != nil && code.NativeAfterCall != ""
	if afterCall && !ret.IsVoid() && !fn.ReturnsStructValue() {
		fmt.Fprintf(&sb, "\t%s %s;\n", retJNI, transform.ResultVar)
	}
	if code != nil && code.NativeBeforeCall != "" {
		sb.WriteString(code.NativeBeforeCall + "\n")
	}

	fmt.Fprintf(&sb, "\tUNUSED_PARAMS(%s, clazz)\n", transform.JNIEnvVar)

	if code != nil && code.NativeCall != "" {
		sb.WriteString(code.NativeCall + "\n")
	} else {
		sb.WriteString("\t" + invocation(fn, retJNI, afterCall) + "\n")
	}

	if afterCall {
		sb.WriteString(code.NativeAfterCall + "\n")
		if !ret.IsVoid() && !fn.ReturnsStructValue() {
			fmt.Fprintf(&sb, "\treturn %s;\n", transform.ResultVar)
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}

func invocation(fn *decl.Function, retJNI string, afterCall bool) string {
	var sb strings.Builder
	ret := fn.Returns.Type
	switch {
	case fn.ReturnsStructValue():
		fmt.Fprintf(&sb, "*((%s*)(intptr_t)%s) = ", ret.Name(), transform.ResultVar)
	case !ret.IsVoid():
		if afterCall {
			sb.WriteString(transform.ResultVar + " =")
		} else {
			sb.WriteString("return")
		}
		sb.WriteString(" (" + retJNI + ")")
		if ret.IsPointer() {
			sb.WriteString("(intptr_t)")
		}
		if fn.Returns.Has(decl.KeyAddress) {
			sb.WriteString("&")
		}
	}

	// Bound functions call through the local function pointer.
	if fn.IsBound() {
		sb.WriteString(fn.Name)
	} else {
		sb.WriteString(fn.NativeName())
	}
	if fn.Has(decl.KeyMacro) {
		sb.WriteString(";")
		return sb.String()
	}
	params := fn.NativeParams()
	args := make([]string, len(params))
	for i, p := range params {
		switch {
		case p.Type.Mapping() == native.Pointer:
			args[i] = "(" + p.Type.Name() + ")" + p.Name
		case p.Type.IsStructValue():
			args[i] = "*" + p.Name
		default:
			args[i] = p.Name
		}
	}
	sb.WriteString("(" + strings.Join(args, ", ") + ");")
	return sb.String()
}
