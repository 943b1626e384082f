package binding

import (
	"fmt"
	"strings"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/transform"
)

// Provider loads function pointers through a FunctionProvider into the
// fields of a per-context class instance.
type Provider struct {
	name string
	// Manager is the host class owning the capabilities, e.g. "AL".
	Manager string
	// CapabilitiesClass is the class holding one instance per class, e.g. "ALCapabilities".
	CapabilitiesClass string
	// Package is the host package of the capabilities class.
	Package string
}

// NewProvider creates a function pointer binding.
func NewProvider(name, manager, capabilitiesClass, pkg string) *Provider {
	return &Provider{name: name, Manager: manager, CapabilitiesClass: capabilitiesClass, Package: pkg}
}

func (p *Provider) Name() string { return p.name }

// FunctionAddress loads the pointer from the current instance.
func (p *Provider) FunctionAddress(fn *decl.Function) string {
	return "getInstance()." + fn.SimpleName
}

// ShouldCheckFunctionAddress is true for functions that may be missing:
// every other pointer is verified when the instance is created.
func (p *Provider) ShouldCheckFunctionAddress(fn *decl.Function) bool {
	return fn.Has(decl.KeyIgnoreMissing)
}

func (p *Provider) ParameterChecks(*transform.Context, *decl.Parameter) []string { return nil }

func (p *Provider) Alternatives(*decl.Function, *transform.Set, transform.EmitFunc) error {
	return nil
}

// FunctionAddressCall resolves a pointer from the provider by native name.
func (p *Provider) FunctionAddressCall(fn *decl.Function) string {
	return fmt.Sprintf("provider.getFunctionAddress(%q)", fn.NativeName())
}

// Members renders the pointer fields, constructor and getters of c.
func (p *Provider) Members(c *decl.NativeClass) string {
	var sb strings.Builder
	WriteFields(&sb, c)
	WriteConstructor(&sb, c, "", p.FunctionAddressCall)

	fmt.Fprintf(&sb, "\t/** Returns the {@link %s} instance for the current context. */\n", c.ClassName)
	fmt.Fprintf(&sb, "\tpublic static %s getInstance() {\n", c.ClassName)
	fmt.Fprintf(&sb, "\t\treturn checkFunctionality(%s.getCapabilities().__%s);\n", p.Manager, c.ClassName)
	sb.WriteString("\t}\n\n")

	fmt.Fprintf(&sb, "\tstatic %s create(java.util.Set<String> ext, FunctionProvider provider) {\n", c.ClassName)
	fmt.Fprintf(&sb, "\t\tif ( !ext.contains(%q) ) return null;\n\n", c.TemplateName)
	fmt.Fprintf(&sb, "\t\t%s funcs = new %s(provider);\n\n", c.ClassName, c.ClassName)
	sb.WriteString("\t\tboolean supported = checkFunctions(")
	sb.WriteString(PointerList(c, func(fn *decl.Function) bool { return !fn.Has(decl.KeyIgnoreMissing) }))
	sb.WriteString(");\n\n")
	fmt.Fprintf(&sb, "\t\treturn %s.checkExtension(%q, funcs, supported);\n", p.Manager, c.TemplateName)
	sb.WriteString("\t}\n\n")
	return sb.String()
}

// CapabilitiesPath returns the source path of the capabilities class.
func (p *Provider) CapabilitiesPath() string {
	return strings.ReplaceAll(p.Package, ".", "/") + "/" + p.CapabilitiesClass + ".java"
}

// Capabilities renders a class with one instance field and one support
// flag per class of the group.
func (p *Provider) Capabilities(classes []*decl.NativeClass) string {
	return RenderCapabilities(p.Package, p.CapabilitiesClass, p.Manager, classes, nil, func(c *decl.NativeClass) string {
		return c.TemplateName
	})
}

func boundFunctions(c *decl.NativeClass) []*decl.Function {
	var out []*decl.Function
	for _, fn := range c.Functions {
		if !fn.Has(decl.KeyMacro) {
			out = append(out, fn)
		}
	}
	return out
}

// WriteFields writes the function pointer fields of c.
func WriteFields(sb *strings.Builder, c *decl.NativeClass) {
	fns := boundFunctions(c)
	if len(fns) == 0 {
		return
	}
	sb.WriteString("\t/** Function address. */\n")
	sb.WriteString("\t@JavadocExclude\n")
	sb.WriteString("\tpublic final long\n")
	for i, fn := range fns {
		sb.WriteString("\t\t" + fn.SimpleName)
		if i == len(fns)-1 {
			sb.WriteString(";\n\n")
		} else {
			sb.WriteString(",\n")
		}
	}
}

// WriteConstructor writes a constructor loading every pointer of c with addressCall.
func WriteConstructor(sb *strings.Builder, c *decl.NativeClass, extraParams string, addressCall func(*decl.Function) string) {
	sb.WriteString("\t@JavadocExclude\n")
	fmt.Fprintf(sb, "\tpublic %s(FunctionProvider provider%s) {\n", c.ClassName, extraParams)
	for _, fn := range boundFunctions(c) {
		fmt.Fprintf(sb, "\t\t%s = %s;\n", fn.SimpleName, addressCall(fn))
	}
	sb.WriteString("\t}\n\n")
}

// PointerList joins the pointer fields of the included functions of c,
// guarded by their DependsOn extension.
func PointerList(c *decl.NativeClass, include func(*decl.Function) bool) string {
	var ptrs []string
	for _, fn := range boundFunctions(c) {
		if !include(fn) {
			continue
		}
		ptr := "funcs." + fn.SimpleName
		if d := fn.DependsOn(); d != nil {
			ref := d.Reference
			if !strings.Contains(ref, " ") {
				ref = fmt.Sprintf("ext.contains(%q)", ref)
			}
			ptr = ref + " ? " + ptr + " : -1L"
		}
		ptrs = append(ptrs, ptr)
	}
	return strings.Join(ptrs, ", ")
}

func hasFunctions(c *decl.NativeClass) bool { return len(boundFunctions(c)) != 0 }

// RenderCapabilities renders a capabilities class. A non-nil fc adds the
// forward compatible flag and reports which classes receive it.
func RenderCapabilities(pkg, class, manager string, classes []*decl.NativeClass, fc func(*decl.NativeClass) bool, capName func(*decl.NativeClass) string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "package %s;\n\n", pkg)
	sb.WriteString("import org.lwjgl.system.FunctionProvider;\n\nimport java.util.Set;\n\n")
	fmt.Fprintf(&sb, "/** Defines the capabilities of the %s bindings. */\n", manager)
	fmt.Fprintf(&sb, "public final class %s {\n\n", class)

	width := 0
	for _, c := range classes {
		if hasFunctions(c) && len(c.ClassName) > width {
			width = len(c.ClassName)
		}
	}
	for _, c := range classes {
		if hasFunctions(c) {
			fmt.Fprintf(&sb, "\tfinal %-*s __%s;\n", width, c.ClassName, c.ClassName)
		}
	}
	sb.WriteString("\n")
	for _, c := range classes {
		if c.Doc != "" {
			fmt.Fprintf(&sb, "\t/** When true, {@link %s} is supported. */\n", c.ClassName)
		}
		fmt.Fprintf(&sb, "\tpublic final boolean %s;\n", capName(c))
	}

	params := "FunctionProvider provider, Set<String> ext"
	if fc != nil {
		params += ", boolean fc"
	}
	fmt.Fprintf(&sb, "\n\t%s(%s) {\n", class, params)
	for _, c := range classes {
		name := capName(c)
		if !hasFunctions(c) {
			fmt.Fprintf(&sb, "\t\t%s = ext.contains(%q);\n", name, name)
			continue
		}
		args := "ext, provider"
		if fc != nil && fc(c) {
			args += ", fc"
		}
		fmt.Fprintf(&sb, "\t\t%s = (__%s = %s.%s.create(%s)) != null;\n",
			name, c.ClassName, c.Package, c.ClassName, args)
	}
	sb.WriteString("\t}\n}")
	return sb.String()
}
