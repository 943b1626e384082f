// Package java renders the host class of a native class: constants,
// function pointer members and every overload of every function.
package java

import (
	"fmt"
	"sort"
	"strings"

	"github.com/teranos/nativegen/binding"
	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/emit"
	"github.com/teranos/nativegen/logger"
	"github.com/teranos/nativegen/transform"
)

// Generator implements emit.Generator for Java host classes
type Generator struct{}

// NewGenerator creates a new Java generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "java"
func (g *Generator) Language() string {
	return "java"
}

// FileExtension returns "java"
func (g *Generator) FileExtension() string {
	return "java"
}

// Generate renders the host class of the unit.
func (g *Generator) Generate(u *emit.Unit) ([]emit.OutputFile, error) {
	content, err := GenerateClass(u)
	if err != nil {
		return nil, err
	}
	return []emit.OutputFile{{Root: emit.RootJava, Path: emit.JavaPath(u.Class), Content: content}}, nil
}

// GenerateClass renders the complete source of the host class.
func GenerateClass(u *emit.Unit) (string, error) {
	c := u.Class
	var sb strings.Builder

	sb.WriteString(emit.Header(u.Options))
	fmt.Fprintf(&sb, "package %s;\n\n", c.Package)
	writeImports(&sb, u)

	if c.Doc != "" {
		sb.WriteString(javadoc("", c.Doc))
	}
	fmt.Fprintf(&sb, "%sclass %s {\n\n", access(c.Access), c.ClassName)

	for _, b := range c.Constants {
		writeConstants(&sb, c, b)
	}

	if members, ok := u.Binding.(binding.Class); ok {
		sb.WriteString(members.Members(c))
	} else {
		sb.WriteString("\tstatic { Library.initialize(); }\n\n")
		sb.WriteString("\t@JavadocExclude\n")
		fmt.Fprintf(&sb, "\tprotected %s() {\n", c.ClassName)
		sb.WriteString("\t\tthrow new UnsupportedOperationException();\n")
		sb.WriteString("\t}\n\n")
	}

	for _, f := range u.Functions {
		w := &methodWriter{unit: u, fn: f.Func, sb: &sb}
		if err := w.writeFunction(f.Overloads); err != nil {
			return "", err
		}
	}

	sb.WriteString("}")

	logger.Logger.Debugw("Generated host class",
		"class", c.ClassName,
		"functions", len(u.Functions),
		"overloads", u.OverloadCount())
	return sb.String(), nil
}

func writeImports(sb *strings.Builder, u *emit.Unit) {
	sb.WriteString("import java.nio.*;\n\n")
	sb.WriteString("import org.lwjgl.*;\n")
	sb.WriteString("import org.lwjgl.system.*;\n")

	imports := append([]string(nil), u.Class.JavaImports...)
	sort.Strings(imports)
	var statics []string
	for _, imp := range imports {
		if strings.HasPrefix(imp, "static ") {
			statics = append(statics, imp)
			continue
		}
		fmt.Fprintf(sb, "import %s;\n", imp)
	}
	sb.WriteString("\n")

	sb.WriteString("import static org.lwjgl.system.Checks.*;\n")
	if u.Class.IsBound() {
		sb.WriteString("import static org.lwjgl.system.JNI.*;\n")
	}
	sb.WriteString("import static org.lwjgl.system.MemoryUtil.*;\n")
	if usesAPIBuffer(u) {
		sb.WriteString("import static org.lwjgl.system.APIUtil.*;\n")
	}
	for _, imp := range statics {
		fmt.Fprintf(sb, "import %s;\n", imp)
	}
	sb.WriteString("\n")
}

func usesAPIBuffer(u *emit.Unit) bool {
	for _, f := range u.Functions {
		if f.Func.HidesAutoSizeResult() {
			return true
		}
		for _, o := range f.Overloads {
			used := false
			o.Set.Each(func(_ decl.Element, t transform.Transform) {
				if _, ok := t.(transform.ScratchUser); ok {
					used = true
				}
			})
			if used {
				return true
			}
		}
	}
	return false
}

func writeConstants(sb *strings.Builder, c *decl.NativeClass, b *decl.ConstantBlock) {
	if len(b.Constants) == 0 {
		return
	}
	if b.Doc != "" {
		sb.WriteString(javadoc("\t", b.Doc))
	}
	if len(b.Constants) == 1 {
		k := b.Constants[0]
		fmt.Fprintf(sb, "\tpublic static final %s %s = %s;\n\n", b.Type, c.ConstantName(b, k), k.Value)
		return
	}
	fmt.Fprintf(sb, "\tpublic static final %s\n", b.Type)
	for i, k := range b.Constants {
		sep := ","
		if i == len(b.Constants)-1 {
			sep = ";"
		}
		fmt.Fprintf(sb, "\t\t%s = %s%s\n", c.ConstantName(b, k), k.Value, sep)
	}
	sb.WriteString("\n")
}

// javadoc renders a documentation comment at the given indentation.
func javadoc(indent, text string) string {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "\n") {
		return indent + "/** " + text + " */\n"
	}
	var sb strings.Builder
	sb.WriteString(indent + "/**\n")
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(strings.TrimRight(indent+" * "+strings.TrimSpace(line), " ") + "\n")
	}
	sb.WriteString(indent + " */\n")
	return sb.String()
}

func access(a string) string {
	if a == "" {
		return ""
	}
	return a + " "
}
