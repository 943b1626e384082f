package decl

import (
	"strconv"

	"github.com/teranos/nativegen/native"
)

// NativeClass groups the functions and constants of one extension or
// module into one generated unit.
type NativeClass struct {
	Package       string
	ClassName     string
	TemplateName  string
	Prefix        string // constant prefix, e.g. "EGL_"
	PrefixMethod  string // method prefix, e.g. "egl"
	Postfix       string // vendor postfix, e.g. "NV"
	Binding       string // function-pointer binding group, "" when statically linked
	Access        string
	Doc           string
	JavaImports   []string
	NativeImports []string
	Constants     []*ConstantBlock
	Functions     []*Function
}

// ClassOption configures a NativeClass.
type ClassOption func(*NativeClass)

// WithTemplate sets the template name, the extension string of the class.
func WithTemplate(name string) ClassOption { return func(c *NativeClass) { c.TemplateName = name } }

// WithPrefix sets the constant and method prefixes.
func WithPrefix(constants, methods string) ClassOption {
	return func(c *NativeClass) {
		c.Prefix = constants
		c.PrefixMethod = methods
	}
}

// WithPostfix sets the vendor postfix, e.g. "NV".
func WithPostfix(postfix string) ClassOption { return func(c *NativeClass) { c.Postfix = postfix } }

// WithBinding binds the class through the named function-pointer binding.
func WithBinding(name string) ClassOption { return func(c *NativeClass) { c.Binding = name } }

// WithDoc sets the class documentation.
func WithDoc(doc string) ClassOption { return func(c *NativeClass) { c.Doc = doc } }

// WithJavaImports adds host-language imports.
func WithJavaImports(imports ...string) ClassOption {
	return func(c *NativeClass) { c.JavaImports = append(c.JavaImports, imports...) }
}

// WithNativeImports adds native includes.
func WithNativeImports(imports ...string) ClassOption {
	return func(c *NativeClass) { c.NativeImports = append(c.NativeImports, imports...) }
}

// WithAccess sets the default method visibility.
func WithAccess(access string) ClassOption { return func(c *NativeClass) { c.Access = access } }

// NewClass creates a class outside of a registry.
func NewClass(pkg, className string, opts ...ClassOption) *NativeClass {
	c := &NativeClass{Package: pkg, ClassName: className, TemplateName: className, Access: "public"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsBound reports whether the class is called through function pointers.
func (c *NativeClass) IsBound() bool { return c.Binding != "" }

// Func declares a function of the class. Parameters are copied, so a
// parameter value may be shared between declarations.
func (c *NativeClass) Func(returns *native.Type, name, doc string, params ...*Parameter) *Function {
	f := &Function{
		Class:      c,
		Returns:    &ReturnValue{Type: returns},
		SimpleName: name,
		Name:       c.PrefixMethod + name,
		Doc:        doc,
		Parameters: make([]*Parameter, len(params)),
		links:      links{mapPointer: -1, autoSizeOut: -1},
	}
	for i, p := range params {
		cp := p.clone()
		cp.index = i
		f.Parameters[i] = cp
	}
	c.Functions = append(c.Functions, f)
	return f
}

// Function returns the function with the given simple or full name, or nil.
func (c *NativeClass) Function(name string) *Function {
	for _, f := range c.Functions {
		if f.Name == name || f.SimpleName == name {
			return f
		}
	}
	return nil
}

// Validate validates every function of the class in declaration order and
// returns the first error.
func (c *NativeClass) Validate() error {
	for _, f := range c.Functions {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ConstantType is the host type of a constant block.
type ConstantType int

const (
	ConstInt ConstantType = iota
	ConstShort
	ConstLong
	ConstByte
)

var constantTypes = [...]string{"int", "short", "long", "byte"}

func (t ConstantType) String() string { return constantTypes[t] }

// Constant is a named constant value. Value is a host expression.
type Constant struct {
	Name  string
	Value string
}

// C declares a constant with a literal or expression value.
func C(name, value string) Constant { return Constant{Name: name, Value: value} }

// Hex declares a constant with a hexadecimal value.
func Hex(name string, value int64) Constant {
	return Constant{Name: name, Value: "0x" + strconv.FormatInt(value, 16)}
}

// ConstantBlock is a documented block of constants of one type.
type ConstantBlock struct {
	Doc       string
	Type      ConstantType
	Constants []Constant
	NoPrefix  bool
}

// ConstantBlock adds a constant block.
func (c *NativeClass) ConstantBlock(t ConstantType, doc string, constants ...Constant) *ConstantBlock {
	b := &ConstantBlock{Doc: doc, Type: t, Constants: constants}
	c.Constants = append(c.Constants, b)
	return b
}

// IntConstant adds a block of int constants.
func (c *NativeClass) IntConstant(doc string, constants ...Constant) *ConstantBlock {
	return c.ConstantBlock(ConstInt, doc, constants...)
}

// EnumConstant adds a block of int constants numbered from start. Constants
// with an explicit value keep it and restart the numbering after it.
func (c *NativeClass) EnumConstant(doc string, start int, constants ...Constant) *ConstantBlock {
	next := start
	for i := range constants {
		if constants[i].Value == "" {
			constants[i].Value = strconv.Itoa(next)
			next++
			continue
		}
		if v, err := strconv.Atoi(constants[i].Value); err == nil {
			next = v + 1
		}
	}
	return c.ConstantBlock(ConstInt, doc, constants...)
}

// WithoutPrefix disables the class constant prefix for the block.
func (b *ConstantBlock) WithoutPrefix() *ConstantBlock {
	b.NoPrefix = true
	return b
}

// ConstantName returns the host name of a constant of b in class c.
func (c *NativeClass) ConstantName(b *ConstantBlock, k Constant) string {
	if b.NoPrefix {
		return k.Name
	}
	return c.Prefix + k.Name
}
