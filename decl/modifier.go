package decl

import "strings"

// Key identifies a modifier kind. Keys are open: binding packages declare
// their own keys next to the built-in ones.
type Key string

// Built-in modifier keys
const (
	KeyAutoSize       Key = "AutoSize"
	KeyAutoSizeResult Key = "AutoSizeResult"
	KeyAutoType       Key = "AutoType"
	KeyCheck          Key = "Check"
	KeyNullable       Key = "Nullable"
	KeyOptional       Key = "Optional"
	KeyExpression     Key = "Expression"
	KeyReturn         Key = "Return"
	KeyMultiType      Key = "MultiType"
	KeySingleValue    Key = "SingleValue"
	KeyPointerArray   Key = "PointerArray"
	KeyTerminated     Key = "Terminated"
	KeyStructBuffer   Key = "StructBuffer"
	KeyVirtual        Key = "Virtual"
	KeyMapPointer     Key = "MapPointer"
	KeyAddress        Key = "Address"
	KeyConstruct      Key = "Construct"
	KeyCode           Key = "Code"
	KeyNativeName     Key = "NativeName"
	KeyAccessModifier Key = "AccessModifier"
	KeyDependsOn      Key = "DependsOn"
	KeyIgnoreMissing  Key = "IgnoreMissing"
	KeyMacro          Key = "Macro"
)

// Target is a bit set of the element kinds a modifier may be attached to.
type Target uint8

const (
	TargetParameter Target = 1 << iota
	TargetReturn
	TargetFunction
)

func (t Target) String() string {
	var parts []string
	if t&TargetParameter != 0 {
		parts = append(parts, "parameter")
	}
	if t&TargetReturn != 0 {
		parts = append(parts, "return value")
	}
	if t&TargetFunction != 0 {
		parts = append(parts, "function")
	}
	return strings.Join(parts, "|")
}

// Modifier is a typed, named fact attached to a parameter, return value or
// function. Modifier values are immutable.
type Modifier interface {
	Key() Key
	Targets() Target
}

// Validator is implemented by modifiers with rules of their own. Validate
// returns a reason when the modifier does not fit its function, or "".
// p is nil for function modifiers.
type Validator interface {
	Validate(f *Function, p *Parameter) string
}

// Modifiers is the modifier bag carried by every declaration element.
// Modifiers are write-once per key.
type Modifiers struct {
	order []Key
	mods  map[Key]Modifier
}

// Has reports whether a modifier with the given key is attached.
func (m *Modifiers) Has(k Key) bool {
	_, ok := m.mods[k]
	return ok
}

// Modifier returns the modifier attached under k, or nil.
func (m *Modifiers) Modifier(k Key) Modifier {
	return m.mods[k]
}

// ModifierKeys returns the attached keys in attachment order.
func (m *Modifiers) ModifierKeys() []Key {
	return append([]Key(nil), m.order...)
}

// attach adds mods to the bag and returns a reason string for the first
// modifier that cannot be attached, or "".
func (m *Modifiers) attach(target Target, mods []Modifier) string {
	var problem string
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		k := mod.Key()
		switch {
		case mod.Targets()&target == 0:
			if problem == "" {
				problem = "The " + string(k) + " modifier cannot be applied to a " + target.String()
			}
			continue
		case m.Has(k):
			if problem == "" {
				problem = "Duplicate modifier: " + string(k)
			}
			continue
		}
		if m.mods == nil {
			m.mods = make(map[Key]Modifier)
		}
		m.mods[k] = mod
		m.order = append(m.order, k)
	}
	return problem
}

// replace swaps an attached modifier for a new value under the same key.
func (m *Modifiers) replace(mod Modifier) {
	if !m.Has(mod.Key()) {
		m.order = append(m.order, mod.Key())
	}
	m.mods[mod.Key()] = mod
}

func (m *Modifiers) clone() Modifiers {
	c := Modifiers{order: append([]Key(nil), m.order...)}
	if m.mods != nil {
		c.mods = make(map[Key]Modifier, len(m.mods))
		for k, v := range m.mods {
			c.mods[k] = v
		}
	}
	return c
}

func modifierAs[T Modifier](m *Modifiers, k Key) T {
	v, _ := m.mods[k].(T)
	return v
}

// Typed accessors. Each returns nil when the modifier is absent.

func (m *Modifiers) AutoSize() *AutoSize { return modifierAs[*AutoSize](m, KeyAutoSize) }
func (m *Modifiers) AutoType() *AutoType { return modifierAs[*AutoType](m, KeyAutoType) }
func (m *Modifiers) Check() *Check { return modifierAs[*Check](m, KeyCheck) }
func (m *Modifiers) Expression() *Expression { return modifierAs[*Expression](m, KeyExpression) }
func (m *Modifiers) Return() *Return { return modifierAs[*Return](m, KeyReturn) }
func (m *Modifiers) MultiType() *MultiType { return modifierAs[*MultiType](m, KeyMultiType) }
func (m *Modifiers) SingleValue() *SingleValue { return modifierAs[*SingleValue](m, KeySingleValue) }
func (m *Modifiers) PointerArray() *PointerArray { return modifierAs[*PointerArray](m, KeyPointerArray) }
func (m *Modifiers) Terminated() *Terminated { return modifierAs[*Terminated](m, KeyTerminated) }
func (m *Modifiers) MapPointer() *MapPointer { return modifierAs[*MapPointer](m, KeyMapPointer) }
func (m *Modifiers) Construct() *Construct { return modifierAs[*Construct](m, KeyConstruct) }
func (m *Modifiers) Code() *Code { return modifierAs[*Code](m, KeyCode) }
func (m *Modifiers) NativeNameModifier() *NativeName { return modifierAs[*NativeName](m, KeyNativeName) }
func (m *Modifiers) AccessModifier() *AccessModifier { return modifierAs[*AccessModifier](m, KeyAccessModifier) }
func (m *Modifiers) DependsOn() *DependsOn { return modifierAs[*DependsOn](m, KeyDependsOn) }
