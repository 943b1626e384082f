package decl

import (
	"github.com/teranos/nativegen/native"
)

// Validate checks every modifier of the function and resolves the
// name-keyed cross references into the link table. A function is validated
// at most once; later calls return the first result.
func (f *Function) Validate() error {
	if f.validated {
		return f.validErr
	}
	f.validErr = f.validate()
	f.validated = true
	return f.validErr
}

func (f *Function) validate() error {
	byName := make(map[string]int, len(f.Parameters))
	for i, p := range f.Parameters {
		if p.attachErr != "" {
			return f.errorf(p, "%s", p.attachErr)
		}
		if _, dup := byName[p.Name]; dup {
			return f.errorf(p, "Duplicate parameter name")
		}
		byName[p.Name] = i
	}
	if f.Returns.attachErr != "" {
		return f.errorf(nil, "%s (return value)", f.Returns.attachErr)
	}
	if f.attachErr != "" {
		return f.errorf(nil, "%s", f.attachErr)
	}

	l := links{
		autoSize:      make(map[int][]int),
		autoSizeFor:   make(map[int][]int),
		autoType:      make(map[int]int),
		returnLength:  make(map[int]int),
		pointerArrays: make(map[int]int),
		mapPointer:    -1,
		autoSizeOut:   -1,
	}
	lookup := func(name string) *Parameter {
		if i, ok := byName[name]; ok {
			return f.Parameters[i]
		}
		return nil
	}

	// AutoSize links first: Return and PointerArray rules query them.
	for _, p := range f.Parameters {
		if err := f.validateShape(p); err != nil {
			return err
		}
		as := p.AutoSize()
		if as == nil {
			continue
		}
		for _, ref := range as.References() {
			buffer := lookup(ref)
			if buffer == nil {
				return f.errorf(p, "Buffer reference does not exist: AutoSize(%s)", ref)
			}
			switch {
			case !buffer.Type.IsPointer():
				return f.errorf(p, "Buffer reference must be a pointer type: AutoSize(%s)", ref)
			case !buffer.IsBufferPointer() && !buffer.Type.IsStruct():
				return f.errorf(p, "Buffer reference must not be a opaque pointer: AutoSize(%s)", ref)
			case buffer.Type.IsStruct() && !buffer.Has(KeyStructBuffer):
				return f.errorf(p, "Struct reference must be annotated with StructBuffer: AutoSize(%s)", ref)
			}
			l.autoSize[p.index] = append(l.autoSize[p.index], buffer.index)
			l.autoSizeFor[buffer.index] = append(l.autoSizeFor[buffer.index], p.index)

			if buffer.Type.IsCharSequence() && buffer.Type.Char() == native.UTF16 && !p.utf16Scaled {
				factor, ok := as.Factor.doubled()
				if !ok {
					return f.errorf(p, "AutoSize factor cannot be scaled to UTF-16 code units: AutoSize(%s) %s", ref, as.Factor.Expression())
				}
				scaled := *as
				scaled.Factor = factor
				p.replace(&scaled)
				p.utf16Scaled = true
			}
		}
	}
	f.links = l

	returnCount := 0
	for _, p := range f.Parameters {
		if p.Has(KeyAutoSizeResult) {
			if !f.Returns.Type.IsBufferPointer() && !f.Returns.Type.IsStruct() {
				return f.errorf(p, "Return type is not an array: AutoSizeResult")
			}
			if f.Returns.Type.IsStruct() && !f.Returns.Has(KeyStructBuffer) {
				return f.errorf(p, "Return type must be annotated with StructBuffer: AutoSizeResult")
			}
		}

		if at := p.AutoType(); at != nil {
			buffer := lookup(at.Reference)
			switch {
			case buffer == nil:
				return f.errorf(p, "Buffer reference does not exist: AutoType(%s)", at.Reference)
			case !buffer.Type.IsPointer():
				return f.errorf(p, "Buffer reference must be a pointer type: AutoType(%s)", at.Reference)
			case buffer.Type.Mapping() != native.Data:
				return f.errorf(p, "Pointer reference must have a DATA mapping: AutoType(%s)", at.Reference)
			}
			l.autoType[p.index] = buffer.index
		}

		if ret := p.Return(); ret != nil {
			returnCount++
			if returnCount > 1 {
				return f.errorf(p, "More than one return value found.")
			}
			if err := f.validateReturn(p, ret, lookup); err != nil {
				return err
			}
		}

		if pa := p.PointerArray(); pa != nil {
			if len(l.autoSizeFor[p.index]) == 0 {
				return f.errorf(p, "An AutoSize for PointerArray parameter does not exist")
			}
			if pa.LengthsParam != "" {
				lengths := lookup(pa.LengthsParam)
				switch {
				case lengths == nil:
					return f.errorf(p, "Lengths reference does not exist: PointerArray(%s)", pa.LengthsParam)
				case !lengths.Type.Mapping().IsPointerSize():
					return f.errorf(p, "Lengths reference must be an integer pointer type: PointerArray(%s)", pa.LengthsParam)
				}
				l.pointerArrays[p.index] = lengths.index
			}
		}

		if p.Has(KeySingleValue) && p.Has(KeyMultiType) && len(l.autoSizeFor[p.index]) == 0 {
			return f.errorf(p, "An AutoSize for MultiType/SingleValue parameter does not exist")
		}
	}

	if mp := f.Returns.MapPointer(); mp != nil {
		if !f.Returns.Type.IsPointer() {
			return f.errorf(nil, "The MapPointer modifier requires a pointer return type")
		}
		if size := lookup(mp.SizeExpression); size != nil {
			l.mapPointer = size.index
		}
	}

	l.autoSizeOut = f.hidesAutoSizeResult()
	f.links = l
	return f.validateCustom()
}

func (f *Function) validateCustom() error {
	for _, p := range f.Parameters {
		for _, k := range p.order {
			if v, ok := p.mods[k].(Validator); ok {
				if reason := v.Validate(f, p); reason != "" {
					return f.errorf(p, "%s", reason)
				}
			}
		}
	}
	for _, k := range f.order {
		if v, ok := f.mods[k].(Validator); ok {
			if reason := v.Validate(f, nil); reason != "" {
				return f.errorf(nil, "%s", reason)
			}
		}
	}
	return nil
}

func (f *Function) validateReturn(p *Parameter, ret *Return, lookup func(string) *Parameter) error {
	hasAutoSize := len(f.links.autoSizeFor[p.index]) != 0
	switch {
	case ret.IsParam():
		if !f.Returns.IsVoid() {
			return f.errorf(p, "The ReturnParam modifier can only be used in functions with void return type.")
		}
		if !p.Type.IsBufferPointer() {
			return f.errorf(p, "The ReturnParam modifier requires a data pointer parameter")
		}
	case ret.IsResultLength():
		if m := f.Returns.Type.Mapping(); m != native.Int && m != native.Pointer {
			return f.errorf(p, "The Return modifier was used in a function with an unsupported return type")
		}
		if !p.Has(KeyCheck) {
			return f.errorf(p, "A Check for ReturnParam parameter does not exist")
		}
		if hasAutoSize {
			return f.errorf(p, "Invalid combination of AutoSize and ReturnParam modifiers in function with non-void return type")
		}
	default:
		if !f.Returns.IsVoid() {
			return f.errorf(p, "The Return modifier was used in a function with an unsupported return type")
		}
		if !hasAutoSize {
			return f.errorf(p, "An AutoSize for Return parameter does not exist")
		}
		if ret.LengthParam == "" {
			return nil
		}
		length := lookup(ret.LengthParam)
		switch {
		case length == nil:
			return f.errorf(p, "The length parameter does not exist: Return(%s)", ret.LengthParam)
		case !length.Type.Mapping().IsPointerSize():
			return f.errorf(p, "The length parameter must be an integer pointer type: Return(%s)", ret.LengthParam)
		}
		f.links.returnLength[p.index] = length.index
	}
	return nil
}

// validateShape checks that a parameter's direction and type accept each
// of its modifiers.
func (f *Function) validateShape(p *Parameter) error {
	t := p.Type
	if p.Direction != DirectionIn && !t.IsPointer() {
		return f.errorf(p, "%s parameters must be pointer types", p.Direction)
	}
	if p.Has(KeyAutoSize) {
		ok := (t.IsInteger() && p.Direction == DirectionIn) ||
			(p.Direction == DirectionInOut && t.Mapping().IsPointerSize())
		if !ok {
			return f.errorf(p, "The AutoSize modifier can only be applied on integer parameters")
		}
	}
	if p.Has(KeyAutoSizeResult) {
		ok := (t.IsInteger() && p.Direction == DirectionIn) ||
			(p.Direction != DirectionIn && t.Mapping().IsPointerSize())
		if !ok {
			return f.errorf(p, "The AutoSizeResult modifier can only be applied on integer IN parameters or integer pointer OUT parameters")
		}
	}
	for _, k := range []Key{KeyCheck, KeyNullable, KeyTerminated, KeySingleValue, KeyPointerArray, KeyMultiType, KeyStructBuffer} {
		if p.Has(k) && !t.IsPointer() {
			return f.errorf(p, "The %s modifier can only be applied on pointer parameters", k)
		}
	}
	if p.Has(KeyMultiType) && t.Mapping() != native.Data {
		return f.errorf(p, "The MultiType modifier can only be applied on void pointer parameters")
	}
	if p.Has(KeyOptional) && !t.IsPointer() && !t.IsInteger() {
		return f.errorf(p, "The Optional modifier can only be applied on pointer or integer parameters")
	}
	return nil
}
