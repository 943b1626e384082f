package transform

import (
	"strings"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/native"
)

var typeSuffixes = map[*native.Mapping]string{
	native.DataShort:  "s",
	native.DataInt:    "i",
	native.DataLong:   "i64",
	native.DataFloat:  "f",
	native.DataDouble: "d",
}

// StripPostfix derives the name of a single value overload from name:
// the vector suffix "v" (or "_v") is dropped, and with stripType so is the
// element type suffix of the last parameter ("3fv" -> "3"). The class
// postfix, or the DependsOn postfix, is kept at the end.
func StripPostfix(fn *decl.Function, name string, stripType bool) string {
	if !fn.HasNativeParams() {
		return name
	}
	last := fn.Parameters[len(fn.Parameters)-1]
	if !last.IsBufferPointer() {
		return name
	}

	postfix := fn.Class.Postfix
	if d := fn.DependsOn(); d != nil && d.Postfix != "" {
		postfix = d.Postfix
	}
	if postfix != "" && strings.HasSuffix(name, postfix) {
		name = strings.TrimSuffix(name, postfix)
	} else {
		postfix = ""
	}

	cut := 0
	switch {
	case strings.HasSuffix(name, "_v"):
		cut = 2
	case strings.HasSuffix(name, "v"):
		cut = 1
	}

	if stripType {
		if suffix := typeSuffixes[last.Type.Mapping()]; suffix != "" {
			end := len(name) - cut
			if end >= len(suffix) && name[end-len(suffix):end] == suffix {
				cut += len(suffix)
			}
			if i := len(name) - cut - 1; i >= 0 && name[i] == 'u' {
				cut++
			}
		}
	}
	return name[:len(name)-cut] + postfix
}
