// Package templates collects the bundled native class declarations.
package templates

import (
	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/templates/egl"
	"github.com/teranos/nativegen/templates/gl"
	"github.com/teranos/nativegen/templates/libffi"
	"github.com/teranos/nativegen/templates/openal"
)

// Register declares every bundled class in reg.
func Register(reg *decl.Registry) {
	egl.Register(reg)
	libffi.Register(reg)
	openal.Register(reg)
	gl.Register(reg)
}

// NewRegistry returns a registry holding every bundled class.
func NewRegistry() *decl.Registry {
	reg := decl.NewRegistry()
	Register(reg)
	return reg
}
