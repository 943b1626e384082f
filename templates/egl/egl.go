// Package egl declares the statically linked EGL 1.0 core.
package egl

import (
	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/native"
)

const Package = "org.lwjgl.egl"

// EGL types
var (
	EGLint               = native.Integer("EGLint", native.Int, false)
	EGLBoolean           = native.Primitive("EGLBoolean", native.Boolean)
	EGLDisplay           = native.Opaque("EGLDisplay")
	EGLConfig            = native.Opaque("EGLConfig")
	EGLSurface           = native.Opaque("EGLSurface")
	EGLContext           = native.Opaque("EGLContext")
	EGLNativeDisplayType = native.Opaque("EGLNativeDisplayType")
	EGLNativeWindowType  = native.Opaque("EGLNativeWindowType")

	EGLintP    = native.PointerTo(EGLint)
	EGLConfigP = native.PointerTo(EGLConfig)
	charASCII  = native.Const(native.CharSequence("char", native.ASCII))
)

// Register declares EGL10 in reg.
func Register(reg *decl.Registry) *decl.NativeClass {
	c := reg.Class(Package, "EGL10",
		decl.WithTemplate("EGL10"),
		decl.WithPrefix("EGL_", "egl"),
		decl.WithNativeImports("EGL/egl.h"),
		decl.WithDoc("Native bindings to the EGL 1.0 specification."),
	)

	c.IntConstant("Boolean values.",
		decl.C("FALSE", "0"),
		decl.C("TRUE", "1"),
	)
	c.IntConstant("Error codes returned by #GetError().",
		decl.Hex("SUCCESS", 0x3000),
		decl.Hex("NOT_INITIALIZED", 0x3001),
		decl.Hex("BAD_ACCESS", 0x3002),
		decl.Hex("BAD_ALLOC", 0x3003),
		decl.Hex("BAD_ATTRIBUTE", 0x3004),
		decl.Hex("BAD_CONFIG", 0x3005),
		decl.Hex("BAD_CONTEXT", 0x3006),
		decl.Hex("BAD_CURRENT_SURFACE", 0x3007),
		decl.Hex("BAD_DISPLAY", 0x3008),
		decl.Hex("BAD_MATCH", 0x3009),
		decl.Hex("BAD_NATIVE_PIXMAP", 0x300A),
		decl.Hex("BAD_NATIVE_WINDOW", 0x300B),
		decl.Hex("BAD_PARAMETER", 0x300C),
		decl.Hex("BAD_SURFACE", 0x300D),
	)
	c.IntConstant("Attribute list terminator.", decl.Hex("NONE", 0x3038))
	c.IntConstant("#QueryString() targets.",
		decl.Hex("VENDOR", 0x3053),
		decl.Hex("VERSION", 0x3054),
		decl.Hex("EXTENSIONS", 0x3055),
	)

	dpy := decl.In(EGLDisplay, "dpy", "the EGL display connection")

	c.Func(EGLint, "GetError", "Returns error information.")

	c.Func(EGLDisplay, "GetDisplay", "Returns an EGL display connection.",
		decl.In(EGLNativeDisplayType, "display_id", "the native display", decl.Nullable),
	)

	c.Func(EGLBoolean, "Initialize", "Initializes an EGL display connection.",
		dpy,
		decl.Out(EGLintP, "major", "returns the major version number", decl.Nullable, decl.CheckN(1)),
		decl.Out(EGLintP, "minor", "returns the minor version number", decl.Nullable, decl.CheckN(1)),
	)

	c.Func(EGLBoolean, "Terminate", "Terminates an EGL display connection.", dpy)

	c.Func(charASCII, "QueryString", "Returns a string describing an EGL display connection.",
		dpy,
		decl.In(EGLint, "name", "the string to return").WithLinks("VENDOR VERSION EXTENSIONS"),
	)

	c.Func(EGLBoolean, "GetConfigs", "Returns a list of all EGL frame buffer configurations for a display.",
		dpy,
		decl.Out(EGLConfigP, "configs", "returns the configurations", decl.Nullable),
		decl.In(EGLint, "config_size", "the size of the configs array", decl.AutoSizeOf("configs")),
		decl.Out(EGLintP, "num_config", "returns the number of configurations", decl.CheckN(1)),
	)

	c.Func(EGLBoolean, "ChooseConfig", "Returns a list of EGL frame buffer configurations that match specified attributes.",
		dpy,
		decl.In(native.Const(EGLintP), "attrib_list", "the attribute list", decl.Nullable, decl.NoneTerminated),
		decl.Out(EGLConfigP, "configs", "returns the matching configurations", decl.Nullable),
		decl.In(EGLint, "config_size", "the size of the configs array", decl.AutoSizeOf("configs")),
		decl.Out(EGLintP, "num_config", "returns the number of matching configurations", decl.CheckN(1)),
	)

	c.Func(EGLBoolean, "GetConfigAttrib", "Returns information about an EGL frame buffer configuration.",
		dpy,
		decl.In(EGLConfig, "config", "the configuration"),
		decl.In(EGLint, "attribute", "the attribute"),
		decl.Out(EGLintP, "value", "returns the attribute value", decl.CheckN(1)),
	)

	c.Func(EGLSurface, "CreateWindowSurface", "Creates a new EGL window surface.",
		dpy,
		decl.In(EGLConfig, "config", "the configuration"),
		decl.In(EGLNativeWindowType, "win", "the native window"),
		decl.In(native.Const(EGLintP), "attrib_list", "the attribute list", decl.Nullable, decl.NoneTerminated),
	)

	c.Func(EGLContext, "CreateContext", "Creates a new EGL rendering context.",
		dpy,
		decl.In(EGLConfig, "config", "the configuration"),
		decl.In(EGLContext, "share_context", "the context to share objects with", decl.Nullable),
		decl.In(native.Const(EGLintP), "attrib_list", "the attribute list", decl.Nullable, decl.NoneTerminated),
	)

	c.Func(EGLBoolean, "MakeCurrent", "Attaches an EGL rendering context to EGL surfaces.",
		dpy,
		decl.In(EGLSurface, "draw", "the draw surface", decl.Nullable),
		decl.In(EGLSurface, "read", "the read surface", decl.Nullable),
		decl.In(EGLContext, "ctx", "the context", decl.Nullable),
	)

	c.Func(EGLBoolean, "SwapBuffers", "Posts the EGL surface color buffer to a native window.",
		dpy,
		decl.In(EGLSurface, "surface", "the surface"),
	)

	return c
}
