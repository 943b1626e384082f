// Package libffi declares the statically linked libffi core used to call
// native functions with signatures built at runtime.
package libffi

import (
	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/native"
)

const Package = "org.lwjgl.system.libffi"

// libffi types
var (
	ffiStatus = native.Integer("ffi_status", native.Int, false)
	ffiABI    = native.Integer("ffi_abi", native.Int, false)
	unsigned  = native.Integer("unsigned int", native.Int, true)
	sizeT     = native.Integer("size_t", native.Pointer, true)

	ffiCIF      = native.Struct("ffi_cif", "FFICIF")
	ffiType     = native.Struct("ffi_type", "FFIType")
	ffiClosure  = native.Struct("ffi_closure", "FFIClosure")
	ffiFnType   = native.Opaque("FFI_FN_TYPE")
	voidP       = native.Untyped("void")
	ffiCIFP     = native.PointerTo(ffiCIF)
	ffiTypeP    = native.PointerTo(ffiType)
	ffiTypePP   = native.PointerTo(ffiTypeP)
	voidPP      = native.PointerTo(voidP)
	ffiClosureP = native.PointerTo(ffiClosure)
)

// Register declares LibFFI in reg.
func Register(reg *decl.Registry) *decl.NativeClass {
	c := reg.Class(Package, "LibFFI",
		decl.WithTemplate("libffi"),
		decl.WithPrefix("FFI_", "ffi_"),
		decl.WithNativeImports("ffi.h"),
		decl.WithDoc("Native bindings to the libffi library."),
	)

	c.EnumConstant("Status codes.", 0,
		decl.C("OK", ""),
		decl.C("BAD_TYPEDEF", ""),
		decl.C("BAD_ABI", ""),
	)
	c.IntConstant("Type identifiers.",
		decl.C("TYPE_VOID", "0"),
		decl.C("TYPE_INT", "1"),
		decl.C("TYPE_FLOAT", "2"),
		decl.C("TYPE_DOUBLE", "3"),
		decl.C("TYPE_POINTER", "14"),
	)

	c.Func(ffiABI, "DEFAULT_ABI", "The default calling convention of the platform.").
		With(decl.Macro, decl.NativeNameOf("FFI_DEFAULT_ABI"))

	c.Func(ffiStatus, "prep_cif", "Prepares an ffi_cif structure for use with #call().",
		decl.In(ffiCIFP, "cif", "the cif to prepare"),
		decl.In(ffiABI, "abi", "the calling convention").WithLinks("DEFAULT_ABI"),
		decl.In(unsigned, "nargs", "the number of arguments", decl.AutoSizeOf("atypes")),
		decl.In(ffiTypeP, "rtype", "the return type"),
		decl.In(ffiTypePP, "atypes", "the argument types", decl.Nullable),
	)

	c.Func(native.VoidType, "call", "Calls the function fn according to the description given in cif.",
		decl.In(ffiCIFP, "cif", "a prepared cif"),
		decl.In(ffiFnType, "fn", "the function to call"),
		decl.Out(voidP, "rvalue", "receives the return value", decl.Nullable),
		decl.In(voidPP, "avalue", "the argument values", decl.Nullable),
	)

	c.Func(ffiClosureP, "closure_alloc", "Allocates a writable closure with an executable alias.",
		decl.In(sizeT, "size", "the closure size"),
		decl.Out(voidPP, "code", "receives the executable address", decl.CheckN(1)),
	)

	c.Func(native.VoidType, "closure_free", "Frees memory allocated by #closure_alloc().",
		decl.In(ffiClosureP, "writable", "the closure to free"),
	)

	return c
}
