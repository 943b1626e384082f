// Package gl declares a sample of the OpenGL core and one ARB extension.
// Both load their function pointers through the GL binding.
package gl

import (
	glbinding "github.com/teranos/nativegen/binding/gl"
	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/native"
)

const Package = "org.lwjgl.opengl"

// OpenGL types
var (
	GLenum     = native.Integer("GLenum", native.Int, true)
	GLboolean  = native.Primitive("GLboolean", native.Boolean)
	GLint      = native.Integer("GLint", native.Int, false)
	GLuint     = native.Integer("GLuint", native.Int, true)
	GLsizei    = native.Integer("GLsizei", native.Int, false)
	GLfloat    = native.Primitive("GLfloat", native.Float)
	GLbitfield = native.Integer("GLbitfield", native.Int, true)
	GLvoidP    = native.Untyped("GLvoid")
	GLubyteP   = native.Const(native.CharSequence("GLubyte", native.UTF8))

	GLintP   = native.PointerTo(GLint)
	GLuintP  = native.PointerTo(GLuint)
	GLfloatP = native.PointerTo(GLfloat)
)

// Register declares GL11 and ARBVertexArrayObject in reg.
func Register(reg *decl.Registry) []*decl.NativeClass {
	return []*decl.NativeClass{gl11(reg), arbVertexArrayObject(reg)}
}

func gl11(reg *decl.Registry) *decl.NativeClass {
	c := reg.Class(Package, "GL11",
		decl.WithTemplate("GL11"),
		decl.WithPrefix("GL_", "gl"),
		decl.WithBinding(glbinding.Name),
		decl.WithNativeImports("OpenGL.h"),
		decl.WithDoc("The core OpenGL 1.1 functionality."),
	)

	c.IntConstant("Boolean values.",
		decl.C("FALSE", "0"),
		decl.C("TRUE", "1"),
	)
	c.IntConstant("Primitive modes.",
		decl.Hex("POINTS", 0x0),
		decl.Hex("LINES", 0x1),
		decl.Hex("TRIANGLES", 0x4),
	)
	c.IntConstant("Data types.",
		decl.Hex("UNSIGNED_BYTE", 0x1401),
		decl.Hex("UNSIGNED_SHORT", 0x1403),
		decl.Hex("UNSIGNED_INT", 0x1405),
		decl.Hex("FLOAT", 0x1406),
	)
	c.IntConstant("Buffer bits.",
		decl.Hex("DEPTH_BUFFER_BIT", 0x100),
		decl.Hex("COLOR_BUFFER_BIT", 0x4000),
	)
	c.IntConstant("GetString names.",
		decl.Hex("VENDOR", 0x1F00),
		decl.Hex("RENDERER", 0x1F01),
		decl.Hex("VERSION", 0x1F02),
		decl.Hex("EXTENSIONS", 0x1F03),
	)

	pname := decl.In(GLenum, "pname", "the parameter to query")

	c.Func(GLenum, "GetError", "Returns error information.")

	c.Func(GLubyteP, "GetString", "Returns a string describing the current GL connection.",
		decl.In(GLenum, "name", "the string to return").WithLinks("VENDOR RENDERER VERSION EXTENSIONS"),
	)

	c.Func(native.VoidType, "Enable", "Enables a server-side capability.",
		decl.In(GLenum, "target", "the capability"),
	)

	c.Func(native.VoidType, "Clear", "Clears buffers to preset values.",
		decl.In(GLbitfield, "mask", "the buffers to clear").WithLinks("DEPTH_BUFFER_BIT COLOR_BUFFER_BIT"),
	)

	c.Func(native.VoidType, "Begin", "Begins the definition of vertex attributes of a sequence of primitives.",
		decl.In(GLenum, "mode", "the primitive mode").WithLinks("POINTS LINES TRIANGLES"),
	).With(glbinding.Deprecated)

	c.Func(native.VoidType, "End", "Ends the definition of vertex attributes of a sequence of primitives.").
		With(glbinding.Deprecated)

	c.Func(native.VoidType, "Vertex3fv", "Pointer version of Vertex3f.",
		decl.In(native.Const(GLfloatP), "coords", "the vertex coordinates", decl.CheckN(3)),
	).With(glbinding.Deprecated)

	c.Func(native.VoidType, "GetIntegerv", "Returns the integer value or values of a selected parameter.",
		pname,
		decl.Out(GLintP, "params", "the parameter values", decl.CheckN(1), decl.ReturnParam),
	)

	c.Func(native.VoidType, "GenTextures", "Returns n previously unused texture names.",
		decl.In(GLsizei, "n", "the number of names to generate", decl.AutoSizeOf("textures")),
		decl.Out(GLuintP, "textures", "the buffer that receives the names", decl.ReturnParam),
	)

	c.Func(native.VoidType, "DeleteTextures", "Deletes texture objects.",
		decl.In(GLsizei, "n", "the number of textures to delete", decl.AutoSizeOf("textures")),
		decl.In(native.Const(GLuintP), "textures", "the textures to delete", decl.SingleValueOf("texture")),
	)

	c.Func(native.VoidType, "DrawElements", "Renders primitives from array data.",
		decl.In(GLenum, "mode", "the primitive mode").WithLinks("POINTS LINES TRIANGLES"),
		decl.In(GLsizei, "count", "the number of elements to render", decl.AutoSizeOf("indices")),
		decl.In(GLenum, "type", "the index type", decl.AutoTypeOf("indices",
			decl.AutoTypeToken{ClassName: "GL11", Name: "GL_UNSIGNED_BYTE", Mapping: native.DataByte},
			decl.AutoTypeToken{ClassName: "GL11", Name: "GL_UNSIGNED_SHORT", Mapping: native.DataShort},
			decl.AutoTypeToken{ClassName: "GL11", Name: "GL_UNSIGNED_INT", Mapping: native.DataInt},
		)),
		decl.In(native.Const(GLvoidP), "indices", "the index data", glbinding.ElementArrayBuffer),
	)

	c.Func(native.VoidType, "ReadPixels", "Reads a block of pixels from the frame buffer.",
		decl.In(GLint, "x", "the left pixel coordinate"),
		decl.In(GLint, "y", "the lower pixel coordinate"),
		decl.In(GLsizei, "width", "the width of the pixel rectangle"),
		decl.In(GLsizei, "height", "the height of the pixel rectangle"),
		decl.In(GLenum, "format", "the pixel format"),
		decl.In(GLenum, "type", "the pixel type"),
		decl.Out(GLvoidP, "pixels", "receives the pixel data", glbinding.PixelPackBuffer,
			decl.MultiTypeOf(native.DataShort, native.DataInt, native.DataFloat)),
	)

	return c
}

func arbVertexArrayObject(reg *decl.Registry) *decl.NativeClass {
	c := reg.Class(Package, "ARBVertexArrayObject",
		decl.WithTemplate("ARB_vertex_array_object"),
		decl.WithPrefix("GL_", "gl"),
		decl.WithBinding(glbinding.Name),
		decl.WithDoc("Native bindings to the ARB_vertex_array_object extension."),
	)

	c.IntConstant("Accepted by the pname parameter of GetIntegerv.",
		decl.Hex("VERTEX_ARRAY_BINDING", 0x85B5),
	)

	c.Func(native.VoidType, "BindVertexArray", "Binds a vertex array object.",
		decl.In(GLuint, "array", "the vertex array to bind"),
	)

	c.Func(native.VoidType, "GenVertexArrays", "Generates vertex array object names.",
		decl.In(GLsizei, "n", "the number of names to generate", decl.AutoSizeOf("arrays")),
		decl.Out(GLuintP, "arrays", "the buffer that receives the names", decl.ReturnParam),
	)

	c.Func(native.VoidType, "DeleteVertexArrays", "Deletes vertex array objects.",
		decl.In(GLsizei, "n", "the number of arrays to delete", decl.AutoSizeOf("arrays")),
		decl.In(native.Const(GLuintP), "arrays", "the arrays to delete", decl.SingleValueOf("array")),
	)

	c.Func(GLboolean, "IsVertexArray", "Determines if a name corresponds to a vertex array object.",
		decl.In(GLuint, "array", "a value that may be the name of a vertex array object"),
	)

	return c
}
