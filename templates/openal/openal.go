// Package openal declares the OpenAL 1.0 core and the AL_SOFT_buffer_samples
// extension. Both load their function pointers through the AL binding.
package openal

import (
	"github.com/teranos/nativegen/binding"
	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/native"
)

const (
	Package = "org.lwjgl.openal"
	// Binding is the binding group of every OpenAL class.
	Binding = "AL"
)

// OpenAL types
var (
	ALboolean = native.Primitive("ALboolean", native.Boolean)
	ALint     = native.Integer("ALint", native.Int, false)
	ALuint    = native.Integer("ALuint", native.Int, true)
	ALsizei   = native.Integer("ALsizei", native.Int, false)
	ALenum    = native.Integer("ALenum", native.Int, false)
	ALfloat   = native.Primitive("ALfloat", native.Float)
	ALvoidP   = native.Untyped("ALvoid")
	ALcharP   = native.Const(native.CharSequence("ALchar", native.UTF8))

	ALintP   = native.PointerTo(ALint)
	ALuintP  = native.PointerTo(ALuint)
	ALfloatP = native.PointerTo(ALfloat)
)

// NewBinding creates the OpenAL function pointer binding.
func NewBinding() *binding.Provider {
	return binding.NewProvider(Binding, "AL", "ALCapabilities", Package)
}

// Register declares AL10 and SOFTBufferSamples in reg and registers the AL binding.
func Register(reg *decl.Registry) []*decl.NativeClass {
	binding.Register(NewBinding())
	return []*decl.NativeClass{al10(reg), softBufferSamples(reg)}
}

func al10(reg *decl.Registry) *decl.NativeClass {
	c := reg.Class(Package, "AL10",
		decl.WithTemplate("OpenAL10"),
		decl.WithPrefix("AL_", "al"),
		decl.WithBinding(Binding),
		decl.WithNativeImports("OpenAL.h"),
		decl.WithDoc("Native bindings to the OpenAL 1.0 specification."),
	)

	c.IntConstant("Error conditions.",
		decl.C("NO_ERROR", "0"),
		decl.Hex("INVALID_NAME", 0xA001),
		decl.Hex("INVALID_ENUM", 0xA002),
		decl.Hex("INVALID_VALUE", 0xA003),
		decl.Hex("INVALID_OPERATION", 0xA004),
		decl.Hex("OUT_OF_MEMORY", 0xA005),
	)
	c.IntConstant("Sound sample formats.",
		decl.Hex("FORMAT_MONO8", 0x1100),
		decl.Hex("FORMAT_MONO16", 0x1101),
		decl.Hex("FORMAT_STEREO8", 0x1102),
		decl.Hex("FORMAT_STEREO16", 0x1103),
	)
	c.IntConstant("Source parameters.",
		decl.Hex("BUFFER", 0x1009),
		decl.Hex("GAIN", 0x100A),
		decl.Hex("SOURCE_STATE", 0x1010),
		decl.Hex("LOOPING", 0x1007),
	)
	c.IntConstant("String queries.",
		decl.Hex("VENDOR", 0xB001),
		decl.Hex("VERSION", 0xB002),
		decl.Hex("RENDERER", 0xB003),
		decl.Hex("EXTENSIONS", 0xB004),
	)

	source := decl.In(ALuint, "source", "the source to modify")
	param := decl.In(ALenum, "param", "the parameter to modify")

	c.Func(ALenum, "GetError", "Obtains error information.")

	c.Func(ALcharP, "GetString", "Retrieves an OpenAL string property.",
		decl.In(ALenum, "paramName", "the property to query").WithLinks("VENDOR VERSION RENDERER EXTENSIONS"),
	)

	c.Func(ALboolean, "IsExtensionPresent", "Verifies that a given extension is available.",
		decl.In(ALcharP, "extName", "the extension name"),
	)

	c.Func(native.VoidType, "GenSources", "Requests a number of source names.",
		decl.In(ALsizei, "n", "the number of source names to generate", decl.AutoSizeOf("srcNames")),
		decl.Out(ALuintP, "srcNames", "the buffer that will receive the source names", decl.ReturnParam),
	)

	c.Func(native.VoidType, "DeleteSources", "Requests the deletion of a number of sources.",
		decl.In(ALsizei, "n", "the number of sources to delete", decl.AutoSizeOf("sources")),
		decl.In(ALuintP, "sources", "the sources to delete", decl.SingleValueOf("source")),
	)

	c.Func(native.VoidType, "Sourcei", "Sets an integer property of a source.",
		source, param,
		decl.In(ALint, "value", "the parameter value"),
	)

	c.Func(native.VoidType, "Sourcef", "Sets the float value of a source parameter.",
		source, param,
		decl.In(ALfloat, "value", "the parameter value"),
	)

	c.Func(native.VoidType, "GetSourcei", "Returns the integer value of the specified source parameter.",
		source, param,
		decl.Out(ALintP, "value", "the parameter value", decl.CheckN(1), decl.ReturnParam),
	)

	c.Func(native.VoidType, "GetSourcefv", "Returns the float values of the specified source parameter.",
		source, param,
		decl.Out(ALfloatP, "values", "the parameter values", decl.CheckN(1)),
	)

	c.Func(native.VoidType, "SourcePlay", "Sets the source state to AL_PLAYING.", source)

	c.Func(native.VoidType, "BufferData", "Sets the sample data of the specified buffer.",
		decl.In(ALuint, "bufferName", "the buffer to modify"),
		decl.In(ALenum, "format", "the data format").WithLinks("FORMAT_MONO8 FORMAT_MONO16 FORMAT_STEREO8 FORMAT_STEREO16"),
		decl.In(native.Const(ALvoidP), "data", "the sample data",
			decl.MultiTypeOf(native.DataShort, native.DataInt, native.DataFloat)),
		decl.In(ALsizei, "size", "the data buffer size, in bytes", decl.AutoSizeOf("data")),
		decl.In(ALsizei, "frequency", "the data frequency"),
	)

	return c
}

func softBufferSamples(reg *decl.Registry) *decl.NativeClass {
	c := reg.Class(Package, "SOFTBufferSamples",
		decl.WithTemplate("AL_SOFT_buffer_samples"),
		decl.WithPrefix("AL_", "al"),
		decl.WithPostfix("SOFT"),
		decl.WithBinding(Binding),
		decl.WithDoc("Native bindings to the AL_SOFT_buffer_samples extension."),
	)

	c.IntConstant("Channel configurations.",
		decl.Hex("MONO_SOFT", 0x1500),
		decl.Hex("STEREO_SOFT", 0x1501),
	)
	c.IntConstant("Sample types.",
		decl.Hex("BYTE_SOFT", 0x1400),
		decl.Hex("SHORT_SOFT", 0x1402),
		decl.Hex("FLOAT_SOFT", 0x1406),
	)

	c.Func(ALboolean, "IsBufferFormatSupportedSOFT", "Queries whether a storage format is supported.",
		decl.In(ALenum, "format", "the storage format"),
	)

	c.Func(native.VoidType, "BufferSamplesSOFT", "Fills a buffer with samples of the given format.",
		decl.In(ALuint, "buffer", "the buffer"),
		decl.In(ALuint, "samplerate", "the sample rate"),
		decl.In(ALenum, "internalformat", "the storage format"),
		decl.In(ALsizei, "samples", "the number of sample frames"),
		decl.In(ALenum, "channels", "the channel configuration").WithLinks("MONO_SOFT STEREO_SOFT"),
		decl.In(ALenum, "type", "the sample type").WithLinks("BYTE_SOFT SHORT_SOFT FLOAT_SOFT"),
		decl.In(native.Const(ALvoidP), "data", "the sample data", decl.DebugCheck("samples")),
	)

	c.Func(native.VoidType, "GetBufferSamplesSOFT", "Reads samples from a buffer.",
		decl.In(ALuint, "buffer", "the buffer"),
		decl.In(ALsizei, "offset", "the first sample frame"),
		decl.In(ALsizei, "samples", "the number of sample frames"),
		decl.In(ALenum, "channels", "the channel configuration"),
		decl.In(ALenum, "type", "the sample type"),
		decl.Out(ALvoidP, "data", "receives the samples"),
	).With(decl.IgnoreMissing)

	return c
}
