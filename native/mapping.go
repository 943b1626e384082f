package native

// Mapping describes how a native type is projected into the host language
// and into the low-level call signature. The set of mappings is closed;
// compare mappings by identity.
type Mapping struct {
	name         string
	javaType     string // type used in public Java method signatures
	nativeMethod string // type used in native and unsafe method signatures
	jniType      string // JNI function type
	jniSig       string // letter used in callXXX dispatch names
	bytes        int    // width of a primitive, or of one element for data pointers
	shift        string // byte shift expression for data pointers ("" for none)
	primitive    string // element primitive name for data pointers
	pointer      bool
}

// Name returns the mapping identifier, e.g. "DATA_INT".
func (m *Mapping) Name() string { return m.name }

// JavaType returns the type used in public host-language signatures.
func (m *Mapping) JavaType() string { return m.javaType }

// NativeMethodType returns the type used in native and unsafe method signatures.
func (m *Mapping) NativeMethodType() string { return m.nativeMethod }

// JNIType returns the JNI function type (jint, jlong, ...).
func (m *Mapping) JNIType() string { return m.jniType }

// JNISignature returns the dispatch letter (I, J, P, ...).
func (m *Mapping) JNISignature() string { return m.jniSig }

// Bytes returns the primitive width, or the element width of a data pointer.
func (m *Mapping) Bytes() int { return m.bytes }

// IsPointer reports whether the mapping belongs to a pointer type.
func (m *Mapping) IsPointer() bool { return m.pointer }

// ByteShift returns the shift expression converting element counts to byte
// counts. Empty for non-data mappings.
func (m *Mapping) ByteShift() string { return m.shift }

// IsMultiByte reports whether one element of a data pointer spans more than one byte.
func (m *Mapping) IsMultiByte() bool {
	return m.pointer && m.shift != "" && m.shift != "0"
}

// IsPointerSize reports whether the mapping is an integer pointer that can
// hold a length (int* or size_t*).
func (m *Mapping) IsPointerSize() bool {
	return m == DataInt || m == DataPointer
}

// PrimitiveName returns the primitive element name of a data pointer
// ("int", "float", "pointer", ...). Empty for mappings without one.
func (m *Mapping) PrimitiveName() string { return m.primitive }

func (m *Mapping) String() string { return m.name }

// Void and primitive mappings
var (
	Void    = &Mapping{name: "VOID", javaType: "void", nativeMethod: "void", jniType: "void", jniSig: "V"}
	Boolean = &Mapping{name: "BOOLEAN", javaType: "boolean", nativeMethod: "boolean", jniType: "jboolean", jniSig: "Z", bytes: 1}
	Byte    = &Mapping{name: "BYTE", javaType: "byte", nativeMethod: "byte", jniType: "jbyte", jniSig: "B", bytes: 1}
	Short   = &Mapping{name: "SHORT", javaType: "short", nativeMethod: "short", jniType: "jshort", jniSig: "S", bytes: 2}
	Int     = &Mapping{name: "INT", javaType: "int", nativeMethod: "int", jniType: "jint", jniSig: "I", bytes: 4}
	Long    = &Mapping{name: "LONG", javaType: "long", nativeMethod: "long", jniType: "jlong", jniSig: "J", bytes: 8}
	Pointer = &Mapping{name: "POINTER", javaType: "long", nativeMethod: "long", jniType: "jlong", jniSig: "P", bytes: 8}
	Float   = &Mapping{name: "FLOAT", javaType: "float", nativeMethod: "float", jniType: "jfloat", jniSig: "F", bytes: 4}
	Double  = &Mapping{name: "DOUBLE", javaType: "double", nativeMethod: "double", jniType: "jdouble", jniSig: "D", bytes: 8}
)

// Pointer mappings
var (
	OpaquePointer = ptr("OPAQUE_POINTER", "long", 8, "", "")
	Data          = ptr("DATA", "ByteBuffer", 1, "0", "byte")
	DataBoolean   = ptr("DATA_BOOLEAN", "ByteBuffer", 1, "0", "boolean")
	DataByte      = ptr("DATA_BYTE", "ByteBuffer", 1, "0", "byte")
	DataShort     = ptr("DATA_SHORT", "ShortBuffer", 2, "1", "short")
	DataInt       = ptr("DATA_INT", "IntBuffer", 4, "2", "int")
	DataLong      = ptr("DATA_LONG", "LongBuffer", 8, "3", "long")
	DataPointer   = ptr("DATA_POINTER", "PointerBuffer", 8, "POINTER_SHIFT", "pointer")
	DataFloat     = ptr("DATA_FLOAT", "FloatBuffer", 4, "2", "float")
	DataDouble    = ptr("DATA_DOUBLE", "DoubleBuffer", 8, "3", "double")
)

func ptr(name, javaType string, bytes int, shift, primitive string) *Mapping {
	return &Mapping{
		name:         name,
		javaType:     javaType,
		nativeMethod: "long",
		jniType:      "jlong",
		jniSig:       "P",
		bytes:        bytes,
		shift:        shift,
		primitive:    primitive,
		pointer:      true,
	}
}

// dataMappings maps a primitive mapping to the data pointer mapping of a
// buffer of such elements.
var dataMappings = map[*Mapping]*Mapping{
	Boolean: DataBoolean,
	Byte:    DataByte,
	Short:   DataShort,
	Int:     DataInt,
	Long:    DataLong,
	Pointer: DataPointer,
	Float:   DataFloat,
	Double:  DataDouble,
}

// DataMappingOf returns the data pointer mapping for buffers of the given
// primitive mapping, or Data if there is none.
func DataMappingOf(m *Mapping) *Mapping {
	if d, ok := dataMappings[m]; ok {
		return d
	}
	return Data
}

// CharMapping describes the encoding of a character sequence.
type CharMapping struct {
	name    string
	bytes   int
	charset string
}

func (c *CharMapping) Name() string { return c.name }

// Bytes returns the width of one code unit.
func (c *CharMapping) Bytes() int { return c.bytes }

// Charset returns the charset suffix used by encode and decode helpers.
func (c *CharMapping) Charset() string { return c.charset }

var (
	ASCII = &CharMapping{name: "ASCII", bytes: 1, charset: "ASCII"}
	UTF8  = &CharMapping{name: "UTF8", bytes: 1, charset: "UTF8"}
	UTF16 = &CharMapping{name: "UTF16", bytes: 2, charset: "UTF16"}
)
