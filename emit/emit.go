// Package emit renders resolved native classes into source files.
//
// # Architecture
//
// Emission is a two-layer design:
//  1. Language-agnostic planning (NewUnit) resolves the overload family of
//     every function of a validated class.
//  2. Language-specific generators (java/, jni/) format the Unit.
//
// Generators are pure: the same Unit always renders the same files, which
// lets the up-to-date check compare generated output with files on disk.
package emit

import (
	"sort"
	"strings"

	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/transform"
)

// TimestampPrefix starts the generation timestamp line of file headers.
// Up-to-date checks ignore lines with this prefix.
const TimestampPrefix = " * Generated: "

// Generator defines the interface for target language generators.
type Generator interface {
	// Language returns the target name (e.g., "java", "jni")
	Language() string

	// FileExtension returns the extension of generated files (e.g., "java", "c")
	FileExtension() string

	// Generate renders the files of one class. A class may produce no file
	// for a target, e.g. a class without native shims.
	Generate(u *Unit) ([]OutputFile, error)
}

// Root selects the output tree of a generated file.
type Root int

const (
	RootJava Root = iota
	RootNative
)

func (r Root) String() string {
	if r == RootNative {
		return "native"
	}
	return "java"
}

// OutputFile is one generated file. Path is relative to its Root.
type OutputFile struct {
	Root    Root
	Path    string
	Content string
}

// Options controls rendering details shared by every generator.
type Options struct {
	// LicenseHeader is copied into the header comment of every file.
	LicenseHeader string
	// Timestamp is written as the generation timestamp line when not empty.
	Timestamp string
	// DebugChecks keeps checks that only run in debug builds.
	DebugChecks bool
	// Headers enables the native header with one typedef per function.
	Headers bool
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{DebugChecks: true}
}

// Function is a function with its resolved overloads, base first.
type Function struct {
	Func      *decl.Function
	Overloads []transform.Overload
}

// Unit is one class ready for emission.
type Unit struct {
	Class     *decl.NativeClass
	Binding   transform.Binding
	Functions []Function
	Options   Options
}

// NewUnit resolves every function of a validated class.
func NewUnit(c *decl.NativeClass, b transform.Binding, opts Options) (*Unit, error) {
	if b == nil {
		b = transform.NoBinding
	}
	u := &Unit{Class: c, Binding: b, Options: opts, Functions: make([]Function, 0, len(c.Functions))}
	for _, fn := range c.Functions {
		overloads, err := transform.Resolve(fn, b)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve %s", c.ClassName)
		}
		u.Functions = append(u.Functions, Function{Func: fn, Overloads: overloads})
	}
	return u, nil
}

// OverloadCount returns the number of host methods derived from the class.
func (u *Unit) OverloadCount() int {
	n := 0
	for _, f := range u.Functions {
		n += len(f.Overloads)
	}
	return n
}

// HasCustomJNI reports whether any function of the unit needs a native shim.
func (u *Unit) HasCustomJNI() bool {
	for _, f := range u.Functions {
		if f.Func.HasCustomJNI() {
			return true
		}
	}
	return false
}

// JavaPath returns the source path of the host class of c.
func JavaPath(c *decl.NativeClass) string {
	return PackagePath(c.Package) + "/" + c.ClassName + ".java"
}

// NativePath returns the path of a native file of c with the given extension.
func NativePath(c *decl.NativeClass, ext string) string {
	return PackagePath(c.Package) + "/" + c.ClassName + "." + ext
}

// PackagePath converts a dotted package name to a directory path.
func PackagePath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}

// JNIName escapes an identifier for use in a JNI symbol name.
func JNIName(name string) string {
	return strings.ReplaceAll(name, "_", "_1")
}

// JNIClassName returns the class part of the JNI symbols of c, e.g.
// "org_lwjgl_egl_EGL10".
func JNIClassName(c *decl.NativeClass) string {
	return strings.ReplaceAll(JNIName(c.Package+"."+c.ClassName), ".", "_")
}

// Header renders the header comment shared by generated files.
func Header(opts Options) string {
	var sb strings.Builder
	sb.WriteString("/*\n")
	for _, line := range strings.Split(strings.TrimRight(opts.LicenseHeader, "\n"), "\n") {
		if line == "" && opts.LicenseHeader == "" {
			continue
		}
		sb.WriteString(strings.TrimRight(" * "+line, " ") + "\n")
	}
	sb.WriteString(" * MACHINE GENERATED FILE, DO NOT EDIT\n")
	if opts.Timestamp != "" {
		sb.WriteString(TimestampPrefix + opts.Timestamp + "\n")
	}
	sb.WriteString(" */\n")
	return sb.String()
}

// SortFiles orders files by root and path.
func SortFiles(files []OutputFile) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].Root != files[j].Root {
			return files[i].Root < files[j].Root
		}
		return files[i].Path < files[j].Path
	})
}
