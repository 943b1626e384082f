package gen

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/teranos/nativegen/emit"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/logger"
)

// Sink receives the files of a completed run.
type Sink interface {
	Write(files []emit.OutputFile) error
}

// DirSink writes host sources under JavaDir and native sources under NativeDir.
type DirSink struct {
	JavaDir   string
	NativeDir string
}

// Dir returns the output directory of root.
func (s DirSink) Dir(root emit.Root) string {
	if root == emit.RootNative {
		return s.NativeDir
	}
	return s.JavaDir
}

// Path returns the file system path of f.
func (s DirSink) Path(f emit.OutputFile) string {
	return filepath.Join(s.Dir(f.Root), filepath.FromSlash(f.Path))
}

// Write writes every file, creating parent directories as needed.
func (s DirSink) Write(files []emit.OutputFile) error {
	for _, f := range files {
		path := s.Path(f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory for %s", path)
		}
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		logger.Logger.Debugw("Wrote file", logger.FieldPath, path, logger.FieldBytes, len(f.Content))
	}
	logger.Logger.Infow("Wrote generated files", logger.FieldFiles, len(files), "java_dir", s.JavaDir, "native_dir", s.NativeDir)
	return nil
}

// MemorySink keeps files in memory, keyed by "<root>/<path>".
type MemorySink struct {
	mu    sync.Mutex
	Files map[string]string
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{Files: map[string]string{}}
}

func (s *MemorySink) Write(files []emit.OutputFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range files {
		s.Files[Key(f)] = f.Content
	}
	return nil
}

// Key returns the root-qualified path of f.
func Key(f emit.OutputFile) string {
	return f.Root.String() + "/" + f.Path
}
