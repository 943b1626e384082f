package gen

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/teranos/nativegen/emit"
	"github.com/teranos/nativegen/errors"
)

// CheckResult lists the generated files that do not match the disk.
type CheckResult struct {
	// Stale files exist with different content.
	Stale []string
	// Missing files were generated but are not on disk.
	Missing []string
}

// UpToDate reports whether every generated file matches the disk.
func (r *CheckResult) UpToDate() bool {
	return len(r.Stale) == 0 && len(r.Missing) == 0
}

// Err returns an ErrStale error naming the differing files, or nil.
func (r *CheckResult) Err() error {
	if r.UpToDate() {
		return nil
	}
	return errors.WithHint(
		errors.Wrapf(errors.ErrStale, "%d stale and %d missing generated files", len(r.Stale), len(r.Missing)),
		"run 'nativegen generate' to regenerate")
}

// Compare checks files against the directories of sink. Generation
// timestamp lines are ignored.
func Compare(files []emit.OutputFile, sink DirSink) (*CheckResult, error) {
	res := &CheckResult{}
	for _, f := range files {
		path := sink.Path(f)
		existing, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			res.Missing = append(res.Missing, Key(f))
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
		if filterTimestamp([]byte(f.Content)) != filterTimestamp(existing) {
			res.Stale = append(res.Stale, Key(f))
		}
	}
	return res, nil
}

// filterTimestamp drops the generation timestamp line from content.
func filterTimestamp(content []byte) string {
	var sb strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, emit.TimestampPrefix) {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		// Unreadable content never compares equal.
		return "\x00" + err.Error()
	}
	return sb.String()
}
