package outwriter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// stagedFile is a fully written temporary file waiting to be renamed into place.
type stagedFile struct {
	temp  string
	final string
}

// stager writes files under temporary names in one directory so a batch can be
// published together or not at all.
type stager struct {
	dir   string
	files []stagedFile
}

func newStager(dir string) *stager {
	return &stager{dir: dir}
}

// stage writes one file under a temporary name next to its final name.
func (s *stager) stage(name string, writer func(io.Writer) error) error {
	file, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	s.files = append(s.files, stagedFile{temp: file.Name(), final: filepath.Join(s.dir, name)})

	if err := writer(file); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}

// commit renames every staged file into place. If any rename fails, files that
// were already published are removed along with the remaining temporaries.
func (s *stager) commit() ([]string, error) {
	paths := make([]string, 0, len(s.files))
	for i, f := range s.files {
		if err := os.Rename(f.temp, f.final); err != nil {
			for _, done := range paths {
				_ = os.Remove(done)
			}
			for _, rest := range s.files[i:] {
				_ = os.Remove(rest.temp)
			}
			return nil, fmt.Errorf("failed to publish %s: %w", filepath.Base(f.final), err)
		}
		paths = append(paths, f.final)
	}
	s.files = nil
	return paths, nil
}

// discard removes every staged temporary file.
func (s *stager) discard() {
	for _, f := range s.files {
		if err := os.Remove(f.temp); err != nil && !errors.Is(err, os.ErrNotExist) {
			_, _ = fmt.Fprintf(os.Stderr, "Warn cleanup: %v\n", err)
		}
	}
	s.files = nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// createFormatters creates the formatter closures for scores and weights.
// NaN formats as the empty string.
func createFormatters(scorePrecision, weightPrecision int) (fmtScore, fmtWeight func(float64) string) {
	numFmt := "%.*f"
	fmtScore = func(v float64) string {
		if math.IsNaN(v) {
			return ""
		}
		return fmt.Sprintf(numFmt, scorePrecision, v)
	}
	fmtWeight = func(v float64) string {
		if math.IsNaN(v) {
			return ""
		}
		return fmt.Sprintf(numFmt, weightPrecision, v)
	}
	return fmtScore, fmtWeight
}
