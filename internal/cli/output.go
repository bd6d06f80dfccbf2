package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/pipeline"
)

// stdoutPath selects standard output for --output.
const stdoutPath = "-"

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	if path == stdoutPath {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

// basePath derives the output path without extension. A known format
// extension on output is stripped; an empty output falls back to def.
func basePath(output, def string) string {
	if output == "" {
		return def
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to its destination. A single format may go
// to an explicit file or stdout; several formats share a base path.
func outputPaths(formats []string, output, def string) (map[string]string, error) {
	if output != "" && output != stdoutPath {
		if err := errors.ValidateOutputPath(output); err != nil {
			return nil, err
		}
	}
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths, nil
	}
	if output == stdoutPath {
		return nil, errors.New(errors.ErrCodeInvalidPath, "stdout output needs exactly one format, got %d", len(formats))
	}
	base := basePath(output, def)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths, nil
}

// writeArtifacts writes every artifact to its path in format order and
// returns the paths written (stdout excluded).
func writeArtifacts(artifacts map[string][]byte, formats []string, paths map[string]string) ([]string, error) {
	var written []string
	for _, f := range formats {
		path := paths[f]
		out, err := openOutput(path)
		if err != nil {
			return written, err
		}
		_, werr := out.Write(artifacts[f])
		cerr := out.Close()
		if werr != nil {
			return written, werr
		}
		if cerr != nil {
			return written, cerr
		}
		if path != stdoutPath {
			written = append(written, path)
		}
	}
	return written, nil
}

// defaultName is the file stem for a generated layout.
func defaultName(kind string, w, h int, seed uint64) string {
	return fmt.Sprintf("barrier-%s-%dx%d-s%d", kind, w, h, seed)
}
