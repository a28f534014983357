package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	k8syaml "sigs.k8s.io/yaml"
)

// Writer serializes a value to an output destination.
type Writer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is implemented by writers that own their destination.
type Closer interface {
	Close() error
}

// FormatWriter writes values in a fixed Format to an io.Writer.
// The YAML path goes through sigs.k8s.io/yaml so Kubernetes-shaped payloads
// (json-tagged structs, unstructured maps) keep their wire field names.
type FormatWriter struct {
	format Format
	out    io.Writer
	file   *os.File // non-nil when the writer owns a file
	closed bool
}

// NewWriter creates a FormatWriter targeting out. An unknown format falls
// back to JSON.
func NewWriter(format Format, out io.Writer) *FormatWriter {
	if format.IsUnknown() {
		format = FormatJSON
	}
	if out == nil {
		out = os.Stdout
	}
	return &FormatWriter{format: format, out: out}
}

// NewStdoutWriter creates a FormatWriter targeting stdout.
func NewStdoutWriter(format Format) *FormatWriter {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a writer for the given path. A blank path or
// "-" targets stdout; anything else creates (or truncates) the file.
func NewFileWriterOrStdout(format Format, path string) (Writer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	w := NewWriter(format, f)
	w.file = f
	return w, nil
}

// Serialize writes data in the writer's format.
func (w *FormatWriter) Serialize(ctx context.Context, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.format {
	case FormatYAML:
		out, err := k8syaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		_, err = w.out.Write(out)
		return err
	case FormatTable:
		return w.writeTable(data)
	default:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		_, err = fmt.Fprintln(w.out, string(out))
		return err
	}
}

// Close releases the destination when the writer owns it. Closing a stdout
// writer, or closing twice, is a no-op.
func (w *FormatWriter) Close() error {
	if w.file == nil || w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// writeTable renders data as flattened FIELD/VALUE rows. Nesting is encoded
// in the field path: slice indices as [i], map keys joined with dots.
func (w *FormatWriter) writeTable(data any) error {
	// Round-trip through JSON to get a uniform map/slice/scalar tree.
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to flatten for table output: %w", err)
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("failed to flatten for table output: %w", err)
	}

	var rows [][2]string
	flatten("", tree, &rows)

	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

func flatten(prefix string, v any, rows *[][2]string) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := k
			if prefix != "" {
				child = prefix + "." + k
			}
			flatten(child, t[k], rows)
		}
	case []any:
		for i, e := range t {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), e, rows)
		}
	default:
		*rows = append(*rows, [2]string{prefix, fmt.Sprintf("%v", t)})
	}
}
