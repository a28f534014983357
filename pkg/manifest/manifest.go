package manifest

import (
	"bytes"
	"errors"
	"io"

	mgerrors "github.com/NVIDIA/mustgather/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	k8syaml "sigs.k8s.io/yaml"
)

// Extension is the file extension recognized by the loader. Bundle
// directories may contain other files (logs, event filters); those are not
// manifests and are skipped by callers.
const Extension = ".yaml"

// Manifest is a single resource instance extracted from a bundle.
//
// Raw holds the original file content when the source file was dedicated to
// this one resource. It is nil when the resource was sliced out of a larger
// list document, since re-serializing a sub-element back to its original text
// is not attempted.
type Manifest struct {
	// SourcePath is the file the resource was read from.
	SourcePath string

	// Raw is the verbatim file content, or nil for list-document slices.
	Raw []byte

	// Object is the parsed document.
	Object *unstructured.Unstructured
}

// HasRaw reports whether the original file text is available.
func (m Manifest) HasRaw() bool {
	return m.Raw != nil
}

// Name returns metadata.name, or the empty string when absent.
func (m Manifest) Name() string {
	return m.Object.GetName()
}

// Namespace returns metadata.namespace, or the empty string when absent.
func (m Manifest) Namespace() string {
	return m.Object.GetNamespace()
}

// Kind returns the document's kind field.
func (m Manifest) Kind() string {
	return m.Object.GetKind()
}

// GroupVersionKind returns the parsed apiVersion/kind pair.
func (m Manifest) GroupVersionKind() schema.GroupVersionKind {
	return m.Object.GroupVersionKind()
}

// Decode parses data into an ordered sequence of documents. A single file may
// contain multiple documents separated by "---"; empty documents are dropped.
// Values are normalized through a JSON round trip so the usual unstructured
// accessors (NestedString, NestedSlice, NestedInt64) work on the result.
func Decode(data []byte) ([]*unstructured.Unstructured, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var docs []*unstructured.Unstructured
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, mgerrors.Wrap(mgerrors.ErrCodeParse, err, "malformed YAML")
		}
		if node.Kind == 0 || isNullDocument(&node) {
			continue
		}

		single, err := yaml.Marshal(&node)
		if err != nil {
			return nil, mgerrors.Wrap(mgerrors.ErrCodeParse, err, "re-encoding document")
		}
		var obj map[string]interface{}
		if err := k8syaml.Unmarshal(single, &obj); err != nil {
			return nil, mgerrors.Wrap(mgerrors.ErrCodeParse, err, "document is not a mapping")
		}
		docs = append(docs, &unstructured.Unstructured{Object: obj})
	}
	return docs, nil
}

// DecodeSingle parses data and requires exactly one document.
func DecodeSingle(data []byte) (*unstructured.Unstructured, error) {
	docs, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, mgerrors.Newf(mgerrors.ErrCodeMultiDocument,
			"expected exactly one document, found %d", len(docs))
	}
	return docs[0], nil
}

func isNullDocument(node *yaml.Node) bool {
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return node.Kind == yaml.DocumentNode
	}
	c := node.Content[0]
	return c.Kind == yaml.ScalarNode && c.Tag == "!!null"
}
