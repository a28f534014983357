package resource

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/NVIDIA/mustgather/pkg/bundle"
	mgerrors "github.com/NVIDIA/mustgather/pkg/errors"
	"github.com/NVIDIA/mustgather/pkg/manifest"
)

// Layout labels for metrics.
const (
	layoutDirectory = "directory"
	layoutListFile  = "list-file"
	layoutNone      = "none"
)

// Extractor locates and parses the on-disk representation of a resource type
// within a bundle scope. It holds no state between calls; every call
// re-reads the filesystem.
type Extractor struct {
	log *slog.Logger
}

// NewExtractor creates an Extractor logging through the default slog logger.
func NewExtractor() *Extractor {
	return &Extractor{log: slog.Default()}
}

// NewExtractorWithLogger creates an Extractor with an explicit logger.
func NewExtractorWithLogger(log *slog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract returns all instances of the described resource type within the
// scope, in a deterministic order.
//
// Two on-disk layouts are probed, in order:
//
//  1. <scope>/<group>/<plural>/ as a directory: one YAML file per instance.
//  2. <scope>/<group>/<plural>.yaml as a file: a single list-type document
//     whose top-level "items" array embeds the instances.
//
// When neither applies the call fails with RESOURCES_NOT_FOUND naming the
// probed directory. Extraction is all or nothing: any read or parse failure
// aborts the whole call with no partial results.
func (x *Extractor) Extract(scope bundle.Scope, d Descriptor) ([]manifest.Manifest, error) {
	start := time.Now()
	manifests, layout, err := x.extract(scope, d)
	status := "success"
	if err != nil {
		status = "error"
	}
	extractTotal.WithLabelValues(layout, status).Inc()
	extractDuration.Observe(time.Since(start).Seconds())
	return manifests, err
}

func (x *Extractor) extract(scope bundle.Scope, d Descriptor) ([]manifest.Manifest, string, error) {
	plural := PluralName(d)
	dir := filepath.Join(scope.Path(), d.Group(), plural)

	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		x.log.Debug("extracting from per-instance directory",
			slog.String("kind", d.Kind()), slog.String("dir", dir))
		manifests, err := x.readDirectory(dir)
		return manifests, layoutDirectory, err
	}

	// Fall back to a single list-type document next to where the directory
	// would have been. The file name is derived from the plural kind alone;
	// the group component stays in the parent path.
	listFile := filepath.Join(filepath.Dir(dir), plural+manifest.Extension)
	if info, err := os.Stat(listFile); err == nil && info.Mode().IsRegular() {
		x.log.Debug("extracting from list-type document",
			slog.String("kind", d.Kind()), slog.String("file", listFile))
		manifests, err := x.readListFile(listFile)
		return manifests, layoutListFile, err
	}

	return nil, layoutNone, mgerrors.Newf(mgerrors.ErrCodeNotFound,
		"no suitable manifests for kind %q", d.Kind()).WithPath(dir)
}

// readDirectory handles the one-file-per-instance layout. Entries that are
// not regular files with the manifest extension are skipped, not errors:
// bundle directories routinely mix in logs and other artifacts.
func (x *Extractor) readDirectory(dir string) ([]manifest.Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, mgerrors.Wrap(mgerrors.ErrCodeRead, err, "listing resource directory").WithPath(dir)
	}

	var manifests []manifest.Manifest
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != manifest.Extension {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, mgerrors.Wrap(mgerrors.ErrCodeRead, err, "reading manifest").WithPath(path)
		}
		obj, err := manifest.DecodeSingle(data)
		if err != nil {
			return nil, attachPath(err, path)
		}
		manifests = append(manifests, manifest.Manifest{
			SourcePath: path,
			Raw:        data,
			Object:     obj,
		})
	}
	return manifests, nil
}

// readListFile handles the list-type document layout: one document with a
// top-level items array, one manifest per element. Raw text is left absent
// on the produced manifests because slicing cannot reconstruct the original
// text of an embedded item.
func (x *Extractor) readListFile(path string) ([]manifest.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mgerrors.Wrap(mgerrors.ErrCodeRead, err, "reading list document").WithPath(path)
	}
	obj, err := manifest.DecodeSingle(data)
	if err != nil {
		return nil, attachPath(err, path)
	}

	items, found, err := unstructured.NestedSlice(obj.Object, "items")
	if err != nil || !found {
		return nil, mgerrors.New(mgerrors.ErrCodeUnexpectedShape,
			"document has no items array, does not look like a list-type resource").WithPath(path)
	}

	manifests := make([]manifest.Manifest, 0, len(items))
	for i, item := range items {
		element, ok := item.(map[string]interface{})
		if !ok {
			return nil, mgerrors.Newf(mgerrors.ErrCodeUnexpectedShape,
				"items[%d] is not a mapping", i).WithPath(path)
		}
		manifests = append(manifests, manifest.Manifest{
			SourcePath: path,
			Object:     &unstructured.Unstructured{Object: element},
		})
	}
	return manifests, nil
}

func attachPath(err error, path string) error {
	var se *mgerrors.StructuredError
	if errors.As(err, &se) && se.Path == "" {
		se.Path = path
	}
	return err
}
