package serializer

// Format selects the output encoding.
type Format string

const (
	// FormatYAML writes human-readable YAML.
	FormatYAML Format = "yaml"

	// FormatJSON writes indented JSON.
	FormatJSON Format = "json"

	// FormatTable writes a flattened FIELD/VALUE table for terminal viewing.
	FormatTable Format = "table"
)

// StdoutURI is the special path indicating output should be written to stdout.
const StdoutURI = "-"

// IsUnknown reports whether the format is not one of the supported encodings.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns all supported output formats.
func SupportedFormats() []Format {
	return []Format{FormatYAML, FormatJSON, FormatTable}
}
