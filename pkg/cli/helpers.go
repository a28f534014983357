/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/mustgather/pkg/serializer"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %v",
			outFormat, serializer.SupportedFormats())
	}
	return outFormat, nil
}

// newOutputWriter builds the serializer for the command's format and output
// flags. The caller is responsible for closing the returned writer when it
// owns a file.
func newOutputWriter(cmd *cli.Command) (serializer.Writer, error) {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	return serializer.NewFileWriterOrStdout(format, cmd.String("output"))
}

// closeWriter closes w when it owns its destination.
func closeWriter(w serializer.Writer) {
	if closer, ok := w.(serializer.Closer); ok {
		_ = closer.Close()
	}
}
