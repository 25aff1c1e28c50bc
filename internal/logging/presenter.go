// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"fmt"

	clierrors "saprfc/cli/internal/errors"
)

// PresentError formats an error for user display with masking. A categorized
// error shows its message first and the underlying cause on a second line.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	var e *clierrors.E
	if errors.As(err, &e) {
		if e.Err == nil {
			return fmt.Sprintf("%s: %s", context, Mask(e.Message))
		}
		return fmt.Sprintf("%s: %s\n  cause: %s", context, Mask(e.Message), Mask(e.Err.Error()))
	}
	return fmt.Sprintf("%s: %s", context, Mask(err.Error()))
}
