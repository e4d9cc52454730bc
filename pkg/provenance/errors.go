// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package provenance

import "errors"

// Sentinel errors for the provenance package.
var (
	// ErrInvalidInput indicates a provenance mapping that cannot be
	// parsed, currently only a mapping missing the model_id key.
	// Callers test for it with errors.Is.
	ErrInvalidInput = errors.New("invalid input")
)
