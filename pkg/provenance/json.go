// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package provenance

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Marshaling needs no custom code: the omitempty struct tags make
// json.Marshal emit exactly the ToMap shape. Unmarshaling is custom so
// that a missing model_id key is a parse error rather than a zero
// value.

// UnmarshalJSON decodes a JSON object into the record.
//
// # Description
//
// Applies the FromMap contract to JSON documents: the model_id key must
// be present (its value may be empty or even null), unknown keys are
// silently ignored, and known keys bound to non-string values are
// treated as unset. Presence is judged on the key alone, so
// {"model_id": ""} parses while {} does not.
//
// On any error the receiver is left unmodified.
//
// # Outputs
//
//   - error: wraps ErrInvalidInput when the input is not a JSON object
//     or the model_id key is absent.
func (p *ModelProvenance) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, ok := raw["model_id"]; !ok {
		return fmt.Errorf("%w: model_id is required", ErrInvalidInput)
	}

	var out ModelProvenance
	for key, dst := range map[string]*string{
		"model_id":        &out.ModelID,
		"model_version":   &out.ModelVersion,
		"provider_id":     &out.ProviderID,
		"model_type":      &out.ModelType,
		"base_model":      &out.BaseModel,
		"governance_tier": &out.GovernanceTier,
		"weights_hash":    &out.WeightsHash,
		"risk_level":      &out.RiskLevel,
	} {
		val, ok := raw[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			// Non-string value under a known key: unset.
			continue
		}
		*dst = s
	}

	*p = out
	return nil
}

// ParseProvenance constructs a ModelProvenance from a JSON document.
//
// # Description
//
// Convenience wrapper over UnmarshalJSON for callers holding raw bytes,
// e.g. the serialized inner map of an AgentFacts extension.
//
// # Inputs
//
//   - data: a JSON object with provenance fields.
//
// # Outputs
//
//   - ModelProvenance: the parsed record.
//   - error: wraps ErrInvalidInput on malformed input or a missing
//     model_id key.
func ParseProvenance(data []byte) (ModelProvenance, error) {
	var p ModelProvenance
	if err := json.Unmarshal(data, &p); err != nil {
		// Syntax errors are reported by the decoder's validity scan
		// before UnmarshalJSON runs, so they arrive unwrapped.
		if !errors.Is(err, ErrInvalidInput) {
			err = fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return ModelProvenance{}, err
	}
	return p, nil
}
