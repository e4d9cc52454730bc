// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package provenance

import "fmt"

// DefaultExtensionKey is the AgentFacts metadata key used by
// ToAgentFactsExtension when the caller does not supply one. It follows
// the NANDA "x_" prefix convention for vendor extensions.
const DefaultExtensionKey = "x_model_provenance"

// AgentCardMetadataKey is the fixed top-level key under which
// ToAgentCardMetadata nests the provenance fields.
const AgentCardMetadataKey = "model_info"

// Conventional model_type values. The field is an open string; these
// constants exist so callers avoid typos, not to close the set.
const (
	ModelTypeBase        = "base"
	ModelTypeLoRAAdapter = "lora_adapter"
	ModelTypeONNXEdge    = "onnx_edge"
	ModelTypeFederated   = "federated"
	ModelTypeHeuristic   = "heuristic"
)

// Conventional governance_tier values.
const (
	GovernanceTierStandard  = "standard"
	GovernanceTierRegulated = "regulated"
)

// Conventional risk_level values.
const (
	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
	RiskLevelHigh   = "high"
)

// ModelProvenance records model metadata for agent discovery.
//
// # Description
//
// A ModelProvenance is a pure value: construct it as a struct literal
// (or via FromMap / ParseProvenance) and never mutate it afterwards.
// Two records with identical field values are interchangeable; ordinary
// struct equality (==) is the equality relation.
//
// Only ModelID is logically required, and only when parsing. Every
// field defaults to "" and an empty field is omitted from all
// serialized output.
//
// # Thread Safety
//
// Safe for concurrent use. All methods take value receivers and
// perform no mutation.
type ModelProvenance struct {
	// ModelID is the model identifier (e.g. "llama-3.1-8b").
	ModelID string `json:"model_id,omitempty"`

	// ModelVersion is a semantic or arbitrary version string.
	ModelVersion string `json:"model_version,omitempty"`

	// ProviderID is the inference provider (e.g. "openai", "ollama",
	// "local").
	ProviderID string `json:"provider_id,omitempty"`

	// ModelType is the model category. See the ModelType* constants
	// for the conventional values.
	ModelType string `json:"model_type,omitempty"`

	// BaseModel is the foundation model name when ModelType denotes an
	// adapter.
	BaseModel string `json:"base_model,omitempty"`

	// GovernanceTier is the governance classification. See the
	// GovernanceTier* constants.
	GovernanceTier string `json:"governance_tier,omitempty"`

	// WeightsHash is the SHA-256 hex digest of the model weights.
	WeightsHash string `json:"weights_hash,omitempty"`

	// RiskLevel is the risk assessment. See the RiskLevel* constants.
	RiskLevel string `json:"risk_level,omitempty"`
}

// ToMap serializes the record to a flat map, omitting empty fields.
//
// # Description
//
// Returns exactly the non-empty fields among the eight, keyed by their
// wire names (model_id, model_version, provider_id, model_type,
// base_model, governance_tier, weights_hash, risk_level). Empty fields
// are omitted entirely, never emitted as "". If every field is empty
// the result is an empty, non-nil map.
//
// The returned map is freshly allocated; callers may modify it.
//
// # Outputs
//
//   - map[string]string: wire name to non-empty value.
func (p ModelProvenance) ToMap() map[string]string {
	fields := [...]struct {
		key   string
		value string
	}{
		{"model_id", p.ModelID},
		{"model_version", p.ModelVersion},
		{"provider_id", p.ProviderID},
		{"model_type", p.ModelType},
		{"base_model", p.BaseModel},
		{"governance_tier", p.GovernanceTier},
		{"weights_hash", p.WeightsHash},
		{"risk_level", p.RiskLevel},
	}

	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.value != "" {
			out[f.key] = f.value
		}
	}
	return out
}

// ToAgentFactsExtension produces a metadata extension for AgentFacts.
//
// # Description
//
// Wraps ToMap under a single top-level extension key, suitable for
// merging into AgentFacts metadata. An empty extensionKey selects
// DefaultExtensionKey, consistent with this package's
// empty-means-absent convention.
//
// # Inputs
//
//   - extensionKey: top-level key in AgentFacts metadata, or "" for
//     the default.
//
// # Outputs
//
//   - map[string]map[string]string: one entry, extensionKey -> ToMap().
func (p ModelProvenance) ToAgentFactsExtension(extensionKey string) map[string]map[string]string {
	if extensionKey == "" {
		extensionKey = DefaultExtensionKey
	}
	return map[string]map[string]string{extensionKey: p.ToMap()}
}

// ToAgentCardMetadata produces the model_info block for AgentCard
// metadata.
//
// # Description
//
// Wraps ToMap under the fixed AgentCardMetadataKey. Unlike the
// AgentFacts projection, the key is not configurable.
//
// # Outputs
//
//   - map[string]map[string]string: one entry, "model_info" -> ToMap().
func (p ModelProvenance) ToAgentCardMetadata() map[string]map[string]string {
	return map[string]map[string]string{AgentCardMetadataKey: p.ToMap()}
}

// ToDecisionFields produces flat fields for decision-envelope records.
//
// # Description
//
// Emits only model_id, model_version, and provider_id, each present
// only when non-empty. The other five fields never appear, regardless
// of value. The result is meant to be merged at the top level of a
// larger record rather than nested under a sub-key, so it is computed
// independently of ToMap.
//
// # Outputs
//
//   - map[string]string: up to three identity fields.
func (p ModelProvenance) ToDecisionFields() map[string]string {
	out := make(map[string]string, 3)
	if p.ModelID != "" {
		out["model_id"] = p.ModelID
	}
	if p.ModelVersion != "" {
		out["model_version"] = p.ModelVersion
	}
	if p.ProviderID != "" {
		out["provider_id"] = p.ProviderID
	}
	return out
}

// FromMap constructs a ModelProvenance from a flat field map.
//
// # Description
//
// The inverse of ToMap. The model_id key must be present; its value
// may be empty (parsing mirrors construction, which accepts an empty
// ModelID). The seven optional keys default to "" when absent, and
// unrecognized keys are silently ignored so maps produced by newer
// schema versions remain readable.
//
// # Inputs
//
//   - data: field map, e.g. the inner map of an AgentFacts extension.
//
// # Outputs
//
//   - ModelProvenance: the reconstructed record.
//   - error: wraps ErrInvalidInput when the model_id key is absent.
func FromMap(data map[string]string) (ModelProvenance, error) {
	if _, ok := data["model_id"]; !ok {
		return ModelProvenance{}, fmt.Errorf("%w: model_id is required", ErrInvalidInput)
	}
	return ModelProvenance{
		ModelID:        data["model_id"],
		ModelVersion:   data["model_version"],
		ProviderID:     data["provider_id"],
		ModelType:      data["model_type"],
		BaseModel:      data["base_model"],
		GovernanceTier: data["governance_tier"],
		WeightsHash:    data["weights_hash"],
		RiskLevel:      data["risk_level"],
	}, nil
}
