// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package provenance records metadata about an AI model for surfacing
// in agent-discovery documents.
//
// The package defines a single value type, ModelProvenance, aligned
// with the model_info schema used by NANDA-compatible agent registries.
// A record captures identity (model_id, model_version, provider_id),
// lineage (model_type, base_model), and governance posture
// (governance_tier, weights_hash, risk_level), and projects itself into
// the shapes expected by each consumer:
//
//   - ToAgentFactsExtension: nested under a vendor extension key in
//     AgentFacts metadata (default key "x_model_provenance").
//   - ToAgentCardMetadata: nested under the fixed "model_info" key in
//     AgentCard metadata.
//   - ToDecisionFields: a flat identity subset merged into the top
//     level of decision-envelope records.
//   - ToMap: the underlying field map shared by the views above.
//
// # Presence Convention
//
// Every field defaults to the empty string, and the empty string means
// "absent": empty fields are omitted from every projection and from
// marshaled JSON, never emitted as "". Only model_id is logically
// required, and only at parse time — constructing a record with an
// empty ModelID is allowed and simply serializes to an empty map.
//
// # Forward Compatibility
//
// The classification fields (model_type, governance_tier, risk_level)
// are open: any string is accepted, and the conventional values are
// published as untyped constants rather than a closed type. Parsing
// silently ignores unrecognized keys so documents produced by newer
// versions of the schema remain readable.
//
// # Thread Safety
//
// ModelProvenance is a plain value with no internal state. All methods
// use value receivers and perform no mutation, so records may be shared
// and used from any number of goroutines without synchronization.
package provenance
