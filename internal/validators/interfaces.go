// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the business rules on inbound domain values
// before they reach the store.
//
// Validators are injected into services and called with an optional list of
// field names that restricts validation to a subset of fields. A failed check
// is reported as a [*ValidationError] carrying the client-facing message of
// the first violated rule.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates obj, optionally restricted to the named fields.
	Validate(ctx context.Context, obj any, fields ...string) error
}
