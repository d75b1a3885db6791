// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config manages the process wide reporting settings shared by
// every container construction.
//
// Settings live in a single store created at init with conservative
// defaults, reporting enabled, a WARN threshold, call site capture on
// and local capture off. [Configure] merges partial updates into the
// store, [FromFile], [FromFS] and [FromReader] do the same from a YAML
// document and [Watch] keeps a file applied as it changes on disk.
//
// # Validation
//
// Every update is validated in full before any of it is applied. An
// unknown key, a mistyped value, an unrecognized level name or a
// malformed format template rejects the whole update and leaves the
// store exactly as it was. Updates therefore either apply completely
// or not at all, concurrent readers never observe a half applied
// mapping.
//
// # Namespaces
//
// The "libraries" key scopes settings to a namespace and its dot
// separated descendants:
//
//	config.Configure(map[string]any{
//		"level": "ERROR",
//		"libraries": map[string]any{
//			"svc.db": map[string]any{"enabled": false},
//		},
//	})
//
// A construction reporting under "svc.db.pool" resolves "svc.db", the
// longest matching prefix, before falling back to the global entry.
// This package reports its own failures and reload bookkeeping under
// "candor.config" which can be tuned, or silenced, like any other
// namespace.
package config
