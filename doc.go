// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package candor provides container types whose unhappy paths report themselves.
//
// The module is built around two value containers:
//
//   - option.Option[T]: a value which is either present or absent with a reason
//   - result.Result[T]: a value which is either a success or a failure with an error
//
// Constructing the unhappy variant of either container synchronously reports
// the absence or failure through a process wide, namespace aware pipeline
// before the value is returned. The caller keeps composing as if nothing
// happened, while the event is already on record. Combinators which merely
// pass an existing unhappy value along re-wrap it through a quiet path, so
// every absence and failure is reported exactly once, at its origin.
//
// # Basic Usage
//
// Wrap fallible calls and compose over them:
//
//	res := result.New(os.Open(path))
//	data := result.Map(res, func(f *os.File) string {
//	    defer f.Close()
//	    return f.Name()
//	})
//	name := data.UnwrapOr("unknown")
//
// Absences behave the same way:
//
//	v, ok := env["PORT"]
//	port := option.FromOK(v, ok).UnwrapOr("8080")
//
// # Configuration
//
// Reporting is controlled by the config package. Namespaces follow dotted
// paths and resolve by longest prefix, so one entry can govern a whole
// subtree of packages:
//
//	config.Configure(map[string]any{
//	    "level": "ERROR",
//	    "libraries": map[string]any{
//	        "svc.db": map[string]any{"level": "DEBUG"},
//	    },
//	})
//
// By default events derive their namespace from the constructing package's
// import path. An explicit namespace can be set per construction:
//
//	result.Err[User](err, result.In("svc.db"))
//
// or carried ambiently by a context:
//
//	ctx = candor.WithNamespace(ctx, "svc.db")
//	result.Err[User](err, result.Context(ctx))
//
// # Retrying
//
// The retry package re-runs Result producing operations under a backoff
// policy, returning the last real failure when every attempt fails:
//
//	res := retry.Do(ctx, retry.DefaultPolicy(), fetchUser)
package candor
