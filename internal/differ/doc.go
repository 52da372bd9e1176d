// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ compares a baseline suite map against a candidate suite map
// and produces the structured diff result the renderers consume, plus the
// overall PASS/FAIL verdict.
package differ
