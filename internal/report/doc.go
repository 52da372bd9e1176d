// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report parses surefire-style JUnit XML result files into suite
// records keyed by suite name. A suite carries the four summary counters and
// the per-case outcomes; a suite map preserves file-discovery order so report
// layout is stable across runs.
package report
