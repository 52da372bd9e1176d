// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders diff results and suite datasets: the HTML report,
// terminal tables, and the json/yaml emitters behind --output.
package output
