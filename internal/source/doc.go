// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source resolves a report-set spec to something the loader can read:
// a local directory of XML files, or an s3://bucket/prefix of reports
// published by CI.
package source
