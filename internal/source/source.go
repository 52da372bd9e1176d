// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"strings"

	awsx "github.com/junitdiff/junitdiff/internal/aws"
	"github.com/junitdiff/junitdiff/internal/log"
	"github.com/junitdiff/junitdiff/internal/report"
)

// reportExt is the fixed extension filter applied by every source.
const reportExt = ".xml"

// Open resolves a report-set spec. Anything of the form s3://bucket/prefix
// becomes an S3 source using the shared-config credential chain (with optional
// profile/region overrides); everything else must be an existing local
// directory.
func Open(ctx context.Context, spec, profile, region string) (report.Source, error) {
	if bucket, prefix, ok := strings.Cut(strings.TrimPrefix(spec, "s3://"), "/"); ok && strings.HasPrefix(spec, "s3://") {
		log.Debugf("opening s3 source: bucket=%s prefix=%s", bucket, prefix)

		cfg, err := awsx.LoadAWSConfig(ctx,
			awsx.WithProfile(profile),
			awsx.WithRegion(region),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		return NewS3(awsx.NewS3(cfg), bucket, prefix), nil
	}

	if strings.HasPrefix(spec, "s3://") {
		return nil, fmt.Errorf("invalid s3 spec (want s3://bucket/prefix): %s", spec)
	}

	return NewLocal(spec)
}
