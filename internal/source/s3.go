// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/junitdiff/junitdiff/internal/log"
)

// S3API is the slice of the S3 client the source needs.
type S3API interface {
	ListObjectsV2(ctx context.Context, params *s3v2.ListObjectsV2Input, optFns ...func(*s3v2.Options)) (*s3v2.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// S3 reads reports from an s3://bucket/prefix report set. Only keys directly
// under the prefix are considered, mirroring the non-recursive local source.
type S3 struct {
	client S3API
	bucket string
	prefix string
}

// NewS3 returns an S3 source over bucket/prefix. A trailing slash on the
// prefix is normalized in.
func NewS3(client S3API, bucket, prefix string) *S3 {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

// Entries lists the .xml keys directly under the prefix, in key order (S3
// lists lexicographically). Names are relative to the prefix.
func (s *S3) Entries(ctx context.Context) ([]string, error) {
	var names []string

	input := &s3v2.ListObjectsV2Input{
		Bucket: awsv2.String(s.bucket),
		Prefix: awsv2.String(s.prefix),
	}

	for {
		out, err := s.client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", s, err)
		}

		for _, obj := range out.Contents {
			if obj.Key == nil {
				continue
			}
			name := strings.TrimPrefix(*obj.Key, s.prefix)
			// Skip anything below a sub-prefix.
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			if strings.EqualFold(ext(name), reportExt) {
				names = append(names, name)
			}
		}

		if out.IsTruncated == nil || !*out.IsTruncated {
			break
		}
		input.ContinuationToken = out.NextContinuationToken
	}

	log.Debugf("s3 entries listed: n=%d", len(names))
	return names, nil
}

// Read fetches one report object. The body is closed before returning on
// every path.
func (s *S3) Read(ctx context.Context, name string) ([]byte, time.Time, error) {
	obj, err := s.client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(s.bucket),
		Key:    awsv2.String(s.prefix + name),
	})
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to get %s from %s: %w", name, s, err)
	}
	defer obj.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, time.Time{}, err
	}

	var modified time.Time
	if obj.LastModified != nil {
		modified = *obj.LastModified
	}

	return data, modified, nil
}

func (s *S3) String() string {
	return "s3://" + s.bucket + "/" + s.prefix
}

// ext returns the extension of a key's final segment.
func ext(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}
