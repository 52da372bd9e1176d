// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package source

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalValidation(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		wantErr bool
	}{
		{name: "existing directory", dir: "testdata/reports", wantErr: false},
		{name: "missing directory", dir: "testdata/nope", wantErr: true},
		{name: "file not directory", dir: "testdata/reports/notes.txt", wantErr: true},
		{name: "empty spec", dir: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocal(tt.dir)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLocalEntries(t *testing.T) {
	src, err := NewLocal("testdata/reports")
	require.NoError(t, err)

	entries, err := src.Entries(context.Background())
	require.NoError(t, err)

	// Fixed extension filter, non-recursive, sorted by name.
	assert.Equal(t, []string{"TEST-com.foo.ATest.xml", "TEST-com.foo.BTest.xml"}, entries)
}

func TestLocalRead(t *testing.T) {
	src, err := NewLocal("testdata/reports")
	require.NoError(t, err)

	data, modified, err := src.Read(context.Background(), "TEST-com.foo.ATest.xml")
	require.NoError(t, err)
	assert.Contains(t, string(data), `name="com.foo.ATest"`)
	assert.False(t, modified.IsZero())

	_, _, err = src.Read(context.Background(), "absent.xml")
	assert.Error(t, err)
}

// fakeS3 serves canned list/get responses.
type fakeS3 struct {
	pages   []*s3v2.ListObjectsV2Output
	objects map[string][]byte
	page    int
}

func (f *fakeS3) ListObjectsV2(context.Context, *s3v2.ListObjectsV2Input, ...func(*s3v2.Options)) (*s3v2.ListObjectsV2Output, error) {
	out := f.pages[f.page]
	if f.page < len(f.pages)-1 {
		f.page++
	}
	return out, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	body, ok := f.objects[*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	modified := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &s3v2.GetObjectOutput{
		Body:         io.NopCloser(bytes.NewReader(body)),
		LastModified: &modified,
	}, nil
}

func TestS3Entries(t *testing.T) {
	fake := &fakeS3{
		pages: []*s3v2.ListObjectsV2Output{
			{
				Contents: []types.Object{
					{Key: awsv2.String("ci/run-1/TEST-a.xml")},
					{Key: awsv2.String("ci/run-1/notes.txt")},
					{Key: awsv2.String("ci/run-1/nested/TEST-deep.xml")},
				},
				IsTruncated:           awsv2.Bool(true),
				NextContinuationToken: awsv2.String("tok"),
			},
			{
				Contents: []types.Object{
					{Key: awsv2.String("ci/run-1/TEST-b.xml")},
				},
				IsTruncated: awsv2.Bool(false),
			},
		},
	}

	src := NewS3(fake, "bucket", "ci/run-1")
	entries, err := src.Entries(context.Background())
	require.NoError(t, err)

	// Pagination is followed; sub-prefixes and non-xml keys are skipped.
	assert.Equal(t, []string{"TEST-a.xml", "TEST-b.xml"}, entries)
}

func TestS3Read(t *testing.T) {
	fake := &fakeS3{
		objects: map[string][]byte{
			"ci/run-1/TEST-a.xml": []byte("<testsuite/>"),
		},
	}

	src := NewS3(fake, "bucket", "ci/run-1/")
	data, modified, err := src.Read(context.Background(), "TEST-a.xml")
	require.NoError(t, err)
	assert.Equal(t, "<testsuite/>", string(data))
	assert.Equal(t, 2026, modified.Year())

	_, _, err = src.Read(context.Background(), "absent.xml")
	assert.Error(t, err)
}

func TestS3String(t *testing.T) {
	src := NewS3(&fakeS3{}, "bucket", "ci/run-1")
	assert.Equal(t, "s3://bucket/ci/run-1/", src.String())
}

func TestOpenLocal(t *testing.T) {
	src, err := Open(context.Background(), "testdata/reports", "", "")
	require.NoError(t, err)
	_, ok := src.(*Local)
	assert.True(t, ok)
}

func TestOpenInvalidS3Spec(t *testing.T) {
	_, err := Open(context.Background(), "s3://bucket-only", "", "")
	assert.Error(t, err)
}
