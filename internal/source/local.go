// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Local reads reports from a directory on disk, non-recursive.
type Local struct {
	Dir string
}

// NewLocal validates that dir exists and is a directory, and returns the
// source. Relative paths are made absolute against the working directory.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		return nil, os.ErrInvalid
	}

	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(cwd, dir)
	}

	if fi, err := os.Stat(dir); err != nil {
		return nil, err
	} else if !fi.IsDir() {
		return nil, os.ErrInvalid
	}

	return &Local{Dir: dir}, nil
}

// Entries returns the .xml file names directly under the directory.
// os.ReadDir sorts by name, so discovery order is deterministic.
func (l *Local) Entries(ctx context.Context) ([]string, error) {
	dirents, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(de.Name()), reportExt) {
			names = append(names, de.Name())
		}
	}

	return names, nil
}

// Read returns one report's contents and modification time. The file handle is
// scoped to the ReadFile call.
func (l *Local) Read(ctx context.Context, name string) ([]byte, time.Time, error) {
	path := filepath.Join(l.Dir, name)

	fi, err := os.Stat(path)
	if err != nil {
		return nil, time.Time{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, err
	}

	return data, fi.ModTime(), nil
}

func (l *Local) String() string {
	return l.Dir
}
