// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/errs/v2"
)

// ErrFormat tags errors for paths that cannot hold an INI document: a
// directory, or a file without an accepted extension.
const ErrFormat = errs.Tag("invalid ini file")

// AcceptedExtensions returns the file extensions, without the leading dot,
// that LoadFile accepts.
func AcceptedExtensions() []string {
	return []string{"ini"}
}

func checkExtension(path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, accepted := range AcceptedExtensions() {
		if ext == accepted {
			return nil
		}
	}
	return ErrFormat.Errorf("%s: only %q extensions are accepted", path, AcceptedExtensions())
}

// LoadFile opens the file at path and loads it into d with Load. It fails
// with an ErrFormat error if path is a directory or does not have an
// accepted extension.
func (d *Document) LoadFile(ctx context.Context, path string, opts *Options) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("load ini file: %w", err)
	}
	if info.IsDir() {
		return ErrFormat.Errorf("%s: directory given", path)
	}
	if err := checkExtension(path); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load ini file: %w", err)
	}
	defer f.Close() // Close errors irrelevant for reads.
	if err := d.Load(ctx, f, opts); err != nil {
		return fmt.Errorf("load ini file %s: %w", path, err)
	}
	return nil
}

// StoreFile writes d to the file at path with Store, creating or truncating
// it.
func (d *Document) StoreFile(path string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("store ini file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("store ini file: %w", closeErr)
		}
	}()
	if err := d.Store(f); err != nil {
		return fmt.Errorf("store ini file %s: %w", path, err)
	}
	return nil
}
