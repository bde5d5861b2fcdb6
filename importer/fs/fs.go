/*
 * Copyright (c) 2023 Gilles Chehade <gilles@poolp.org>
 * Copyright (c) 2024 The mediawalker Authors
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kontza/mediawalker/importer"
)

type FSImporter struct {
	rootDir string
}

func init() {
	importer.Register("fs", NewFSImporter)
}

func NewFSImporter(location string) (importer.ImporterBackend, error) {
	return &FSImporter{
		rootDir: strings.TrimPrefix(location, "fs://"),
	}, nil
}

// Walk visits the root and then, depth-first, every entry below it.
// Directory entries are visited in lexical order. Symbolic links are
// followed: entries are typed after their target, a link that cannot be
// resolved is reported as a ScanError and a directory that is one of its
// own ancestors is reported as a ScanError wrapping ErrSymlinkLoop.
func (p *FSImporter) Walk(fn importer.WalkFunc) error {
	info, err := os.Stat(p.rootDir)
	if err != nil {
		return fn(importer.ScanError{Pathname: p.rootDir, Err: err})
	}
	return p.walk(p.rootDir, info, nil, fn)
}

func (p *FSImporter) walk(pathname string, info os.FileInfo, ancestors []os.FileInfo, fn importer.WalkFunc) error {
	if info.IsDir() {
		for _, ancestor := range ancestors {
			if os.SameFile(ancestor, info) {
				return fn(importer.ScanError{
					Pathname: pathname,
					Err:      fmt.Errorf("%w: %s", importer.ErrSymlinkLoop, pathname),
				})
			}
		}
	}

	record := importer.ScanRecord{
		Type:     importer.RecordTypeFromMode(info.Mode()),
		Pathname: pathname,
		FileInfo: info,
	}
	if err := fn(record); err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}

	// os.ReadDir returns the entries it managed to read along with the error
	entries, err := os.ReadDir(pathname)
	if err != nil {
		if err := fn(importer.ScanError{Pathname: pathname, Err: err}); err != nil {
			return err
		}
	}

	ancestors = append(ancestors, info)
	for _, entry := range entries {
		child := filepath.Join(pathname, entry.Name())

		childInfo, err := os.Stat(child)
		if err != nil {
			if err := fn(importer.ScanError{Pathname: child, Err: err}); err != nil {
				return err
			}
			continue
		}

		if err := p.walk(child, childInfo, ancestors, fn); err != nil {
			return err
		}
	}
	return nil
}

func (p *FSImporter) Close() error {
	return nil
}

func (p *FSImporter) Root() string {
	return p.rootDir
}
