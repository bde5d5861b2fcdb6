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

// Package importer yields the entries of a tree, depth-first, to a callback.
// Backends register themselves by scheme; "fs" serves bare paths.
package importer

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kontza/mediawalker/logging"
	"github.com/kontza/mediawalker/profiler"
)

var ErrSymlinkLoop = errors.New("symlink loop detected")

type ScanResult interface {
	scanResult()
}

type RecordType int8

const (
	RecordTypeFile      RecordType = 0
	RecordTypeDirectory RecordType = 1
	RecordTypeSymlink   RecordType = 2
	RecordTypeDevice    RecordType = 3
	RecordTypePipe      RecordType = 4
	RecordTypeSocket    RecordType = 5
)

func (t RecordType) String() string {
	switch t {
	case RecordTypeFile:
		return "file"
	case RecordTypeDirectory:
		return "directory"
	case RecordTypeSymlink:
		return "symlink"
	case RecordTypeDevice:
		return "device"
	case RecordTypePipe:
		return "pipe"
	case RecordTypeSocket:
		return "socket"
	default:
		return fmt.Sprintf("RecordType(%d)", int8(t))
	}
}

// RecordTypeFromMode maps a file mode, as returned by os.Stat, to a record
// type. Irregular files that are none of the known kinds count as devices.
func RecordTypeFromMode(mode os.FileMode) RecordType {
	switch {
	case mode.IsRegular():
		return RecordTypeFile
	case mode.IsDir():
		return RecordTypeDirectory
	case mode&os.ModeSymlink != 0:
		return RecordTypeSymlink
	case mode&os.ModeNamedPipe != 0:
		return RecordTypePipe
	case mode&os.ModeSocket != 0:
		return RecordTypeSocket
	default:
		return RecordTypeDevice
	}
}

type ScanRecord struct {
	Type     RecordType
	Pathname string
	FileInfo os.FileInfo
}

func (r ScanRecord) scanResult() {}

type ScanError struct {
	Pathname string
	Err      error
}

func (r ScanError) scanResult() {}

func (r ScanError) Error() string {
	return fmt.Sprintf("%s: %s", r.Pathname, r.Err)
}

func (r ScanError) Unwrap() error {
	return r.Err
}

// WalkFunc receives every entry in traversal order. Returning a non-nil
// error stops the walk; Walk then returns that error.
type WalkFunc func(ScanResult) error

type ImporterBackend interface {
	Root() string
	Walk(fn WalkFunc) error
	Close() error
}

type Importer struct {
	backend ImporterBackend
	logger  *logging.Logger
}

var muBackends sync.Mutex
var backends map[string]func(location string) (ImporterBackend, error) = make(map[string]func(location string) (ImporterBackend, error))

func Register(name string, backend func(string) (ImporterBackend, error)) {
	muBackends.Lock()
	defer muBackends.Unlock()

	if _, ok := backends[name]; ok {
		log.Fatalf("backend '%s' registered twice", name)
	}
	backends[name] = backend
}

func Backends() []string {
	muBackends.Lock()
	defer muBackends.Unlock()

	ret := make([]string, 0)
	for name := range backends {
		ret = append(ret, name)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i] < ret[j]
	})
	return ret
}

// backendName returns the scheme of location, or "fs" for a bare path.
func backendName(location string) string {
	idx := strings.Index(location, "://")
	if idx <= 0 {
		return "fs"
	}
	scheme := location[:idx]
	if strings.ContainsAny(scheme, "/\\.") {
		return "fs"
	}
	return scheme
}

func NewImporter(location string) (*Importer, error) {
	name := backendName(location)

	muBackends.Lock()
	backend, exists := backends[name]
	muBackends.Unlock()

	if !exists {
		return nil, fmt.Errorf("unsupported importer protocol: %s", name)
	}

	backendInstance, err := backend(location)
	if err != nil {
		return nil, err
	}
	return &Importer{backend: backendInstance, logger: logging.Discard()}, nil
}

func (importer *Importer) SetLogger(logger *logging.Logger) {
	if logger != nil {
		importer.logger = logger
	}
}

func (importer *Importer) Root() string {
	return importer.backend.Root()
}

func (importer *Importer) Walk(fn WalkFunc) error {
	t0 := time.Now()
	defer func() {
		profiler.RecordEvent("importer.Walk", time.Since(t0))
		importer.logger.Trace("importer", "importer.Walk(%s): %s", importer.backend.Root(), time.Since(t0))
	}()

	return importer.backend.Walk(fn)
}

func (importer *Importer) Close() error {
	t0 := time.Now()
	defer func() {
		profiler.RecordEvent("importer.Close", time.Since(t0))
		importer.logger.Trace("importer", "importer.Close(): %s", time.Since(t0))
	}()

	return importer.backend.Close()
}
