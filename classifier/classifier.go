/*
 * Copyright (c) 2021 Gilles Chehade <gilles@poolp.org>
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

// Package classifier decides whether a file is audio, image or video.
//
// A Backend inspects a file and reports its MIME type; the Classifier
// turns that report into an Outcome by comparing the type against the
// media categories.
package classifier

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kontza/mediawalker/logging"
	"github.com/kontza/mediawalker/profiler"
)

const VERSION string = "0.1.0"

var ErrUnknownBackend = errors.New("unknown classifier backend")

type Category int8

const (
	CategoryAudio Category = iota
	CategoryImage
	CategoryVideo
)

var categoryPrefixes = [...]string{
	CategoryAudio: "audio",
	CategoryImage: "image",
	CategoryVideo: "video",
}

func Categories() []Category {
	return []Category{CategoryAudio, CategoryImage, CategoryVideo}
}

func (c Category) String() string {
	if int(c) < 0 || int(c) >= len(categoryPrefixes) {
		return fmt.Sprintf("Category(%d)", int8(c))
	}
	return categoryPrefixes[c]
}

// Prefix is the leading part of a MIME type that places it in c.
func (c Category) Prefix() string {
	return c.String()
}

// CategoryOf reports the category whose prefix starts mime. The comparison
// is case-sensitive.
func CategoryOf(mime string) (Category, bool) {
	for _, category := range Categories() {
		if strings.HasPrefix(mime, category.Prefix()) {
			return category, true
		}
	}
	return 0, false
}

type Outcome interface {
	outcome()
}

type Matched struct {
	MIME     string
	Category Category
}

func (Matched) outcome() {}

// NoMatch is returned for files of a known but irrelevant type and for
// files whose type could not be determined.
type NoMatch struct{}

func (NoMatch) outcome() {}

type Failed struct {
	Err error
}

func (Failed) outcome() {}

// Backend detects the MIME type of the file at pathname. It returns "" when
// the type cannot be determined and an error when the file cannot be read.
type Backend interface {
	Detect(pathname string) (string, error)
}

var muBackends sync.Mutex
var backends map[string]func() Backend = make(map[string]func() Backend)

type Classifier struct {
	name    string
	backend Backend
	logger  *logging.Logger
}

func NewClassifier(name string) (*Classifier, error) {
	muBackends.Lock()
	defer muBackends.Unlock()

	if backend, exists := backends[name]; !exists {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownBackend, name)
	} else {
		return &Classifier{
			name:    name,
			backend: backend(),
			logger:  logging.Discard(),
		}, nil
	}
}

// FromBackend wraps a backend that is not part of the registry.
func FromBackend(name string, backend Backend) *Classifier {
	return &Classifier{
		name:    name,
		backend: backend,
		logger:  logging.Discard(),
	}
}

func Register(name string, backend func() Backend) {
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
	for backendName := range backends {
		ret = append(ret, backendName)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i] < ret[j]
	})
	return ret
}

func (cf *Classifier) Name() string {
	return cf.name
}

func (cf *Classifier) SetLogger(logger *logging.Logger) {
	if logger != nil {
		cf.logger = logger
	}
}

// WithLogger returns a copy of cf sharing its backend and logging to
// logger. cf itself is left untouched.
func (cf *Classifier) WithLogger(logger *logging.Logger) *Classifier {
	clone := *cf
	if logger != nil {
		clone.logger = logger
	}
	return &clone
}

// Classify asks the backend once for the type of pathname.
func (cf *Classifier) Classify(pathname string) Outcome {
	t0 := time.Now()
	defer func() {
		profiler.RecordEvent("classifier.Classify", time.Since(t0))
	}()

	mime, err := cf.backend.Detect(pathname)
	if err != nil {
		cf.logger.Trace("classifier", "%s: %s: %s", cf.name, pathname, err)
		return Failed{Err: err}
	}
	cf.logger.Trace("classifier", "%s: %s: %q", cf.name, pathname, mime)

	if mime == "" {
		return NoMatch{}
	}
	if category, ok := CategoryOf(mime); ok {
		return Matched{MIME: mime, Category: category}
	}
	return NoMatch{}
}

func (cf *Classifier) Close() error {
	return nil
}
