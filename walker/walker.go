/*
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

// Package walker streams the classification of every regular file below a
// root. A single goroutine walks the tree and classifies files in the order
// they are met; the caller drains the returned channel, which is closed once
// the walk is over.
package walker

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/kontza/mediawalker/classifier"
	"github.com/kontza/mediawalker/classifier/backend/mime"
	"github.com/kontza/mediawalker/events"
	"github.com/kontza/mediawalker/importer"
	_ "github.com/kontza/mediawalker/importer/fs"
	"github.com/kontza/mediawalker/logging"
	"github.com/kontza/mediawalker/profiler"
)

type Options struct {
	// BufferSize is the capacity of the result channel, 0 for unbuffered.
	BufferSize int

	// Events, when set, receives the events of every walk. Sends are
	// synchronous: listeners must keep draining while a walk runs.
	Events *events.Receiver

	Logger *logging.Logger
}

type Walker struct {
	classifier *classifier.Classifier
	bufferSize int
	events     *events.Receiver
	logger     *logging.Logger
}

// NewWalker returns a walker classifying with cf, or with the content
// sniffing backend when cf is nil. cf is not modified and may be shared
// between walkers.
func NewWalker(cf *classifier.Classifier, opts *Options) *Walker {
	if opts == nil {
		opts = &Options{}
	}
	if cf == nil {
		cf = classifier.FromBackend(mime.NAME, mime.NewClassifier())
	}

	w := &Walker{
		classifier: cf,
		bufferSize: opts.BufferSize,
		events:     opts.Events,
		logger:     opts.Logger,
	}
	if w.bufferSize < 0 {
		w.bufferSize = 0
	}
	if w.logger == nil {
		w.logger = logging.Discard()
	} else {
		w.classifier = cf.WithLogger(w.logger)
	}
	return w
}

// Start walks root with the content-sniffing classifier and an unbuffered
// channel, until the walk completes. The walk cannot be cancelled: the
// caller must drain the channel until it is closed, or the producer
// goroutine stays blocked. Use (*Walker).Start to stop a walk early.
func Start(root string) (<-chan Result, error) {
	cf, err := classifier.NewClassifier(mime.NAME)
	if err != nil {
		return nil, err
	}
	return NewWalker(cf, nil).Start(context.Background(), root)
}

// Start returns immediately with the channel the results of the walk of
// root are delivered on. Only an unsupported location fails; a root that
// does not exist yields a channel that is closed without results.
//
// Cancelling ctx stops the walk early and closes the channel.
func (w *Walker) Start(ctx context.Context, root string) (<-chan Result, error) {
	imp, err := importer.NewImporter(root)
	if err != nil {
		return nil, err
	}
	imp.SetLogger(w.logger)

	results := make(chan Result, w.bufferSize)
	go w.run(ctx, uuid.New(), imp, results)
	return results, nil
}

func (w *Walker) run(ctx context.Context, walkID uuid.UUID, imp *importer.Importer, results chan<- Result) {
	t0 := time.Now()
	defer close(results)
	defer imp.Close()

	root := imp.Root()
	w.emit(ctx, events.StartEvent(walkID, root))
	defer func() {
		w.emit(ctx, events.DoneEvent(walkID, root))
		profiler.RecordEvent("walker.Walk", time.Since(t0))
		w.logger.Trace("walker", "%s: walk of %s done in %s", walkID, root, time.Since(t0))
	}()

	err := imp.Walk(func(entry importer.ScanResult) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch entry := entry.(type) {
		case importer.ScanError:
			w.logger.Trace("walker", "%s: %s", walkID, entry)
			w.emit(ctx, events.PathErrorEvent(walkID, entry.Pathname, entry.Err.Error()))
			return nil

		case importer.ScanRecord:
			if entry.Type != importer.RecordTypeFile {
				return nil
			}
			if !utf8.ValidString(entry.Pathname) {
				w.logger.Trace("walker", "%s: skipping non UTF-8 pathname %q", walkID, entry.Pathname)
				return nil
			}

			result := NewResult(entry.Pathname, w.classifier.Classify(entry.Pathname))
			if result.Err != nil {
				w.emit(ctx, events.FileErrorEvent(walkID, result.Pathname, result.Err.Error()))
			} else {
				w.emit(ctx, events.FileEvent(walkID, result.Pathname, result.MIME))
			}

			select {
			case results <- result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		w.logger.Warn("%s: walk of %s aborted: %s", walkID, root, err)
	} else if err != nil {
		w.logger.Trace("walker", "%s: walk of %s cancelled", walkID, root)
	}
}

// emit gives up on listeners that are not draining once ctx is done; the
// select on the result channel then ends the walk.
func (w *Walker) emit(ctx context.Context, event events.Event) {
	if w.events != nil {
		w.events.Send(ctx, event)
	}
}
