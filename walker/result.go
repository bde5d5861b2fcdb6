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

package walker

import (
	"fmt"

	"github.com/kontza/mediawalker/classifier"
)

type Status int8

const (
	StatusMatched Status = iota
	StatusNoMatch
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusNoMatch:
		return "nomatch"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int8(s))
	}
}

// Result describes one regular file met during a walk. MIME is only set
// for StatusMatched and Err only for StatusFailed.
type Result struct {
	Pathname string
	MIME     string
	Status   Status
	Err      error
}

func (r Result) Matched() bool {
	return r.Status == StatusMatched
}

func (r Result) Category() (classifier.Category, bool) {
	if r.Status != StatusMatched {
		return 0, false
	}
	return classifier.CategoryOf(r.MIME)
}

// NewResult maps a classification outcome to the result of pathname.
func NewResult(pathname string, outcome classifier.Outcome) Result {
	switch outcome := outcome.(type) {
	case classifier.Matched:
		return Result{Pathname: pathname, MIME: outcome.MIME, Status: StatusMatched}
	case classifier.Failed:
		return Result{Pathname: pathname, Status: StatusFailed, Err: outcome.Err}
	default:
		return Result{Pathname: pathname, Status: StatusNoMatch}
	}
}
