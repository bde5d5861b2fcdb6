package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/kontza/mediawalker/classifier"
	"github.com/kontza/mediawalker/walker"
)

// Summary aggregates a stream of results per category.
type Summary struct {
	Files   uint64
	Counts  map[classifier.Category]uint64
	Sizes   map[classifier.Category]uint64
	NoMatch uint64
	Failed  uint64
}

func NewSummary() *Summary {
	return &Summary{
		Counts: make(map[classifier.Category]uint64),
		Sizes:  make(map[classifier.Category]uint64),
	}
}

func (s *Summary) Add(result walker.Result, size int64) {
	s.Files++
	switch result.Status {
	case walker.StatusMatched:
		category, ok := result.Category()
		if !ok {
			s.NoMatch++
			return
		}
		s.Counts[category]++
		if size > 0 {
			s.Sizes[category] += uint64(size)
		}
	case walker.StatusFailed:
		s.Failed++
	default:
		s.NoMatch++
	}
}

func (s *Summary) Matched() uint64 {
	var total uint64
	for _, count := range s.Counts {
		total += count
	}
	return total
}

func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	var total int64

	write := func(format string, args ...interface{}) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}

	for _, category := range classifier.Categories() {
		if err := write("%-8s %8s files  %s\n", category, humanize.Comma(int64(s.Counts[category])), humanize.Bytes(s.Sizes[category])); err != nil {
			return total, err
		}
	}
	if err := write("%-8s %8s files\n", "nomatch", humanize.Comma(int64(s.NoMatch))); err != nil {
		return total, err
	}
	if err := write("%-8s %8s files\n", "failed", humanize.Comma(int64(s.Failed))); err != nil {
		return total, err
	}
	return total, nil
}
