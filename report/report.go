// Package report encodes walk results for the command line, one result at a
// time as they come off the stream.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/kontza/mediawalker/walker"
	"github.com/vmihailenco/msgpack/v5"
)

type Encoder interface {
	Encode(result walker.Result) error
	Close() error
}

type Options struct {
	Color bool
}

type encoderFactory func(w io.Writer, opts *Options) Encoder

var encoders = map[string]encoderFactory{
	"text":    newTextEncoder,
	"json":    newJSONEncoder,
	"msgpack": newMsgpackEncoder,
}

func Formats() []string {
	ret := make([]string, 0, len(encoders))
	for name := range encoders {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

func NewEncoder(format string, w io.Writer, opts *Options) (Encoder, error) {
	factory, exists := encoders[format]
	if !exists {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if opts == nil {
		opts = &Options{}
	}
	return factory(w, opts), nil
}

// Record is the serialized form of a walker.Result.
type Record struct {
	Pathname string `json:"pathname" msgpack:"pathname"`
	Status   string `json:"status" msgpack:"status"`
	MIME     string `json:"mime,omitempty" msgpack:"mime,omitempty"`
	Category string `json:"category,omitempty" msgpack:"category,omitempty"`
	Error    string `json:"error,omitempty" msgpack:"error,omitempty"`
}

func NewRecord(result walker.Result) Record {
	record := Record{
		Pathname: result.Pathname,
		Status:   result.Status.String(),
		MIME:     result.MIME,
	}
	if category, ok := result.Category(); ok {
		record.Category = category.String()
	}
	if result.Err != nil {
		record.Error = result.Err.Error()
	}
	return record
}

type jsonEncoder struct {
	enc *json.Encoder
}

func newJSONEncoder(w io.Writer, opts *Options) Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &jsonEncoder{enc: enc}
}

func (e *jsonEncoder) Encode(result walker.Result) error {
	return e.enc.Encode(NewRecord(result))
}

func (e *jsonEncoder) Close() error {
	return nil
}

type msgpackEncoder struct {
	enc *msgpack.Encoder
}

func newMsgpackEncoder(w io.Writer, opts *Options) Encoder {
	return &msgpackEncoder{enc: msgpack.NewEncoder(w)}
}

func (e *msgpackEncoder) Encode(result walker.Result) error {
	return e.enc.Encode(NewRecord(result))
}

func (e *msgpackEncoder) Close() error {
	return nil
}
