package mime

import (
	"errors"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/kontza/mediawalker/classifier"
)

const NAME = "mime"

// SniffLen matches the default read limit of the mimetype package.
const SniffLen = 3072

const unknownType = "application/octet-stream"

func init() {
	classifier.Register(NAME, NewClassifier)
}

type Classifier struct {
}

func NewClassifier() classifier.Backend {
	return &Classifier{}
}

func (c *Classifier) Detect(pathname string) (string, error) {
	fp, err := os.Open(pathname)
	if err != nil {
		return "", err
	}
	defer fp.Close()

	return Sniff(fp)
}

// Sniff reads the head of rd and returns its MIME type, or "" when rd is
// empty or its content matches no known signature.
func Sniff(rd io.Reader) (string, error) {
	buf := make([]byte, SniffLen)
	n, err := io.ReadFull(rd, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	if n == 0 {
		return "", nil
	}

	mtype := mimetype.Detect(buf[:n])
	if mtype.Is(unknownType) {
		return "", nil
	}
	return mtype.String(), nil
}
