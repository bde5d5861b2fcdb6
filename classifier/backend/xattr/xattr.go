package xattr

import (
	"os"
	"strings"

	"github.com/kontza/mediawalker/classifier"
	"github.com/kontza/mediawalker/classifier/backend/mime"
	"github.com/pkg/xattr"
)

const NAME = "xattr"

// Attribute is the freedesktop.org shared MIME attribute.
const Attribute = "user.mime_type"

func init() {
	classifier.Register(NAME, NewClassifier)
}

// Classifier trusts the MIME type recorded in the file's extended
// attributes and falls back to sniffing the content when there is none.
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

	// missing attribute and unsupported filesystem both end up sniffing
	if value, err := xattr.FGet(fp, Attribute); err == nil {
		if mimeType := strings.TrimSpace(string(value)); mimeType != "" {
			return mimeType, nil
		}
	}

	return mime.Sniff(fp)
}
