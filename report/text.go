package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/kontza/mediawalker/classifier"
	"github.com/kontza/mediawalker/walker"
	"github.com/muesli/termenv"
)

var categoryColors = map[classifier.Category]lipgloss.Color{
	classifier.CategoryAudio: lipgloss.Color("#D75FD7"),
	classifier.CategoryImage: lipgloss.Color("#00AFFF"),
	classifier.CategoryVideo: lipgloss.Color("#FFAF00"),
}

type textEncoder struct {
	w io.Writer

	checkMark lipgloss.Style
	crossMark lipgloss.Style
	dash      lipgloss.Style
	faint     lipgloss.Style
	category  map[classifier.Category]lipgloss.Style
}

func newTextEncoder(w io.Writer, opts *Options) Encoder {
	renderer := lipgloss.NewRenderer(w)
	if !opts.Color {
		renderer.SetColorProfile(termenv.Ascii)
	}

	e := &textEncoder{
		w:         w,
		checkMark: renderer.NewStyle().Foreground(lipgloss.Color("#00FF00")).SetString("✓"),
		crossMark: renderer.NewStyle().Foreground(lipgloss.Color("#FF0000")).SetString("✘"),
		dash:      renderer.NewStyle().Foreground(lipgloss.Color("#808080")).SetString("-"),
		faint:     renderer.NewStyle().Foreground(lipgloss.Color("#808080")),
		category:  make(map[classifier.Category]lipgloss.Style),
	}
	for category, color := range categoryColors {
		e.category[category] = renderer.NewStyle().Foreground(color)
	}
	return e
}

func (e *textEncoder) Encode(result walker.Result) error {
	var err error
	switch result.Status {
	case walker.StatusMatched:
		mime := result.MIME
		if category, ok := result.Category(); ok {
			mime = e.category[category].Render(mime)
		}
		_, err = fmt.Fprintf(e.w, "%s %s %s\n", e.checkMark, result.Pathname, mime)
	case walker.StatusFailed:
		_, err = fmt.Fprintf(e.w, "%s %s: %s\n", e.crossMark, result.Pathname, result.Err)
	default:
		_, err = fmt.Fprintf(e.w, "%s %s\n", e.dash, e.faint.Render(result.Pathname))
	}
	return err
}

func (e *textEncoder) Close() error {
	return nil
}
