package progress

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress is a spinner counting items of unknown total. Steps are sent
// from any goroutine; rendering happens on a goroutine of its own.
type Progress struct {
	input chan int64
	done  chan struct{}
}

func NewProgress(w io.Writer, name string, description string) *Progress {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(80),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset] %s", name, description)),
	)

	p := &Progress{
		input: make(chan int64),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(p.done)
		for step := range p.input {
			bar.Add64(step)
		}
		bar.Finish()
		bar.Close()
		fmt.Fprintln(w)
	}()
	return p
}

func (p *Progress) Add(step int64) {
	p.input <- step
}

// Close stops the spinner and waits for its last render.
func (p *Progress) Close() {
	close(p.input)
	<-p.done
}
