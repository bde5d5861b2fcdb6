package utils

import (
	"github.com/kontza/mediawalker/appcontext"
	"github.com/kontza/mediawalker/classifier"
	_ "github.com/kontza/mediawalker/classifier/backend/mime"
	_ "github.com/kontza/mediawalker/classifier/backend/noop"
	_ "github.com/kontza/mediawalker/classifier/backend/xattr"
	"github.com/kontza/mediawalker/events"
	"github.com/kontza/mediawalker/walker"
)

func NewClassifier(ctx *appcontext.AppContext) (*classifier.Classifier, error) {
	cf, err := classifier.NewClassifier(ctx.GetConfig().Classifier)
	if err != nil {
		return nil, err
	}
	cf.SetLogger(ctx.GetLogger())
	return cf, nil
}

// NewWalker builds a walker publishing on the events receiver of ctx. The
// receiver must be drained, see EventsProcessor.
func NewWalker(ctx *appcontext.AppContext, bufferSize int) (*walker.Walker, error) {
	cf, err := NewClassifier(ctx)
	if err != nil {
		return nil, err
	}
	return walker.NewWalker(cf, &walker.Options{
		BufferSize: bufferSize,
		Events:     ctx.Events(),
		Logger:     ctx.GetLogger(),
	}), nil
}

// EventsProcessor logs walk events until the receiver of ctx is closed, then
// signals on the returned channel.
func EventsProcessor(ctx *appcontext.AppContext) chan struct{} {
	logger := ctx.GetLogger()
	listener := ctx.Events().Listen()

	done := make(chan struct{})
	go func() {
		for event := range listener {
			switch event := event.(type) {
			case events.Start:
				logger.Info("%s: walking %s", event.WalkID.String()[:8], event.Root)
			case events.Done:
				logger.Info("%s: done with %s", event.WalkID.String()[:8], event.Root)
			case events.PathError:
				logger.Warn("%s: %s: %s", event.WalkID.String()[:8], event.Pathname, event.Message)
			case events.File:
				if event.Message != "" {
					logger.Debug("%s: %s: %s", event.WalkID.String()[:8], event.Pathname, event.Message)
				}
			default:
			}
		}
		close(done)
	}()
	return done
}
