package events

import (
	"time"

	"github.com/google/uuid"
)

type Event interface {
	Timestamp() time.Time
}

/**/
type Start struct {
	ts time.Time

	WalkID uuid.UUID
	Root   string
}

func StartEvent(walkID uuid.UUID, root string) Start {
	return Start{ts: time.Now(), WalkID: walkID, Root: root}
}
func (e Start) Timestamp() time.Time {
	return e.ts
}

/**/
type Done struct {
	ts time.Time

	WalkID uuid.UUID
	Root   string
}

func DoneEvent(walkID uuid.UUID, root string) Done {
	return Done{ts: time.Now(), WalkID: walkID, Root: root}
}
func (e Done) Timestamp() time.Time {
	return e.ts
}

/**/
type File struct {
	ts time.Time

	WalkID   uuid.UUID
	Pathname string
	MIME     string
	Message  string
}

func FileEvent(walkID uuid.UUID, pathname string, mime string) File {
	return File{ts: time.Now(), WalkID: walkID, Pathname: pathname, MIME: mime}
}
func FileErrorEvent(walkID uuid.UUID, pathname string, message string) File {
	return File{ts: time.Now(), WalkID: walkID, Pathname: pathname, Message: message}
}
func (e File) Timestamp() time.Time {
	return e.ts
}

/**/
type PathError struct {
	ts time.Time

	WalkID   uuid.UUID
	Pathname string
	Message  string
}

func PathErrorEvent(walkID uuid.UUID, pathname string, message string) PathError {
	return PathError{ts: time.Now(), WalkID: walkID, Pathname: pathname, Message: message}
}
func (e PathError) Timestamp() time.Time {
	return e.ts
}
