// Package fixtures builds on-disk media trees for tests out of minimal
// magic-byte headers.
package fixtures

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

type Sample struct {
	Name string
	MIME string
	Data []byte
}

func pad(head string) []byte {
	data := make([]byte, 64)
	copy(data, head)
	return data
}

// Media holds one sample per detected type, three audio, three image and
// one video.
var Media = []Sample{
	{Name: "song.mp3", MIME: "audio/mpeg", Data: pad("ID3\x04\x00\x00\x00\x00\x00\x00")},
	{Name: "track.flac", MIME: "audio/flac", Data: pad("fLaC\x00\x00\x00\x22")},
	{Name: "clip.wav", MIME: "audio/wav", Data: pad("RIFF\x24\x00\x00\x00WAVEfmt ")},
	{Name: "photo.png", MIME: "image/png", Data: pad("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")},
	{Name: "anim.gif", MIME: "image/gif", Data: pad("GIF89a\x01\x00\x01\x00")},
	{Name: "photo.jpg", MIME: "image/jpeg", Data: pad("\xff\xd8\xff\xe0\x00\x10JFIF\x00")},
	{Name: "movie.mp4", MIME: "video/mp4", Data: pad("\x00\x00\x00\x18ftypisom\x00\x00\x02\x00isomiso2")},
}

var Markdown = Sample{
	Name: "README.md",
	Data: []byte("# Holiday\n\nPictures and *videos* from the trip.\n"),
}

// Unknown matches no signature and is not text.
var Unknown = Sample{
	Name: "blob.bin",
	Data: bytes.Repeat([]byte{0x01, 0x9c, 0xfe, 0x02, 0xb7, 0x00, 0x41, 0xf3}, 4),
}

func Write(t testing.TB, dir string, sample Sample) string {
	t.Helper()

	path := filepath.Join(dir, sample.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, sample.Data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Unreadable writes a file and removes all permissions from it. Callers
// running as root must skip, permissions are not enforced for them.
func Unreadable(t testing.TB, dir string, name string) string {
	t.Helper()

	path := Write(t, dir, Sample{Name: name, Data: []byte("secret")})
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
	t.Cleanup(func() { os.Chmod(path, 0o644) })
	return path
}

// CanEnforcePermissions reports whether a file without permissions is
// actually unreadable for the current process.
func CanEnforcePermissions() bool {
	return os.Geteuid() != 0 && os.Getenv("OS") != "Windows_NT"
}
