package importer

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type staticBackend struct {
	root    string
	results []ScanResult
}

func (b *staticBackend) Root() string { return b.root }
func (b *staticBackend) Close() error { return nil }
func (b *staticBackend) Walk(fn WalkFunc) error {
	for _, result := range b.results {
		if err := fn(result); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	Register("static", func(location string) (ImporterBackend, error) {
		return &staticBackend{
			root: location,
			results: []ScanResult{
				ScanRecord{Type: RecordTypeDirectory, Pathname: "/"},
				ScanError{Pathname: "/x", Err: os.ErrPermission},
			},
		}, nil
	})
}

func TestBackendName(t *testing.T) {
	for _, test := range []struct {
		location string
		backend  string
	}{
		{"/tmp/media", "fs"},
		{"media", "fs"},
		{"", "fs"},
		{"fs:///tmp", "fs"},
		{"static://x", "static"},
		{"s3://bucket", "s3"},
		{"./a://b", "fs"},
		{"://nothing", "fs"},
	} {
		t.Run(test.location, func(t *testing.T) {
			require.Equal(t, test.backend, backendName(test.location))
		})
	}
}

func TestNewImporterUnsupported(t *testing.T) {
	_, err := NewImporter("s3://bucket/path")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported importer protocol")
}

func TestImporterDelegates(t *testing.T) {
	imp, err := NewImporter("static://root")
	require.NoError(t, err)
	require.Equal(t, "static://root", imp.Root())

	var got []ScanResult
	require.NoError(t, imp.Walk(func(result ScanResult) error {
		got = append(got, result)
		return nil
	}))
	require.Len(t, got, 2)

	scanErr, ok := got[1].(ScanError)
	require.True(t, ok)
	require.True(t, errors.Is(scanErr, os.ErrPermission))
	require.Equal(t, "/x: permission denied", scanErr.Error())
	require.NoError(t, imp.Close())
}

func TestBackendsListsRegistered(t *testing.T) {
	require.Contains(t, Backends(), "static")
}

func TestRecordTypeFromMode(t *testing.T) {
	for _, test := range []struct {
		mode os.FileMode
		want RecordType
	}{
		{0o644, RecordTypeFile},
		{os.ModeDir | 0o755, RecordTypeDirectory},
		{os.ModeSymlink, RecordTypeSymlink},
		{os.ModeNamedPipe, RecordTypePipe},
		{os.ModeSocket, RecordTypeSocket},
		{os.ModeDevice | os.ModeCharDevice, RecordTypeDevice},
	} {
		t.Run(test.want.String(), func(t *testing.T) {
			require.Equal(t, test.want, RecordTypeFromMode(test.mode))
		})
	}
}
