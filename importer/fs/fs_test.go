package fs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/kontza/mediawalker/importer"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

type collected struct {
	records []importer.ScanRecord
	errors  []importer.ScanError
}

func collect(t *testing.T, location string) collected {
	t.Helper()

	imp, err := importer.NewImporter(location)
	require.NoError(t, err)
	defer imp.Close()

	var c collected
	err = imp.Walk(func(result importer.ScanResult) error {
		switch result := result.(type) {
		case importer.ScanRecord:
			c.records = append(c.records, result)
		case importer.ScanError:
			c.errors = append(c.errors, result)
		}
		return nil
	})
	require.NoError(t, err)
	return c
}

func pathnames(records []importer.ScanRecord) []string {
	ret := make([]string, 0, len(records))
	for _, record := range records {
		ret = append(ret, record.Pathname)
	}
	return ret
}

func TestWalkDepthFirstLexical(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b", "2.txt"), "2")
	writeFile(t, filepath.Join(root, "b", "1.txt"), "1")
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "c.txt"), "c")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b", "empty"), 0o755))

	c := collect(t, root)
	require.Empty(t, c.errors)
	require.Equal(t, []string{
		root,
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b"),
		filepath.Join(root, "b", "1.txt"),
		filepath.Join(root, "b", "2.txt"),
		filepath.Join(root, "b", "empty"),
		filepath.Join(root, "c.txt"),
	}, pathnames(c.records))

	require.Equal(t, importer.RecordTypeDirectory, c.records[0].Type)
	require.Equal(t, importer.RecordTypeFile, c.records[1].Type)
}

func TestWalkSchemePrefix(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x"), "x")

	c := collect(t, "fs://"+root)
	require.Equal(t, []string{root, filepath.Join(root, "x")}, pathnames(c.records))
}

func TestWalkNonexistentRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")

	c := collect(t, root)
	require.Empty(t, c.records)
	require.Len(t, c.errors, 1)
	require.True(t, errors.Is(c.errors[0], os.ErrNotExist))
}

func TestWalkRootIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.txt")
	writeFile(t, path, "single")

	c := collect(t, path)
	require.Equal(t, []string{path}, pathnames(c.records))
	require.Equal(t, importer.RecordTypeFile, c.records[0].Type)
}

func TestWalkFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "target.txt"), "target")
	writeFile(t, filepath.Join(outside, "dir", "inner.txt"), "inner")

	require.NoError(t, os.Symlink(filepath.Join(outside, "target.txt"), filepath.Join(root, "file-link")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "dir"), filepath.Join(root, "dir-link")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "nowhere"), filepath.Join(root, "broken-link")))

	c := collect(t, root)
	require.Equal(t, []string{
		root,
		filepath.Join(root, "dir-link"),
		filepath.Join(root, "dir-link", "inner.txt"),
		filepath.Join(root, "file-link"),
	}, pathnames(c.records))
	require.Equal(t, importer.RecordTypeDirectory, c.records[1].Type)
	require.Equal(t, importer.RecordTypeFile, c.records[3].Type)

	require.Len(t, c.errors, 1)
	require.Equal(t, filepath.Join(root, "broken-link"), c.errors[0].Pathname)
}

func TestWalkSymlinkLoop(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "file.txt"), "x")
	require.NoError(t, os.Symlink(root, filepath.Join(root, "sub", "loop")))

	c := collect(t, root)
	require.Equal(t, []string{
		root,
		filepath.Join(root, "sub"),
		filepath.Join(root, "sub", "file.txt"),
	}, pathnames(c.records))

	require.Len(t, c.errors, 1)
	require.Equal(t, filepath.Join(root, "sub", "loop"), c.errors[0].Pathname)
	require.ErrorIs(t, c.errors[0], importer.ErrSymlinkLoop)
}

func TestWalkUnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "locked", "hidden.txt"), "x")
	writeFile(t, filepath.Join(root, "open.txt"), "x")
	require.NoError(t, os.Chmod(filepath.Join(root, "locked"), 0o000))
	t.Cleanup(func() { os.Chmod(filepath.Join(root, "locked"), 0o755) })

	c := collect(t, root)
	require.Equal(t, []string{
		root,
		filepath.Join(root, "locked"),
		filepath.Join(root, "open.txt"),
	}, pathnames(c.records))
	require.Len(t, c.errors, 1)
	require.ErrorIs(t, c.errors[0], os.ErrPermission)
}

func TestWalkStopsOnCallbackError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a"), "a")
	writeFile(t, filepath.Join(root, "b"), "b")

	imp, err := importer.NewImporter(root)
	require.NoError(t, err)

	stop := errors.New("stop")
	seen := 0
	err = imp.Walk(func(result importer.ScanResult) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 2, seen)
}
