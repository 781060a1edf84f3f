// Package snapshot archives cache directories to .tar.gz files before they
// are deleted, so an over-eager clean can be undone.
package snapshot

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mholt/archives"

	"github.com/cachesweep/cachesweep/pkg/errors"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
)

// Writer creates snapshots in a fixed destination directory.
type Writer struct {
	dir string
}

// NewWriter creates a snapshot writer targeting dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the snapshot destination directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Snapshot archives sourcePath into <dir>/<tool>-<timestamp>.tar.gz and
// returns the archive path. The source must exist; the destination
// directory is created on demand.
func (w *Writer) Snapshot(ctx context.Context, tool, sourcePath string) (string, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		return "", errors.Wrapf(errors.ErrSnapshotCreate, "source %s: %v", sourcePath, err)
	}
	if err := fsutil.EnsureDir(w.dir); err != nil {
		return "", errors.Wrapf(err, "failed to create snapshot directory %s", w.dir)
	}

	name := fmt.Sprintf("%s-%s.tar.gz", sanitize(tool), time.Now().UTC().Format("20060102T150405Z"))
	archivePath := filepath.Join(w.dir, name)

	absolutePath, err := filepath.Abs(sourcePath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve source path %s", sourcePath)
	}

	root := absolutePath
	if info, err := os.Stat(absolutePath); err == nil && info.IsDir() {
		root = absolutePath + string(os.PathSeparator)
	}
	archiveFiles, err := archives.FilesFromDisk(ctx, nil, map[string]string{root: ""})
	if err != nil {
		return "", errors.Wrapf(err, "failed to read files from %s", sourcePath)
	}

	file, err := os.Create(archivePath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create snapshot file %s", archivePath)
	}
	defer func() {
		_ = file.Sync()
		_ = file.Close()
	}()

	format := archives.CompressedArchive{
		Compression: archives.Gz{},
		Archival:    archives.Tar{},
	}

	if err := format.Archive(ctx, file, archiveFiles); err != nil {
		_ = os.Remove(archivePath)
		return "", errors.Wrapf(errors.ErrSnapshotCreate, "%s: %v", sourcePath, err)
	}

	return archivePath, nil
}

// Restore extracts a snapshot archive into destDir.
func Restore(ctx context.Context, archivePath, destDir string) error {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to open snapshot %s", archivePath)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	if err := fsutil.EnsureDir(destDir); err != nil {
		return errors.Wrapf(err, "failed to create destination directory %s", destDir)
	}

	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}

		targetPath := filepath.Join(destDir, path)
		if d.IsDir() {
			return os.MkdirAll(targetPath, fsutil.DirModeDefault)
		}

		info, err := d.Info()
		if err != nil {
			return errors.Wrapf(err, "failed to get file info for %s", path)
		}

		src, err := fsys.Open(path)
		if err != nil {
			return errors.Wrapf(err, "failed to open snapshot entry %s", path)
		}
		defer func() { _ = src.Close() }()

		if err := os.MkdirAll(filepath.Dir(targetPath), fsutil.DirModeDefault); err != nil {
			return errors.Wrapf(err, "failed to create parent directory for %s", path)
		}

		dst, err := os.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
		if err != nil {
			return errors.Wrapf(err, "failed to create file %s", targetPath)
		}
		defer func() { _ = dst.Close() }()

		if _, err := io.Copy(dst, src); err != nil {
			return errors.Wrapf(err, "failed to extract %s", path)
		}
		return nil
	})
}

func sanitize(tool string) string {
	tool = strings.ToLower(strings.TrimSpace(tool))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, tool)
}
