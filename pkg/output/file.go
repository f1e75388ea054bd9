// Package output places sanitized text at its destination. A destination
// file is written through a temporary sibling and renamed into place only
// when the whole run succeeded, so a failed run never leaves a partial file.
package output

import (
	"os"
	"path/filepath"

	"github.com/gpak-tools/textminator/pkg/errors"
	"github.com/spf13/afero"
)

// File is a pending output file
type File struct {
	fs    afero.Fs
	path  string
	force bool
	tmp   afero.File
	done  bool
}

// Check verifies that path may be used as output. An existing file needs
// force; a directory is never accepted.
func Check(fsys afero.Fs, path string, force bool) error {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot access output file %s", path).
			WithDetail("path", path)
	}

	if info.IsDir() {
		return errors.Newf(errors.ErrFileAccess, "output path %s is a directory", path).
			WithDetail("path", path)
	}

	if !force {
		return errors.Newf(errors.ErrOutputExists, "output file %s already exists, use --force to overwrite", path).
			WithDetail("path", path)
	}

	return nil
}

// Create checks path and opens a temporary file next to it
func Create(fsys afero.Fs, path string, force bool) (*File, error) {
	if err := Check(fsys, path, force); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(fsys, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to create temporary file in %s", dir).
			WithDetail("path", path)
	}

	return &File{fs: fsys, path: path, force: force, tmp: tmp}, nil
}

// Write implements io.Writer on the temporary file
func (f *File) Write(p []byte) (int, error) {
	return f.tmp.Write(p)
}

// Path returns the final destination
func (f *File) Path() string {
	return f.path
}

// TempPath returns the temporary file being written
func (f *File) TempPath() string {
	return f.tmp.Name()
}

// Commit closes the temporary file and renames it over the destination
func (f *File) Commit() error {
	if f.done {
		return errors.New(errors.ErrInternal, "output file already finished")
	}
	f.done = true

	if err := f.tmp.Close(); err != nil {
		_ = f.fs.Remove(f.tmp.Name())
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write output").
			WithDetail("path", f.path)
	}

	// The destination may have appeared while the input was read
	if err := Check(f.fs, f.path, f.force); err != nil {
		_ = f.fs.Remove(f.tmp.Name())
		return err
	}

	if err := f.fs.Chmod(f.tmp.Name(), 0644); err != nil {
		_ = f.fs.Remove(f.tmp.Name())
		return errors.Wrap(err, errors.ErrFileWrite, "failed to set output file mode").
			WithDetail("path", f.path)
	}

	if err := f.fs.Rename(f.tmp.Name(), f.path); err != nil {
		_ = f.fs.Remove(f.tmp.Name())
		return errors.Wrapf(err, errors.ErrOutputMove, "failed to move temporary file to output %s", f.path).
			WithDetail("path", f.path).
			WithDetail("temp", f.tmp.Name())
	}

	return nil
}

// Discard closes and removes the temporary file. It is a no-op after Commit
// or a previous Discard.
func (f *File) Discard() error {
	if f.done {
		return nil
	}
	f.done = true

	_ = f.tmp.Close()
	if err := f.fs.Remove(f.tmp.Name()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to remove temporary file").
			WithDetail("temp", f.tmp.Name())
	}
	return nil
}
