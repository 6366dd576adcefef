// Package sysfs reads and writes single-line kernel attribute nodes.
//
// Every path handed to an FS is resolved under its Root, which is empty on a
// device and points at a scratch tree in tests.
package sysfs

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// maxLine bounds how much of a node we read back; attributes are a few bytes.
const maxLine = 4096

type FS struct {
	Root string
}

func New(root string) *FS {
	return &FS{Root: root}
}

// Path resolves p under the FS root.
func (fs *FS) Path(p string) string {
	if fs == nil || fs.Root == "" {
		return p
	}
	return filepath.Join(fs.Root, p)
}

// ReadLine returns the first line of the node without its line ending.
func (fs *FS) ReadLine(path string) (string, error) {
	f, err := os.Open(fs.Path(path))
	if err != nil {
		return "", errors.Wrapf(err, "failed reading from %s", path)
	}
	defer f.Close()

	buf, err := io.ReadAll(io.LimitReader(f, maxLine))
	if err != nil {
		return "", errors.Wrapf(err, "failed reading from %s", path)
	}
	line := string(buf)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimRight(line, "\r"), nil
}

func (fs *FS) ReadInt(path string) (int, error) {
	line, err := fs.ReadLine(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer in %s", path)
	}
	return v, nil
}

// WriteLine writes s to an existing node. Nodes are never created: a missing
// attribute means the driver does not expose it.
func (fs *FS) WriteLine(path, s string) error {
	f, err := os.OpenFile(fs.Path(path), os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Wrapf(err, "failed opening %s", path)
	}
	if _, err := f.WriteString(s); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed writing '%s' > %s", s, path)
	}
	return errors.Wrapf(f.Close(), "failed closing %s", path)
}

// WriteFile writes s to a regular file, creating it if needed. It is meant for
// state we persist ourselves, not for kernel attributes.
func (fs *FS) WriteFile(path, s string) error {
	return errors.Wrapf(os.WriteFile(fs.Path(path), []byte(s), 0644), "failed storing '%s' > %s", s, path)
}

func (fs *FS) WriteInt(path string, v int) error {
	return fs.WriteLine(path, strconv.Itoa(v))
}

// Readable reports whether path exists and the caller may read it.
func (fs *FS) Readable(path string) bool {
	return unix.Access(fs.Path(path), unix.R_OK) == nil
}

// Writable reports whether path exists and the caller may write it.
func (fs *FS) Writable(path string) bool {
	return unix.Access(fs.Path(path), unix.W_OK) == nil
}

func (fs *FS) IsDir(path string) bool {
	st, err := os.Stat(fs.Path(path))
	return err == nil && st.IsDir()
}
