package resource

import (
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/cairn-web/cairn"
)

// A Descriptor carries a loaded resource and the metadata a response needs.
//
// Ownership of Content passes to whoever receives the Descriptor:
// the transport writing the body closes it, not this package.
type Descriptor struct {
	// Base name of the resource, for deriving a media type.
	Name string

	// The resource's bytes.
	Content io.ReadCloser

	// Size in bytes; negative when unknown.
	ContentLength int64

	// Modification time; zero when unknown.
	LastModified time.Time
}

// Load opens the resource behind the located origin and describes it.
//
// located must be a [FilePath] or a [BundleEntry]. Any other type is a
// hard error wrapping [cairn.ErrUnsupported] - not knowing how to look
// is a different failure than finding nothing.
//
// A directory fails as [cairn.ErrNotExist]. No failing path leaves a
// handle open.
func Load(located any) (*Descriptor, error) {
	switch l := located.(type) {
	case FilePath:
		return loadFile(string(l))

	case BundleEntry:
		return loadBundle(l)

	default:
		return nil, fmt.Errorf("%w: cannot load a %T", cairn.ErrUnsupported, located)
	}
}

func loadFile(name string) (*Descriptor, error) {
	f, err := os.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", cairn.ErrNotExist, name)
		}
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	if fi.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", cairn.ErrNotExist, name)
	}

	return &Descriptor{
		Name:          fi.Name(),
		Content:       f,
		ContentLength: fi.Size(),
		LastModified:  fi.ModTime(),
	}, nil
}

func loadBundle(entry BundleEntry) (*Descriptor, error) {
	f, err := entry.FS.Open(entry.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", cairn.ErrNotExist, entry.Name, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	if fi.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", cairn.ErrNotExist, entry.Name)
	}

	d := &Descriptor{
		Name:          path.Base(entry.Name),
		Content:       f,
		ContentLength: fi.Size(),
	}

	// A bundle may not carry sizes or timestamps; surface no metadata
	// rather than wrong metadata.
	if d.ContentLength < 0 {
		d.ContentLength = -1
	}
	if mt := fi.ModTime(); !mt.IsZero() {
		d.LastModified = mt
	}

	return d, nil
}
