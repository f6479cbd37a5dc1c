package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/cairn-web/cairn"
)

// A FilePath locates a resource on the OS filesystem.
type FilePath string

// A BundleEntry locates a resource inside an [fs.FS] packaged with the
// binary, addressed by a logical path rather than a filesystem one.
type BundleEntry struct {
	FS   fs.FS
	Name string
}

// A Finder maps a logical path to the typed locator serving it,
// checking the OS filesystem before the bundled one.
type Finder struct {
	// Remembers which origin served a name.
	//
	// The cache cannot become invalid at runtime for bundle hits since
	// the bundle is fixed at build time. If a file is removed from the
	// OS during runtime, loading the cached locator returns the same
	// not-exist as an uncached miss would.
	cache map[string]any

	resolver *Resolver
	bundle   fs.FS

	sync.Mutex
}

// NewFinder constructs a *Finder looking paths up through resolver first,
// then in bundle. Either may be nil to search only the other.
func NewFinder(resolver *Resolver, bundle fs.FS) *Finder {
	return &Finder{
		cache:    make(map[string]any),
		resolver: resolver,
		bundle:   bundle,
	}
}

// Find returns the [FilePath] or [BundleEntry] backing name,
// or an error wrapping [cairn.ErrNotExist] when neither origin has it.
func (f *Finder) Find(name string) (any, error) {
	f.Lock()
	loc, ok := f.cache[name]
	f.Unlock()
	if ok {
		return loc, nil
	}

	if f.resolver != nil {
		fp, err := f.resolver.Resolve(name)
		if err == nil {
			f.remember(name, fp)
			return fp, nil
		}

		if !errors.Is(err, cairn.ErrNotExist) {
			return nil, err
		}
	}

	if f.bundle != nil {
		entry := BundleEntry{FS: f.bundle, Name: bundlePath(name)}
		if _, err := fs.Stat(f.bundle, entry.Name); err == nil {
			f.remember(name, entry)
			return entry, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", cairn.ErrNotExist, name)
}

func (f *Finder) remember(name string, loc any) {
	f.Lock()
	f.cache[name] = loc
	f.Unlock()
}

// bundlePath converts a request path into the unrooted, slash-separated
// form [fs.FS] requires.
func bundlePath(name string) string {
	name = path.Clean("/" + name)
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "."
	}

	return name
}
