package resource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cairn-web/cairn"
)

// A Resolver maps request paths onto files under a root directory,
// refusing any path that would land outside of it.
type Resolver struct {
	root          string
	indexFiles    bool
	allowSymlinks bool
}

// A ResolverOptFn configures a Resolver when constructing a new one.
type ResolverOptFn func(*Resolver)

// WithRoot sets the directory resolved paths are contained within.
//
// Without a root, Resolve trusts its caller:
// paths stand alone and receive no containment check.
func WithRoot(root string) func(*Resolver) {
	return func(r *Resolver) {
		r.root = root
	}
}

// WithIndexFiles sets whether a directory resolves to the first "index.*"
// file inside it. On by default.
func WithIndexFiles(on bool) func(*Resolver) {
	return func(r *Resolver) {
		r.indexFiles = on
	}
}

// WithSymlinks sets whether a path may follow symlinks out of the root.
//
// Even then, a path spelling out a ".." segment never resolves;
// only links planted under the root may lead outside it.
// Off by default.
func WithSymlinks(on bool) func(*Resolver) {
	return func(r *Resolver) {
		r.allowSymlinks = on
	}
}

// NewResolver constructs a *Resolver using the ResolverOptFns passed in.
func NewResolver(opts ...ResolverOptFn) *Resolver {
	r := &Resolver{indexFiles: true}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve turns rel into the [FilePath] it names under the Resolver's root.
//
// An empty rel or "/" names the root itself,
// and so its index file when the root is a directory.
//
// Every way rel can miss - nothing there, a directory with no index file,
// a path escaping the root - returns an error wrapping [cairn.ErrNotExist]:
// the absence of a safe file is indistinguishable from the absence of any file.
func (r *Resolver) Resolve(rel string) (FilePath, error) {
	if r.root == "" {
		return r.entry(rel)
	}

	canonRoot, err := filepath.EvalSymlinks(r.root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", cairn.ErrNotExist, rel, err)
	}

	canon, err := filepath.EvalSymlinks(filepath.Join(r.root, rel))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", cairn.ErrNotExist, rel, err)
	}

	if !contained(canonRoot, canon) && !(r.allowSymlinks && !hasDotDot(rel)) {
		return "", fmt.Errorf("%w: %s escapes %s", cairn.ErrNotExist, rel, r.root)
	}

	return r.entry(canon)
}

// entry admits path as a resolved file,
// trading a directory for its index file when configured to.
func (r *Resolver) entry(path string) (FilePath, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", cairn.ErrNotExist, path)
	}

	if fi.IsDir() {
		if !r.indexFiles {
			return "", fmt.Errorf("%w: %s is a directory", cairn.ErrNotExist, path)
		}

		return r.index(path)
	}

	if !fi.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", cairn.ErrNotExist, path)
	}

	return FilePath(path), nil
}

// index picks the first entry of dir - in name order - called "index.*".
func (r *Resolver) index(dir string) (FilePath, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", cairn.ErrNotExist, dir, err)
	}

	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(strings.ToLower(e.Name()), "index.") {
			return FilePath(filepath.Join(dir, e.Name())), nil
		}
	}

	return "", fmt.Errorf("%w: no index file in %s", cairn.ErrNotExist, dir)
}

// contained reports whether canon is root itself or sits under it.
//
// The separator matters: /srv must not claim /srv-other.
func contained(root, canon string) bool {
	if canon == root {
		return true
	}

	return strings.HasPrefix(canon, root+string(filepath.Separator))
}

// hasDotDot reports whether the raw, uncanonicalized rel
// spells out a ".." traversal segment.
func hasDotDot(rel string) bool {
	isSep := func(r rune) bool { return r == '/' || r == filepath.Separator }
	for _, seg := range strings.FieldsFunc(rel, isSep) {
		if seg == ".." {
			return true
		}
	}

	return false
}
