package glob

import (
	"io/fs"
	"os"
	"strings"

	"github.com/es-shell/esmatch/pkg/logutil"
)

var logger = logutil.GetLogger("[glob] ")

// Glob expands the pattern against the filesystem, calling cb on each path
// found. Entries of a directory are visited in lexical order. If cb returns
// false, expansion stops and Glob returns false; otherwise it returns true.
//
// The pattern is matched one path element at a time, "/" always being a
// separator. A pattern ending in "/" only yields directories, with the slash
// kept. Names starting with "." are only matched by elements that start with
// "." themselves.
func Glob(p Pattern, cb func(string) bool) bool {
	elems := splitPath(p)
	dir := ""
	if len(elems) > 1 && elems[0].Text == "" {
		elems = elems[1:]
		dir = "/"
	}
	return glob(elems, dir, cb)
}

// splitPath splits a pattern into path elements, each keeping its part of
// the quote. Runs of slashes count as one; an empty first element stands for
// a leading slash and an empty last element for a trailing one.
func splitPath(p Pattern) []Pattern {
	var elems []Pattern
	runes := []rune(p.Text)
	start := 0
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && runes[i] != '/' {
			continue
		}
		if i > start || start == 0 || i == len(runes) {
			elems = append(elems, Pattern{string(runes[start:i]), p.Quote.Tail(start)})
		}
		start = i + 1
	}
	return elems
}

// glob finds all paths matching elems in dir and calls cb on each of them. If
// cb returns false, globbing is interrupted and glob returns false.
func glob(elems []Pattern, dir string, cb func(string) bool) bool {
	// Follow path elements without wildcards directly. This is required for
	// "." and "..", which do not appear in directory listings.
	for len(elems) > 1 && !elems[0].HasWild() {
		dir += elems[0].Text + "/"
		elems = elems[1:]
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return true
		}
	}

	if len(elems) == 0 {
		return true
	}
	elem := elems[0]
	if len(elems) == 1 && !elem.HasWild() {
		if elem.Text == "" {
			// Trailing slash.
			if dir == "" {
				return true
			}
			return cb(dir)
		}
		path := dir + elem.Text
		if _, err := os.Lstat(path); err == nil {
			return cb(path)
		}
		return true
	}

	entries, err := readDir(dir)
	if err != nil {
		logger.Debugf("skipping %q: %v", dir, err)
		return true
	}
	rest := elems[1:]
	for _, entry := range entries {
		name := entry.Name()
		if !matchElement(elem, name) {
			continue
		}
		if len(rest) == 0 {
			if !cb(dir + name) {
				return false
			}
			continue
		}
		if isDir(dir+name, entry) && !glob(rest, dir+name+"/", cb) {
			return false
		}
	}
	return true
}

// readDir is just like os.ReadDir except that it treats an argument of "" as
// ".".
func readDir(dir string) ([]fs.DirEntry, error) {
	if dir == "" {
		dir = "."
	}
	return os.ReadDir(dir)
}

func isDir(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// matchElement matches a single path element against a name from a directory
// listing.
func matchElement(elem Pattern, name string) bool {
	if strings.HasPrefix(name, ".") && !strings.HasPrefix(elem.Text, ".") {
		return false
	}
	return elem.Match(name)
}
