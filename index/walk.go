package index

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/codectx-dev/codectx/language"
)

// IgnoreChecker filters paths during the walk. Directories reporting true
// from ShouldIgnoreDir are pruned before descent.
type IgnoreChecker interface {
	ShouldIgnore(absolutePath string) bool
	ShouldIgnoreDir(absolutePath string) bool
}

// candidate is one file the walker accepted for extraction.
type candidate struct {
	absPath string
	relPath string // forward slashes, relative to the root
	info    fs.FileInfo
}

// walkTree yields every candidate source file under rootDir: allow-listed
// extension, not ignored. Ignored directories are pruned before descent so
// dependency trees are never traversed. Unreadable directories and symlink
// cycles are skipped without aborting the walk.
func walkTree(rootDir string, checker IgnoreChecker, visit func(candidate)) error {
	return filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Permission errors and dangling entries: skip, keep walking siblings.
			return nil
		}
		if d.IsDir() {
			if path != rootDir && checker.ShouldIgnoreDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !language.IsSourceFile(path) {
			return nil
		}
		if checker.ShouldIgnore(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		relPath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return nil
		}
		visit(candidate{
			absPath: path,
			relPath: filepath.ToSlash(relPath),
			info:    info,
		})
		return nil
	})
}
