package seed

import (
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/mkarren/gitseed/internal/constants"
	"github.com/mkarren/gitseed/internal/errors"
)

const gitMetadataDir = ".git"

// OpKind identifies the file operation recorded by a commit.
type OpKind string

const (
	OpCreate OpKind = "create"
	OpModify OpKind = "modify"
	OpDelete OpKind = "delete"
)

// Operation is the outcome of one iteration's file mutation: what was done
// and to which path, relative to the repository root.
type Operation struct {
	Kind OpKind
	Path string
}

// ListFiles returns the repository's current file set as slash-separated
// paths relative to root, walked fresh on every call. The .git metadata
// directory is always excluded, as are paths matched by the repository's
// top-level .gitignore: an ignored path could never be staged, so offering
// it as a modify or delete target would only manufacture failed commits.
func ListFiles(root string) ([]string, error) {
	patterns, err := loadIgnorePatterns(root)
	if err != nil {
		return nil, err
	}
	matcher := gitignore.NewMatcher(patterns)

	var files []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if d.Name() == gitMetadataDir {
				return filepath.SkipDir
			}
			if matcher.Match(strings.Split(rel, "/"), true) {
				return filepath.SkipDir
			}
			return nil
		}

		if matcher.Match(strings.Split(rel, "/"), false) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if walkErr != nil {
		return nil, errors.NewFileError("list", root, wrapFilesystem(walkErr))
	}

	return files, nil
}

// loadIgnorePatterns parses the top-level .gitignore, if present.
func loadIgnorePatterns(root string) ([]gitignore.Pattern, error) {
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewFileError("read", ".gitignore", wrapFilesystem(err))
	}

	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns, nil
}

// CreateFile writes a new two-line text file named file_<4-digit>.txt under
// root and returns its name. The digit block is drawn at random without a
// collision check; a clash silently overwrites the existing file.
func CreateFile(rng *rand.Rand, root string) (string, error) {
	name := fmt.Sprintf("file_%d.txt", 1000+rng.Intn(9000))

	content := fmt.Sprintf("Content generated at %s\n", time.Now().Format(constants.DateFormat))
	content += fmt.Sprintf("Random data: %d\n", 1+rng.Intn(1000000))

	if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
		return "", errors.NewFileError("create", name, wrapFilesystem(err))
	}
	return name, nil
}

// ModifyFile appends two lines, a modification timestamp and a random
// integer, to an existing file. A missing target is an error, not a create.
func ModifyFile(rng *rand.Rand, root, name string) error {
	f, err := os.OpenFile(filepath.Join(root, name), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.NewFileError("modify", name, wrapFilesystem(err))
	}

	_, writeErr := fmt.Fprintf(f, "Modified at %s\nAdditional data: %d\n",
		time.Now().Format(constants.DateFormat), 1+rng.Intn(1000000))
	closeErr := f.Close()

	if writeErr != nil {
		return errors.NewFileError("modify", name, wrapFilesystem(writeErr))
	}
	if closeErr != nil {
		return errors.NewFileError("modify", name, wrapFilesystem(closeErr))
	}
	return nil
}

// DeleteFile removes the named file from the working tree. The removal still
// has to be staged before it is part of any commit.
func DeleteFile(root, name string) error {
	if err := os.Remove(filepath.Join(root, name)); err != nil {
		return errors.NewFileError("delete", name, wrapFilesystem(err))
	}
	return nil
}

// chooseOperation picks the next operation for the given file set. An empty
// set forces a create; otherwise create/modify/delete are weighted 40/40/20,
// with delete falling back to modify once the set would shrink to minKeep
// files or fewer.
func chooseOperation(rng *rand.Rand, existing []string, minKeep int) (OpKind, string) {
	if len(existing) == 0 {
		return OpCreate, ""
	}

	pick := func() string {
		return existing[rng.Intn(len(existing))]
	}

	r := rng.Float64()
	switch {
	case r < 0.4:
		return OpCreate, ""
	case r < 0.8:
		return OpModify, pick()
	default:
		if len(existing) > minKeep {
			return OpDelete, pick()
		}
		return OpModify, pick()
	}
}

// wrapFilesystem attaches the filesystem failure sentinel so callers can
// classify the error with errors.Is.
func wrapFilesystem(err error) error {
	return errors.Wrap(errors.ErrFilesystemOperationFailed, err.Error())
}
