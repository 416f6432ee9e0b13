// Package sink materialises catalog entries as asset files.
package sink

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"

	"assetcreator/internal/domain"
)

// DefaultDirectory is used when no destination is supplied
const DefaultDirectory = "Assets"

var (
	ErrNoType          = errors.New("entry has no creatable type")
	ErrOutsideRoot     = errors.New("destination is outside the project root")
	ErrNotDirectory    = errors.New("destination is not a directory")
	ErrTooManyVersions = errors.New("no free file name")
)

// maxUniqueAttempts bounds the "<stem> N.asset" search
const maxUniqueAttempts = 1000

// Result describes a created asset
type Result struct {
	Entry domain.CatalogEntry
	Path  string // path relative to the project root, slash separated
	GUID  string
}

// Sink creates an instance of an entry's type and persists it
type Sink interface {
	CreateAndPersist(entry domain.CatalogEntry, destinationDirectory string) (Result, error)
}

// Header is written as the [asset] table of every file
type Header struct {
	Type    string    `toml:"type"`
	GUID    string    `toml:"guid"`
	Created time.Time `toml:"created"`
}

// FileSink writes assets below Root
type FileSink struct {
	Root string
	// Now and NewGUID are replaceable for tests
	Now     func() time.Time
	NewGUID func() string
}

// NewFileSink creates a sink rooted at the project directory root
func NewFileSink(root string) *FileSink {
	return &FileSink{
		Root:    root,
		Now:     time.Now,
		NewGUID: func() string { return uuid.NewString() },
	}
}

// CreateAndPersist implements Sink
func (s *FileSink) CreateAndPersist(entry domain.CatalogEntry, destinationDirectory string) (Result, error) {
	if destinationDirectory == "" {
		destinationDirectory = DefaultDirectory
	}

	dir, err := s.resolveDir(destinationDirectory)
	if err != nil {
		return Result{}, &InstantiationError{Op: "resolve", Path: destinationDirectory, Err: err}
	}

	if entry.Type == nil {
		return Result{}, &InstantiationError{Op: "instantiate", Path: entry.Name, Err: ErrNoType}
	}
	obj := entry.Type.New()

	guid := s.NewGUID()
	data, err := encode(Header{Type: entry.Name, GUID: guid, Created: s.Now().UTC().Truncate(time.Second)}, obj)
	if err != nil {
		return Result{}, &InstantiationError{Op: "encode", Path: entry.Name, Err: err}
	}

	target, err := uniquePath(dir, entry.FileStem)
	if err != nil {
		return Result{}, &InstantiationError{Op: "write", Path: filepath.Join(dir, entry.FileName()), Err: err}
	}

	// O_EXCL so a file that appeared after the existence check is never clobbered
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return Result{}, &InstantiationError{Op: "write", Path: target, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return Result{}, &InstantiationError{Op: "write", Path: target, Err: err}
	}
	if err := f.Close(); err != nil {
		return Result{}, &InstantiationError{Op: "write", Path: target, Err: err}
	}

	rel, err := filepath.Rel(s.Root, target)
	if err != nil {
		rel = target
	}
	rel = filepath.ToSlash(rel)

	log.Infof("Created asset %s (%s) guid=%s", rel, entry.Name, guid)
	return Result{Entry: entry, Path: rel, GUID: guid}, nil
}

// resolveDir maps a root-relative destination to an existing directory
func (s *FileSink) resolveDir(destination string) (string, error) {
	dir := filepath.Join(s.Root, filepath.FromSlash(destination))
	if filepath.IsAbs(destination) {
		dir = filepath.Clean(destination)
	}

	if !within(s.Root, dir) {
		return "", ErrOutsideRoot
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", ErrNotDirectory
	}
	return dir, nil
}

func encode(header Header, obj any) ([]byte, error) {
	var buf bytes.Buffer

	// Top-level keys of the object must come before any table header
	body, err := toml.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", obj, err)
	}
	buf.Write(body)

	head, err := toml.Marshal(struct {
		Asset Header `toml:"asset"`
	}{Asset: header})
	if err != nil {
		return nil, fmt.Errorf("failed to encode header: %w", err)
	}
	if buf.Len() > 0 {
		buf.WriteString("\n")
	}
	buf.Write(head)
	return buf.Bytes(), nil
}

// uniquePath returns dir/stem.asset, or the first free "stem N.asset"
func uniquePath(dir, stem string) (string, error) {
	candidate := filepath.Join(dir, stem+domain.AssetExtension)
	for i := 1; i <= maxUniqueAttempts; i++ {
		if _, err := os.Lstat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		} else if err != nil {
			return "", err
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s %d%s", stem, i, domain.AssetExtension))
	}
	return "", ErrTooManyVersions
}

func within(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
