package artifacts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cubeengine/plugingen/pkg/codegen"
	"github.com/sirupsen/logrus"
)

// FileSystemFiler writes generated files below two output roots
type FileSystemFiler struct {
	config  *Config
	created map[key]struct{}
	files   []codegen.GeneratedFile
	log     *logrus.Logger
}

// NewFileSystemFiler creates a filer for one compilation unit
func NewFileSystemFiler(cfg *Config, log *logrus.Logger) *FileSystemFiler {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.DirMode == 0 {
		cfg.DirMode = 0755
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = 0644
	}
	if log == nil {
		log = logrus.New()
	}

	return &FileSystemFiler{
		config:  cfg,
		created: make(map[key]struct{}),
		log:     log,
	}
}

// Create writes the file. Any I/O failure is returned wrapped in
// codegen.ErrOutputWriteFailed.
func (f *FileSystemFiler) Create(file codegen.GeneratedFile) error {
	k := keyOf(file)
	if _, exists := f.created[k]; exists {
		return codegen.NewFileAlreadyCreatedError(file.Path)
	}

	target, err := f.resolve(file)
	if err != nil {
		return codegen.NewOutputWriteFailedError(file.Path, err)
	}

	if err := os.MkdirAll(filepath.Dir(target), os.FileMode(f.config.DirMode)); err != nil {
		return codegen.NewOutputWriteFailedError(file.Path, err)
	}

	if err := os.WriteFile(target, file.Content, os.FileMode(f.config.FileMode)); err != nil {
		return codegen.NewOutputWriteFailedError(file.Path, err)
	}

	f.created[k] = struct{}{}
	f.files = append(f.files, file)
	f.log.Debugf("Wrote %s (%d bytes)", target, len(file.Content))

	return nil
}

// Created returns the files written so far
func (f *FileSystemFiler) Created() []codegen.GeneratedFile {
	return f.files
}

func (f *FileSystemFiler) resolve(file codegen.GeneratedFile) (string, error) {
	var root string
	switch file.Location {
	case codegen.LocationSourceOutput:
		root = f.config.SourceRoot
	case codegen.LocationClassOutput:
		root = f.config.ClassRoot
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLocation, file.Location)
	}

	rel := filepath.FromSlash(file.Path)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapesRoot, file.Path)
	}

	return filepath.Join(root, rel), nil
}
