package plugins

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// LoadedManifest is a manifest together with the file it was read from
type LoadedManifest struct {
	Path     string
	Manifest *Manifest
}

// ManifestLoader finds generated Sponge manifests below output directories
type ManifestLoader struct {
	dirs []string
	log  *logrus.Logger
}

// NewManifestLoader creates a loader over the given directories
func NewManifestLoader(dirs []string, log *logrus.Logger) *ManifestLoader {
	if log == nil {
		log = logrus.New()
	}

	return &ManifestLoader{
		dirs: dirs,
		log:  log,
	}
}

// DiscoverManifests walks every directory and loads each ManifestFile
// found. Missing directories are skipped; manifests that fail to parse are
// skipped with a warning.
func (l *ManifestLoader) DiscoverManifests(ctx context.Context) ([]LoadedManifest, error) {
	var manifests []LoadedManifest

	for _, dir := range l.dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			l.log.Debugf("Manifest directory does not exist: %s", dir)
			continue
		}

		err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				l.log.Warnf("Failed to read %s: %v", path, err)
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if entry.IsDir() || !isManifestFile(dir, path) {
				return nil
			}

			manifest, err := LoadManifest(path)
			if err != nil {
				l.log.Warnf("Failed to load manifest from %s: %v", path, err)
				return nil
			}

			l.log.Debugf("Loaded manifest %s with %d plugins", path, len(manifest.Plugins))
			manifests = append(manifests, LoadedManifest{Path: path, Manifest: manifest})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return manifests, nil
}

// isManifestFile reports whether path ends in ManifestFile
func isManifestFile(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	return rel == ManifestFile || strings.HasSuffix(rel, "/"+ManifestFile)
}
