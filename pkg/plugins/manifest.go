package plugins

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	// LoaderName is the Sponge plugin loader the manifest targets
	LoaderName = "java_plain"

	// LoaderVersion is the loader format version
	LoaderVersion = "1.0"

	// License is written into every manifest
	License = "GPLv3"

	// SourceVersionProperty is the manifest property carrying the source version
	SourceVersionProperty = "source-version"

	// ManifestFile is where the Sponge plugin loader looks for plugin metadata
	ManifestFile = "META-INF/sponge_plugins.json"
)

// Manifest mirrors META-INF/sponge_plugins.json
type Manifest struct {
	Loader  Loader        `json:"loader"`
	License string        `json:"license"`
	Plugins []PluginEntry `json:"plugins"`
}

// Loader identifies the plugin loader
type Loader struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// PluginEntry describes one plugin in the manifest. Field order matches the
// order the host documentation uses.
type PluginEntry struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Entrypoint   string            `json:"entrypoint"`
	Description  string            `json:"description"`
	Links        Links             `json:"links"`
	Contributors []Contributor     `json:"contributors"`
	Dependencies []Dependency      `json:"dependencies"`
	Properties   map[string]string `json:"properties"`
}

// Links holds the plugin links
type Links struct {
	Homepage string `json:"homepage"`
}

// Contributor is a plugin author entry
type Contributor struct {
	Name string `json:"name"`
}

// NewManifest wraps plugin entries in a manifest with the fixed loader and license
func NewManifest(entries ...PluginEntry) *Manifest {
	return &Manifest{
		Loader: Loader{
			Name:    LoaderName,
			Version: LoaderVersion,
		},
		License: License,
		Plugins: entries,
	}
}

// LoadManifest loads and parses a sponge_plugins.json file
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &manifest, nil
}
