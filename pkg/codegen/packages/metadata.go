package packages

import (
	"strings"

	"github.com/cubeengine/plugingen/pkg/config"
	"github.com/cubeengine/plugingen/pkg/plugins"
)

const (
	// DisplayNamePrefix is prepended to the configured plugin name
	DisplayNamePrefix = "CubeEngine - "

	// TeamSuffix is appended to the configured team name
	TeamSuffix = " Team"
)

// Metadata is the resolved plugin identity for one declaration
type Metadata struct {
	ID            string
	Name          string
	Version       string
	Description   string
	Team          string
	URL           string
	SourceVersion string
}

// NewMetadata resolves the option lookups for a declaration
func NewMetadata(desc *plugins.Descriptor, opts config.Options) *Metadata {
	return &Metadata{
		ID:            PluginID(desc, opts),
		Name:          DisplayNamePrefix + opts.Get(config.OptionName),
		Version:       opts.Get(config.OptionVersion),
		Description:   opts.Get(config.OptionDescription),
		Team:          opts.Get(config.OptionTeam) + TeamSuffix,
		URL:           opts.GetOrDefault(config.OptionURL, ""),
		SourceVersion: opts.SourceVersion(),
	}
}

// PluginID derives the plugin id. The core declaration always gets the
// fixed core id; modules use the configured id or the lower-cased class name.
func PluginID(desc *plugins.Descriptor, opts config.Options) string {
	if desc.Core {
		return plugins.CoreID
	}
	return plugins.IDPrefix + opts.GetOrDefault(config.OptionID, strings.ToLower(desc.SimpleName))
}
