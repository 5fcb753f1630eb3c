package manifestmf

import (
	"testing"

	"github.com/cubeengine/plugingen/pkg/codegen"
	"github.com/cubeengine/plugingen/pkg/codegen/packages"
	"github.com/cubeengine/plugingen/pkg/plugins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator()
	desc := &plugins.Descriptor{SimpleName: "Foo", Package: "demo"}

	files, err := gen.Generate(&packages.GenerateRequest{Descriptor: desc, Metadata: &packages.Metadata{}})
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, codegen.LocationClassOutput, files[0].Location)
	assert.Equal(t, "META-INF/MANIFEST.MF", files[0].Path)
	assert.Equal(t, "Manifest-Version: 1.0\n", string(files[0].Content))
	assert.Equal(t, int64(22), files[0].Size)
}

func TestGenerator_Metadata(t *testing.T) {
	gen := NewGenerator()
	assert.Equal(t, "manifestmf", gen.GetName())
	assert.Equal(t, []string{ManifestPath}, gen.GetConfigFiles(&plugins.Descriptor{}))
}

func TestGenerator_Generate_InvalidRequest(t *testing.T) {
	_, err := NewGenerator().Generate(&packages.GenerateRequest{Descriptor: &plugins.Descriptor{SimpleName: "Foo"}})
	assert.True(t, packages.IsMissingRequiredFieldError(err))
}
