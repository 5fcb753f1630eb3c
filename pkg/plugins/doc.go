// Package plugins models CubeEngine plugin declarations and the Sponge
// plugin manifest generated for them.
//
// A Descriptor is one class marked @Core or @Module. Every generated plugin
// depends on the core plugin (cubeengine_core) and the Sponge API
// (spongeapi); those two entries always close the dependency list of a
// manifest entry.
//
// Generated manifests can be checked after the fact:
//
//	m, err := plugins.LoadManifest("build/classes/META-INF/sponge_plugins.json")
//	if err != nil {
//		return err
//	}
//	for _, finding := range plugins.ValidateManifest(m) {
//		fmt.Println(finding)
//	}
//
// ManifestLoader finds every manifest below a set of output directories.
package plugins
