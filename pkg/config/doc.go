// Package config provides generator options and tool configuration.
//
// # Generator Options
//
// Options are the key/value pairs the build hands to the generator, the
// same keys an annotation processor would receive through -A flags:
//
//	cubeengine.module.version=1.2.0
//	cubeengine.module.id=teleport
//	cubeengine.module.name=Teleport
//	cubeengine.module.description="Teleport commands"
//	cubeengine.module.team=CubeEngine
//	cubeengine.module.url=https://cubeengine.org
//	cubeengine.module.libcube.version=1.0.0
//	cubeengine.module.sponge.version=11.0.0
//	cubeengine.module.sourceversion=master-abc1234
//
// Absent options read as "unknown" (the url defaults to an empty string).
// Each option may also be supplied as an environment variable named after
// the key, upper-cased with dots replaced by underscores:
//
//	CUBEENGINE_MODULE_VERSION=1.2.0
//
// Flags override the environment.
//
// # Tool Settings
//
//	PLUGINGEN_SOURCE_DIR="src/main/java"
//	PLUGINGEN_DECLARATIONS="plugins.yaml"
//	PLUGINGEN_SOURCE_OUT="build/generated/sources/plugingen"
//	PLUGINGEN_CLASS_OUT="build/generated/resources/plugingen"
//	PLUGINGEN_WATCH="false"
//	PLUGINGEN_WATCH_DELAY="500ms"
//	PLUGINGEN_DRY_RUN="false"
//	PLUGINGEN_LOG_LEVEL="info"
//
// # Usage
//
//	cfg := config.LoadConfig()
//	cfg.Options = cfg.Options.Merge(flagOptions)
//	if err := cfg.Validate(); err != nil {
//		log.Fatal(err)
//	}
package config
