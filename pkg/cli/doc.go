// Package cli implements the plugingen command line.
//
// # Commands
//
//	plugingen generate --source-dir src/main/java --source-out gen/src --class-out gen/res \
//	    -A cubeengine.module.version=1.2.0
//	plugingen generate --declarations plugins.yaml --dry-run
//	plugingen generate --source-dir src/main/java --watch --watch-delay 1s
//	plugingen check build/resources/main/META-INF/sponge_plugins.json
//	plugingen version
//
// Settings not given as flags come from the environment (see package config).
package cli
