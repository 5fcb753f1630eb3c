// Package codegen generates Sponge plugin glue for CubeEngine modules.
//
// # Overview
//
// A CubeEngine module is a plain Java class marked with @Module (or @Core
// for the single core plugin). The Sponge plugin loader cannot load such a
// class directly: it needs an @Plugin annotated wrapper class that forwards
// the engine lifecycle events, plus a META-INF/sponge_plugins.json entry
// describing the plugin. This package produces both from the declarations.
//
// # Architecture
//
// The generator is a two-phase pipeline:
//
//  1. Discovery (pkg/codegen/discovery): finds declarations, either by
//     parsing Java sources with tree-sitter or by reading a YAML
//     declarations file, and returns them as a Round
//  2. Rendering (pkg/codegen/orchestrator): for every declaration in the
//     round, appends the synthesized dependencies and runs the generators
//
// Supporting packages:
//
//   - packages: the Generator interface, plugin metadata and the registry
//   - packages/javasource: the Plugin<Name>.java wrapper class
//   - packages/sponge: META-INF/sponge_plugins.json
//   - packages/manifestmf: the placeholder META-INF/MANIFEST.MF
//   - artifacts: Filers writing generated files to disk or memory
//   - cache: parsed declarations kept between watch-mode regenerations
//   - config: shared defaults
//
// # Basic Usage
//
//	round, err := discovery.NewJavaDiscoverer("src/main/java", log).Discover(ctx)
//	if err != nil {
//		return err
//	}
//
//	filer := artifacts.NewFileSystemFiler(artifacts.DefaultConfig(), log)
//	proc := orchestrator.NewProcessor(&orchestrator.Config{
//		Options: config.Options{
//			config.OptionVersion: "1.2",
//			config.OptionID:      "teleport",
//		},
//	}, filer, log)
//
//	if _, err := proc.Process(ctx, round); err != nil {
//		return err
//	}
//	// The terminal round is a no-op
//	_, _ = proc.Process(ctx, &codegen.Round{Over: true})
//
// # Generated Files
//
// For a module Teleport in package org.cubeengine.module.teleport:
//
//	<source-out>/org/cubeengine/module/teleport/PluginTeleport.java
//	<class-out>/META-INF/sponge_plugins.json
//	<class-out>/META-INF/MANIFEST.MF
//
// The manifest resources have fixed paths, so one compilation unit can hold
// only one declaration. A second declaration fails with
// ErrFileAlreadyCreated, the same way a second write through a javac Filer
// would.
//
// # Dependencies
//
// Every emitted plugin depends on the core plugin and the Sponge API, in
// that order, after its declared dependencies:
//
//	[declared..., cubeengine_core@<libcube.version>, spongeapi@<sponge.version>]
//
// The core plugin receives both as well.
//
// # Error Handling
//
// Write failures are fatal for the compilation unit and are never retried:
//
//	ErrOutputWriteFailed     - the filer could not write a file
//	ErrFileAlreadyCreated    - a file was created twice in one unit
//	ErrInvalidDescriptor     - a declaration has no class name
//
// Files written before the failure are left in place; the next clean
// build regenerates all of them.
package codegen
