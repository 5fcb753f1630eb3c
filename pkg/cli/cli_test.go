package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cubeengine/plugingen/pkg/config"
	"github.com/cubeengine/plugingen/pkg/observability"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fooSource = `package demo;

import org.cubeengine.processor.Module;

@Module
public class Foo {
}
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	assert.Equal(t, "plugingen", root.Name())
	for _, name := range []string{"generate", "check", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, "expected subcommand %s", name)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "plugingen version dev")
	assert.Contains(t, stdout, "Platform: ")
}

func TestGenerate_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(src, "demo", "Foo.java"), fooSource)
	sourceOut := filepath.Join(dir, "gen", "src")
	classOut := filepath.Join(dir, "gen", "res")

	_, stderr, err := execute(t, "generate",
		"--source-dir", src,
		"--source-out", sourceOut,
		"--class-out", classOut,
		"-A", "cubeengine.module.version=1.2",
		"--option", "cubeengine.module.id=foo",
	)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Generating 1 modules")

	wrapper, err := os.ReadFile(filepath.Join(sourceOut, "demo", "PluginFoo.java"))
	require.NoError(t, err)
	assert.Contains(t, string(wrapper), `public static final String FOO_ID = "cubeengine_foo";`)

	mf, err := os.ReadFile(filepath.Join(classOut, "META-INF", "MANIFEST.MF"))
	require.NoError(t, err)
	assert.Equal(t, "Manifest-Version: 1.0\n", string(mf))

	stdout, _, err := execute(t, "check", filepath.Join(classOut, "META-INF", "sponge_plugins.json"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "OK (1 plugins)")
}

func TestGenerate_DryRun(t *testing.T) {
	dir := t.TempDir()
	decls := filepath.Join(dir, "plugins.yaml")
	writeFile(t, decls, "declarations:\n  - name: Foo\n    package: demo\n")

	stdout, _, err := execute(t, "generate", "--declarations", decls, "--dry-run",
		"--source-out", filepath.Join(dir, "out"))
	require.NoError(t, err)

	assert.Contains(t, stdout, "==> source:demo/PluginFoo.java")
	assert.Contains(t, stdout, "==> class:META-INF/sponge_plugins.json")
	assert.Contains(t, stdout, "==> class:META-INF/MANIFEST.MF")
	assert.Contains(t, stdout, `"entrypoint": "demo.PluginFoo"`)

	_, err = os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(err), "dry run must not write files")
}

func TestGenerate_LogLevel(t *testing.T) {
	dir := t.TempDir()
	decls := filepath.Join(dir, "plugins.yaml")
	writeFile(t, decls, "declarations:\n  - name: Foo\n")

	_, stderr, err := execute(t, "--log-level", "warn", "generate", "--declarations", decls, "--dry-run")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Generating 1 modules")
}

func TestGenerate_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "no declarations source",
			args:    []string{"generate", "--dry-run"},
			wantErr: "source directory or a declarations file",
		},
		{
			name:    "option without key",
			args:    []string{"generate", "--declarations", "x.yaml", "-A", "=1"},
			wantErr: "missing key",
		},
		{
			name:    "missing declarations file",
			args:    []string{"generate", "--declarations", "does-not-exist.yaml", "--dry-run"},
			wantErr: "declaration discovery failed",
		},
		{
			name:    "positional arguments",
			args:    []string{"generate", "extra"},
			wantErr: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheck_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sponge_plugins.json")
	writeFile(t, path, `{"loader": {"name": "java_plain", "version": "1.0"}, "license": "GPLv3", "plugins": [{"id": "cubeengine_foo"}]}`)

	stdout, _, err := execute(t, "check", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest validation failed")
	assert.Contains(t, stdout, "plugins[0].version")
}

func TestCheck_MissingFile(t *testing.T) {
	_, _, err := execute(t, "check", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestCheck_Directory(t *testing.T) {
	dir := t.TempDir()
	decls := filepath.Join(dir, "plugins.yaml")
	writeFile(t, decls, "declarations:\n  - name: LibCube\n    package: org.cubeengine.libcube\n    core: true\n")
	classOut := filepath.Join(dir, "classes")

	_, _, err := execute(t, "generate", "--declarations", decls,
		"--source-out", filepath.Join(dir, "src"), "--class-out", classOut)
	require.NoError(t, err)

	stdout, _, err := execute(t, "check", classOut)
	require.NoError(t, err)
	assert.Contains(t, stdout, "OK (1 plugins)")
}

func TestCheck_EmptyDirectory(t *testing.T) {
	_, _, err := execute(t, "check", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no META-INF/sponge_plugins.json found")
}

func TestCheck_WarningsDoNotFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sponge_plugins.json")
	writeFile(t, path, `{"loader": {"name": "java_plain", "version": "1.0"}, "license": "GPLv3", "plugins": [{
		"id": "cubeengine_Foo", "version": "1", "entrypoint": "demo.PluginFoo",
		"dependencies": [{"id": "cubeengine_core"}, {"id": "spongeapi"}]}]}`)

	stdout, _, err := execute(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "warning: plugins[0].id")
}

func TestRunWatch_StopsWhenCanceled(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(src, "demo", "Foo.java"), fooSource)
	cfg := &config.Config{
		SourceDir: src,
		DryRun:    true,
		Watch:     true,
		Options:   config.Options{},
	}
	var logs bytes.Buffer
	log := observability.NewLogger(logrus.InfoLevel, &logs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runWatch(ctx, cfg, NewUnitRunner(cfg, log, &bytes.Buffer{}), log)
	require.NoError(t, err)
}

func TestUnitRunner_LogsCarryUnit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "demo", "Foo.java"), fooSource)

	logger, hook := logtest.NewNullLogger()
	cfg := &config.Config{SourceDir: dir, DryRun: true, Options: config.Options{}}
	var out bytes.Buffer

	ctx := observability.WithUnit(context.Background(), 7)
	files, err := NewUnitRunner(cfg, logger, &out).Run(ctx)
	require.NoError(t, err)
	assert.Len(t, files, 3)

	var messages []string
	for _, e := range hook.AllEntries() {
		if e.Level != logrus.InfoLevel {
			continue
		}
		messages = append(messages, e.Message)
		assert.Equal(t, 7, e.Data["unit"], "entry %q", e.Message)
	}
	assert.Equal(t, []string{"Generating 1 modules", "Generated 3 files for 1 declarations"}, messages)
}
