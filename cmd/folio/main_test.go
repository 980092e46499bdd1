package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/site"
	"folio/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("FOLIO_CONTENT_DIR", "")
}

func TestPostsCommand_BuiltInCatalog(t *testing.T) {
	isolateConfig(t)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"posts"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ai-impact-on-economics\t2024-03-15\tThe Impact of AI on Economics", lines[0])
}

func TestPostsCommand_ContentFlag(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte("profile:\n  name: Test\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "posts"), 0o755))
	post := "---\ntitle: Hello\ndate: \"2023-05-01\"\n---\nBody\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posts", "hello.md"), []byte(post), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"posts", "--content", dir})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "hello\t2023-05-01\tHello\n", out.String())
}

func TestPostsCommand_MissingContentDir(t *testing.T) {
	isolateConfig(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"posts", "--content", filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, cmd.Execute())
}

func TestOpenStart(t *testing.T) {
	cat := &site.Catalog{Posts: []site.Post{{ID: "p1", Title: "One"}}}

	app := ui.NewAppModel(cat, ui.Options{})
	require.NoError(t, openStart(app, options{page: "data"}))
	assert.IsType(t, site.DataContent{}, app.Content())

	app = ui.NewAppModel(cat, ui.Options{})
	require.NoError(t, openStart(app, options{post: "p1"}))
	assert.IsType(t, site.PostDetailContent{}, app.Content())

	app = ui.NewAppModel(cat, ui.Options{})
	assert.Error(t, openStart(app, options{page: "nowhere"}))
	assert.IsType(t, site.HomeContent{}, app.Content())
}
