package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInitScaffold(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "my-skill")

	cmd := newInitCmd()
	cmd.SetArgs([]string{name})
	require.NoError(t, cmd.Execute())

	for _, file := range []string{"go.mod", "main.go", "impl.go", "impl_test.go", "skill.conf", "locale/de.yaml", "locale/en.yaml"} {
		_, err := os.Stat(filepath.Join(name, file))
		assert.NoError(t, err, file)
	}

	conf, err := os.ReadFile(filepath.Join(name, "skill.conf"))
	require.NoError(t, err)
	assert.Contains(t, string(conf), `name = "my-skill"`)

	// scaffolding over an existing project fails
	cmd = newInitCmd()
	cmd.SetArgs([]string{name})
	assert.Error(t, cmd.Execute())
}

func TestExtractKeys(t *testing.T) {
	dir := t.TempDir()
	src := `package main

func handler() {
	_ = t.GetText("HELLO_TEXT", "name", "Hans")
	_ = t.NGetText("ONE_ITEM", "MANY_ITEMS", 2)
	_ = t.GetAllTexts("HELLO_TEXT")
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "impl.go"), []byte(src), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`GetText("NOT_GO")`), 0o644))

	keys, err := extractKeys(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"HELLO_TEXT", "ONE_ITEM"}, keys)
}

func TestTranslateKeepsExistingTexts(t *testing.T) {
	dir := t.TempDir()
	src := `package main

func handler() {
	_ = t.GetText("HELLO_TEXT")
	_ = t.GetText("NEW_KEY")
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "impl.go"), []byte(src), 0o644))

	output := filepath.Join(dir, "locale", "template.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(output), 0o755))
	require.NoError(t, os.WriteFile(output, []byte("HELLO_TEXT:\n  - Hallo Welt!\n"), 0o644))

	cmd := newTranslateCmd()
	cmd.SetArgs([]string{dir, "-o", output})
	require.NoError(t, cmd.Execute())

	catalog := map[string][]string{}
	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(raw, &catalog))

	assert.Equal(t, []string{"Hallo Welt!"}, catalog["HELLO_TEXT"])
	assert.Equal(t, []string{""}, catalog["NEW_KEY"])
}
