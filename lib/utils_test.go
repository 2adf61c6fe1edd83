package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcludePatterns(t *testing.T) {
	contents := "# comment\n; another comment\n/abs/path\nrel/*.log  \r\n\n   \n///many\n"
	assert.Equal(t, []string{"abs/path", "rel/*.log", "many"}, ExcludePatterns(contents))
	assert.Empty(t, ExcludePatterns(""))
}

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, home, ExpandUser("~"))
	assert.Equal(t, filepath.Join(home, ".ssh", "config"), ExpandUser("~/.ssh/config"))
	assert.Equal(t, "/etc/hosts", ExpandUser("/etc/hosts"))
	assert.Equal(t, "~other/x", ExpandUser("~other/x"))
}

func TestIsReadable(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	assert.NoError(t, os.WriteFile(file, nil, 0644))
	assert.True(t, IsReadableDirectory(dir))
	assert.False(t, IsReadableDirectory(file))
	assert.True(t, IsReadableFile(file))
	assert.False(t, IsReadableFile(dir))
}
