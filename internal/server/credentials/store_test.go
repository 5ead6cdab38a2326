package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s, err := Load([]User{
		{Username: "alice", PasswordHash: "hash-a"},
		{Username: "bob", PasswordHash: "hash-b"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	h, ok := s.Get("alice")
	assert.True(t, ok)
	assert.Equal(t, "hash-a", h)

	_, ok = s.Get("mallory")
	assert.False(t, ok)
}

func TestLoad_DuplicateUsername(t *testing.T) {
	_, err := Load([]User{
		{Username: "alice", PasswordHash: "h1"},
		{Username: "alice", PasswordHash: "h2"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoad_EmptyFields(t *testing.T) {
	_, err := Load([]User{{Username: "", PasswordHash: "h"}})
	assert.Error(t, err)

	_, err = Load([]User{{Username: "u", PasswordHash: ""}})
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	data := `[{"username":"alice","password_hash":"hash-a"}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)

	h, ok := s.Get("alice")
	assert.True(t, ok)
	assert.Equal(t, "hash-a", h)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadFile_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
