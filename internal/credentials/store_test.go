package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/cryptox"
)

func TestFromPlain_Verify(t *testing.T) {
	s := FromPlain(map[string]string{
		"user": "123456",
		"ali":  "@G00dPassw0rd",
	})

	require.True(t, s.Verify("user", []byte("123456")))
	require.True(t, s.Verify("ali", []byte("@G00dPassw0rd")))

	require.False(t, s.Verify("user", []byte("abadpassword")))
	require.False(t, s.Verify("incorrectuser", []byte("123456")))
	require.False(t, s.Verify("user", nil))
}

func TestLoadFile(t *testing.T) {
	salt := common.RandBytes(16)
	entries := []fileEntry{{
		Username: "user",
		Salt:     salt,
		Verifier: cryptox.Digest([]byte("123456"), salt),
	}}
	data, err := json.Marshal(entries)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	require.True(t, s.Verify("user", []byte("123456")))
	require.False(t, s.Verify("user", []byte("wrong")))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
}
