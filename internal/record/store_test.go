package record

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/treykane/genssh/internal/model"
)

func TestMarshalLayout(t *testing.T) {
	b, err := Marshal(model.ConnectionRecord{Host: "example.com", Port: 2222, User: "alice", Pass: model.MaskedPassword})
	require.NoError(t, err)

	want := "{\n" +
		"    \"host\": \"example.com\",\n" +
		"    \"port\": 2222,\n" +
		"    \"user\": \"alice\",\n" +
		"    \"pass\": \"****\"\n" +
		"}"
	require.Equal(t, want, string(b))
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := NewStore(afero.NewMemMapFs())
	rec := model.ConnectionRecord{Host: "server", Port: 22, User: "bob", Pass: model.MaskedPassword}

	require.NoError(t, s.Write("ssh.json", rec))
	got, err := s.Read("ssh.json")
	require.NoError(t, err)
	require.Equal(t, rec, got)
}

func TestWriteOverwritesExisting(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "ssh.json", []byte(`{"host":"a-much-longer-previous-host-name.example.org","port":1,"user":"old","pass":"****","extra":true}`), 0o644))

	s := NewStore(mem)
	rec := model.ConnectionRecord{Host: "h", Port: 22, User: "u", Pass: model.MaskedPassword}
	require.NoError(t, s.Write("ssh.json", rec))

	b, err := afero.ReadFile(mem, "ssh.json")
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded, 4)
	require.Equal(t, "h", decoded["host"])
}

func TestWriteUnwritablePath(t *testing.T) {
	s := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	err := s.Write("ssh.json", model.ConnectionRecord{Host: "h", Port: 22, User: "u", Pass: model.MaskedPassword})
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot write ssh.json")
}

func TestWriteMissingDirectoryOnDisk(t *testing.T) {
	s := NewStore(nil)
	path := filepath.Join(t.TempDir(), "missing", "ssh.json")
	err := s.Write(path, model.ConnectionRecord{Host: "h", Port: 22, User: "u", Pass: model.MaskedPassword})
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadMissing(t *testing.T) {
	s := NewStore(afero.NewMemMapFs())
	_, err := s.Read("nope.json")
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "descriptor not found")
}

func TestReadMalformed(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "bad.json", []byte("{"), 0o644))
	_, err := NewStore(mem).Read("bad.json")
	require.ErrorContains(t, err, "parse bad.json")
}
