package security

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifiedErrorUnwraps(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/x/ssh.json", Err: fs.ErrPermission}
	err := NewClassifiedError("cannot write /x/ssh.json", cause)

	require.Equal(t, "cannot write /x/ssh.json", err.Error())
	require.ErrorIs(t, err, fs.ErrPermission)
	require.Equal(t, cause.Error(), DebugMessage(err))
}

func TestUserMessageFallsBack(t *testing.T) {
	require.Equal(t, "", UserMessage(nil, true))
	require.Equal(t, "plain", UserMessage(errors.New("plain"), false))
	require.Equal(t, "operation failed", UserMessage(&ClassifiedError{}, false))
}

func TestRedactMessage(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := UserMessage(NewClassifiedError("cannot write "+home+"/out/ssh.json", nil), true)
	require.Equal(t, "cannot write ~/out/ssh.json", got)

	msg := home + "/.ssh/id_ed25519 permission denied"
	require.NotEqual(t, msg, RedactMessage(msg))
	require.NotContains(t, RedactMessage(msg), home)
}
