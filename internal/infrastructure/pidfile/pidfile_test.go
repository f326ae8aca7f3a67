package pidfile_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/infrastructure/pidfile"
)

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "taxgame.lock")
	lock := pidfile.New(path)

	require.NoError(t, lock.Acquire())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(raw)))

	require.NoError(t, lock.Release())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// releasing twice is fine
	assert.NoError(t, lock.Release())
}

func TestAcquire_ReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxgame.lock")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid\n"), 0644))

	assert.NoError(t, pidfile.New(path).Acquire())
}

func TestAcquire_ReacquireBySameProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxgame.lock")
	lock := pidfile.New(path)
	require.NoError(t, lock.Acquire())

	assert.NoError(t, pidfile.New(path).Acquire())
}

func TestAcquire_RefusesLiveHolder(t *testing.T) {
	parent := os.Getppid()
	if parent <= 1 {
		t.Skip("no live parent process to hold the lock")
	}
	path := filepath.Join(t.TempDir(), "taxgame.lock")
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(parent)+"\n"), 0644))

	err := pidfile.New(path).Acquire()

	require.Error(t, err)
	assert.ErrorIs(t, err, pidfile.ErrSessionRunning)
	assert.Contains(t, err.Error(), strconv.Itoa(parent))
}
