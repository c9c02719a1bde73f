package pidfile_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/settlement-go/internal/infrastructure/pidfile"
)

func TestPIDFile_AcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.pid")
	p := pidfile.New(path)

	require.NoError(t, p.Acquire())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprint(os.Getpid()), strings.TrimSpace(string(data)))

	require.NoError(t, p.Release())
	assert.NoFileExists(t, path)
	assert.NoError(t, p.Release(), "releasing twice is harmless")
}

func TestPIDFile_RejectsLiveHolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.pid")
	require.NoError(t, pidfile.New(path).Acquire())

	err := pidfile.New(path).Acquire()

	var running *pidfile.ErrAlreadyRunning
	require.ErrorAs(t, err, &running)
	assert.Equal(t, os.Getpid(), running.PID)
}

func TestPIDFile_ReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid\n"), 0644))

	assert.NoError(t, pidfile.New(path).Acquire())
}
