package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	initErr error
	inits   int
	played  []beep.Streamer
	cleared int
}

func (f *fakeBackend) Init(beep.SampleRate, int) error {
	f.inits++
	return f.initErr
}

func (f *fakeBackend) Play(s ...beep.Streamer) { f.played = append(f.played, s...) }
func (f *fakeBackend) Lock()                   {}
func (f *fakeBackend) Unlock()                 {}
func (f *fakeBackend) Clear()                  { f.cleared++ }

func newTestPlayer(path string, out backend) *Player {
	p := NewPlayer(path, 0)
	p.out = out
	return p
}

func TestPlayPauseResume(t *testing.T) {
	out := &fakeBackend{}
	p := newTestPlayer("", out)

	require.NoError(t, p.Play())
	require.True(t, p.Playing())
	require.Len(t, out.played, 1)

	p.Pause()
	require.False(t, p.Playing())

	require.NoError(t, p.Play())
	require.True(t, p.Playing())
	require.Equal(t, 1, out.inits, "device opened once")
	require.Len(t, out.played, 1, "resume reuses the loop")

	require.NoError(t, p.Close())
	require.Equal(t, 1, out.cleared)
	require.False(t, p.Playing())
}

func TestPlayFailsWithoutDevice(t *testing.T) {
	out := &fakeBackend{initErr: errors.New("no device")}
	p := newTestPlayer("", out)

	err := p.Play()
	require.Error(t, err)
	require.False(t, p.Playing())

	// Pause after a failed play is harmless.
	p.Pause()
	require.NoError(t, p.Close())
	require.Zero(t, out.cleared)
}

func TestPlayRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.ogg")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o600))

	p := newTestPlayer(path, &fakeBackend{})
	err := p.Play()
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestPlayMissingFile(t *testing.T) {
	p := newTestPlayer(filepath.Join(t.TempDir(), "missing.mp3"), &fakeBackend{})
	err := p.Play()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTuneLoops(t *testing.T) {
	tune := NewTune(sampleRate)
	buf := make([][2]float64, 512)
	n, ok := tune.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 512, n)
	require.Equal(t, 512, tune.Position())

	require.NoError(t, tune.Seek(tune.Len()))
	n, ok = tune.Stream(buf)
	require.False(t, ok)
	require.Zero(t, n)

	looped := beep.Loop(-1, NewTune(sampleRate))
	for i := 0; i < 200; i++ {
		n, ok = looped.Stream(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
	}
}
