package audio

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingDevice struct {
	mu      sync.Mutex
	calls   []string
	playErr error
}

func (d *recordingDevice) Play() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, "play")
	return d.playErr
}

func (d *recordingDevice) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, "pause")
}

func TestQueueKeepsOrder(t *testing.T) {
	dev := &recordingDevice{}
	q := NewQueue(dev, nil)
	for i := 0; i < 50; i++ {
		q.Play()
		q.Pause()
	}
	q.Close()

	require.Len(t, dev.calls, 100)
	for i, c := range dev.calls {
		if i%2 == 0 {
			require.Equal(t, "play", c)
		} else {
			require.Equal(t, "pause", c)
		}
	}
}

func TestQueueReportsPlayErrors(t *testing.T) {
	dev := &recordingDevice{playErr: errors.New("autoplay blocked")}
	var mu sync.Mutex
	var errs []error
	q := NewQueue(dev, func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	})
	q.Play()
	q.Pause()
	q.Close()

	require.Len(t, errs, 1)
	require.Equal(t, []string{"play", "pause"}, dev.calls)
}

func TestQueueIgnoresRequestsAfterClose(t *testing.T) {
	dev := &recordingDevice{}
	q := NewQueue(dev, nil)
	q.Close()
	q.Play()
	q.Close()
	require.Empty(t, dev.calls)
}
