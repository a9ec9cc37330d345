// Package audio plays the card's looping background track.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// ErrUnsupportedFormat is returned for track files that are neither mp3 nor
// wav.
var ErrUnsupportedFormat = errors.New("audio: unsupported track format")

// backend is the process-wide output device. speaker.* in production.
type backend interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Clear()
}

type speakerBackend struct{}

func (speakerBackend) Init(sr beep.SampleRate, n int) error { return speaker.Init(sr, n) }
func (speakerBackend) Play(s ...beep.Streamer)              { speaker.Play(s...) }
func (speakerBackend) Lock()                                { speaker.Lock() }
func (speakerBackend) Unlock()                              { speaker.Unlock() }
func (speakerBackend) Clear()                               { speaker.Clear() }

// Player loops a single track. Play and Pause may be called from any
// goroutine.
type Player struct {
	mu          sync.Mutex
	path        string
	volume      float64
	out         backend
	initialized bool
	ctrl        *beep.Ctrl
	source      beep.StreamSeekCloser
}

// NewPlayer returns a player for the track at path. An empty path plays a
// synthesized tune. Volume is relative, base 2 (0 leaves it unchanged).
func NewPlayer(path string, volume float64) *Player {
	return &Player{path: path, volume: volume, out: speakerBackend{}}
}

// Play starts or resumes the loop. The output device is opened on first
// use, which fails on hosts without audio; callers are expected to ignore
// the error.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl != nil {
		p.out.Lock()
		p.ctrl.Paused = false
		p.out.Unlock()
		return nil
	}

	stream, err := p.open()
	if err != nil {
		return err
	}
	if !p.initialized {
		if err := p.out.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
			p.closeSource()
			return fmt.Errorf("audio: init speaker: %w", err)
		}
		p.initialized = true
	}

	p.ctrl = &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: stream,
		Base:     2,
		Volume:   p.volume,
	}}
	p.out.Play(p.ctrl)
	return nil
}

// Pause silences the loop, keeping its position.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return
	}
	p.out.Lock()
	p.ctrl.Paused = true
	p.out.Unlock()
}

// Playing reports whether the loop is audible.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return false
	}
	p.out.Lock()
	defer p.out.Unlock()
	return !p.ctrl.Paused
}

// Close stops playback and releases the track file.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		p.out.Clear()
	}
	p.ctrl = nil
	return p.closeSource()
}

func (p *Player) open() (beep.Streamer, error) {
	if p.path == "" {
		return beep.Loop(-1, NewTune(sampleRate)), nil
	}

	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("audio: open track: %w", err)
	}
	var (
		src    beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(p.path)) {
	case ".mp3":
		src, format, err = mp3.Decode(f)
	case ".wav":
		src, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(p.path))
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", filepath.Base(p.path), err)
	}
	p.source = src

	var s beep.Streamer = beep.Loop(-1, src)
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	return s, nil
}

func (p *Player) closeSource() error {
	if p.source == nil {
		return nil
	}
	err := p.source.Close()
	p.source = nil
	return err
}
