// Package sound plays the short feedback clip.
package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"savings/assets"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// Player plays the feedback clip once without waiting for it to finish.
type Player interface {
	Play() error
}

// ErrClosed is returned by Play after Close.
var ErrClosed = errors.New("sound: player closed")

// Nop is a Player that never makes a sound.
type Nop struct{}

// Play implements Player.
func (Nop) Play() error { return nil }

// fallbackRate is used when the clip has to be synthesised.
const fallbackRate = beep.SampleRate(44100)

// BeepPlayer plays a decoded clip through the system speaker.
// The speaker is initialised on the first Play.
type BeepPlayer struct {
	mu          sync.Mutex
	clip        *beep.Buffer
	mixer       *beep.Mixer
	initialized bool
	initErr     error
	closed      bool
	initSpeaker func(beep.SampleRate, int) error
}

// NewBeepPlayer loads the clip at path, or the embedded clip when path is
// empty. A clip that fails to decode is replaced by a synthesised tone and
// the decode error is returned alongside the usable player.
func NewBeepPlayer(path string) (*BeepPlayer, error) {
	p := &BeepPlayer{
		mixer:       &beep.Mixer{},
		initSpeaker: speaker.Init,
	}

	clip, err := loadClip(path)
	if err != nil {
		clip = toneBuffer(1046.5, 150*time.Millisecond)
	}
	p.clip = clip
	return p, err
}

func loadClip(path string) (*beep.Buffer, error) {
	var r io.ReadCloser
	if path == "" {
		r = io.NopCloser(bytes.NewReader(assets.BeepWAV))
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open clip: %w", err)
		}
		r = f
	}
	defer r.Close()
	return decodeWAV(r)
}

// decodeWAV reads a whole WAV stream into memory so it can be replayed.
func decodeWAV(r io.Reader) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode clip: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode clip: %w", err)
	}
	if buf.Len() == 0 {
		return nil, errors.New("decode clip: empty clip")
	}
	return buf, nil
}

// ClipDuration returns the length of the loaded clip.
func (p *BeepPlayer) ClipDuration() time.Duration {
	return p.clip.Format().SampleRate.D(p.clip.Len())
}

// Play queues the clip on the speaker. Speaker initialisation errors are
// sticky: once the device is unavailable every Play returns the same error.
func (p *BeepPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if err := p.initLocked(); err != nil {
		return err
	}

	speaker.Lock()
	p.mixer.Add(p.clip.Streamer(0, p.clip.Len()))
	speaker.Unlock()
	return nil
}

func (p *BeepPlayer) initLocked() error {
	if p.initialized {
		return p.initErr
	}
	p.initialized = true

	rate := p.clip.Format().SampleRate
	if err := p.initSpeaker(rate, rate.N(100*time.Millisecond)); err != nil {
		p.initErr = fmt.Errorf("sound: init speaker: %w", err)
		return p.initErr
	}
	speaker.Play(p.mixer)
	return nil
}

// Close stops anything still playing. Play fails afterwards.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	if p.initialized && p.initErr == nil {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

// tone is a sine oscillator with a short linear fade at both ends.
type tone struct {
	freq     float64
	rate     beep.SampleRate
	position int
	length   int
	fade     int
}

// Tone returns a sine streamer of the given frequency and duration.
func Tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	return &tone{freq: freq, rate: rate, length: n, fade: rate.N(5 * time.Millisecond)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		env := 1.0
		if t.fade > 0 {
			env = math.Min(1, float64(t.position)/float64(t.fade))
			env = math.Min(env, float64(t.length-t.position)/float64(t.fade))
		}
		val := 0.5 * env * math.Sin(2*math.Pi*t.freq*float64(t.position)/float64(t.rate))
		samples[i][0] = val
		samples[i][1] = val
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func toneBuffer(freq float64, d time.Duration) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: fallbackRate, NumChannels: 2, Precision: 2})
	buf.Append(Tone(freq, d, fallbackRate))
	return buf
}
