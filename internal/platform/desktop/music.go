package desktop

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	pongaudio "github.com/vovakirdan/retro-pong/internal/audio"
)

// sampleRate of the audio context and of every decoded track.
const sampleRate = 44100

// musicBackend plays one looping track through the Ebitengine audio context.
// It implements audio.Backend.
type musicBackend struct {
	ctx    *audio.Context
	track  []byte // 16-bit little-endian stereo PCM
	player *audio.Player
	volume float64
}

func newMusicBackend(track []byte, volume float64) *musicBackend {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &musicBackend{ctx: ctx, track: track, volume: volume}
}

// State maps Ebitengine readiness onto the context states. Browsers and some
// platforms keep the context suspended until the first user gesture.
func (b *musicBackend) State() pongaudio.ContextState {
	if b.ctx.IsReady() {
		return pongaudio.ContextRunning
	}
	return pongaudio.ContextSuspended
}

// Resume is a no-op: Ebitengine resumes the context by itself on the gesture
// that pressed the button, and State observes it.
func (b *musicBackend) Resume() error {
	return nil
}

func (b *musicBackend) Play() error {
	if b.player == nil {
		loop := audio.NewInfiniteLoop(bytes.NewReader(b.track), int64(len(b.track)))
		p, err := b.ctx.NewPlayer(loop)
		if err != nil {
			return fmt.Errorf("desktop: new player: %w", err)
		}
		b.player = p
	}
	if err := b.player.Rewind(); err != nil {
		return fmt.Errorf("desktop: rewind: %w", err)
	}
	b.player.SetVolume(b.volume)
	b.player.Play()
	return nil
}

func (b *musicBackend) SetMuted(muted bool) {
	if b.player == nil {
		return
	}
	if muted {
		b.player.SetVolume(0)
		return
	}
	b.player.SetVolume(b.volume)
}

// loadTrack returns the PCM data of the music at path, or the built-in loop
// when path is empty.
func loadTrack(path string) ([]byte, error) {
	if path == "" {
		return toneLoop(sampleRate), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported music format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return pcm, nil
}

// loopNotes is the built-in arpeggio, in Hz.
var loopNotes = []float64{220.00, 261.63, 329.63, 392.00, 329.63, 261.63, 196.00, 246.94}

const (
	noteSeconds   = 0.25
	loopAmplitude = 0.18
)

// toneLoop synthesizes a square wave arpeggio as 16-bit stereo PCM. Each note
// decays linearly so consecutive notes stay distinct.
func toneLoop(rate int) []byte {
	perNote := int(float64(rate) * noteSeconds)
	buf := make([]byte, 0, perNote*len(loopNotes)*4)

	var frame [4]byte
	for _, freq := range loopNotes {
		period := float64(rate) / freq
		for i := range perNote {
			v := loopAmplitude
			if math.Mod(float64(i), period) >= period/2 {
				v = -v
			}
			v *= 1 - float64(i)/float64(perNote)

			s := uint16(int16(v * math.MaxInt16)) //nolint:gosec // |v| < 1
			binary.LittleEndian.PutUint16(frame[0:], s)
			binary.LittleEndian.PutUint16(frame[2:], s)
			buf = append(buf, frame[:]...)
		}
	}
	return buf
}
