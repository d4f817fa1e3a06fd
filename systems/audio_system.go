package systems

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

const audioSampleRate = 44100

// ErrUnsupportedAudio is returned for sound files that are neither mp3 nor ogg
var ErrUnsupportedAudio = errors.New("unsupported audio format")

// AudioSystem plays a short cue whenever a new dungeon is generated
type AudioSystem struct {
	audioContext *audio.Context
	player       *audio.Player
	cue          []byte
	volume       float64
}

// NewAudioSystem decodes the cue at path and opens the audio device
func NewAudioSystem(path string, volume float64) (*AudioSystem, error) {
	cue, err := decodeCue(path, audioSampleRate)
	if err != nil {
		return nil, err
	}

	return &AudioSystem{
		audioContext: audio.NewContext(audioSampleRate),
		cue:          cue,
		volume:       clampVolume(volume),
	}, nil
}

// decodeCue reads a whole mp3 or ogg file into PCM at sampleRate
func decodeCue(path string, sampleRate int) ([]byte, error) {
	var decode func(io.Reader) (io.Reader, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		decode = func(r io.Reader) (io.Reader, error) { return mp3.DecodeWithSampleRate(sampleRate, r) }
	case ".ogg":
		decode = func(r io.Reader) (io.Reader, error) { return vorbis.DecodeWithSampleRate(sampleRate, r) }
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAudio, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	stream, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode audio file %s: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read audio file %s: %w", path, err)
	}
	return pcm, nil
}

// Listen plays the cue on every DungeonGeneratedEvent
func (s *AudioSystem) Listen(em *EventManager) {
	em.Subscribe(EventDungeonGenerated, func(Event) {
		s.Play()
	})
}

// Play restarts the cue from the beginning
func (s *AudioSystem) Play() {
	if s.player != nil {
		s.player.Close()
	}
	s.player = s.audioContext.NewPlayerFromBytes(s.cue)
	s.player.SetVolume(s.volume)
	s.player.Play()
}

// SetVolume sets the cue volume (0.0 to 1.0)
func (s *AudioSystem) SetVolume(volume float64) {
	s.volume = clampVolume(volume)
	if s.player != nil {
		s.player.SetVolume(s.volume)
	}
}

// GetVolume returns the current volume setting
func (s *AudioSystem) GetVolume() float64 {
	return s.volume
}

func (s *AudioSystem) Close() {
	if s.player != nil {
		s.player.Close()
		s.player = nil
	}
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
