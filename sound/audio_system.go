package sound

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

const sampleRate = 44100

// AudioSystem handles all audio playback
type AudioSystem struct {
	audioContext *audio.Context
	effects      map[Effect][]byte
	players      map[Effect]*audio.Player
	bgmPlayer    *audio.Player
	bgmFile      io.Closer
	volume       float64
	muted        bool
}

// NewAudioSystem creates a new audio system with synthesized effects
func NewAudioSystem(volume float64, muted bool) *AudioSystem {
	return &AudioSystem{
		audioContext: audio.NewContext(sampleRate),
		effects:      synthesizeAll(sampleRate),
		players:      make(map[Effect]*audio.Player),
		volume:       volume,
		muted:        muted,
	}
}

// Play plays a sound effect from the beginning, cutting off any previous
// playback of the same effect.
func (s *AudioSystem) Play(e Effect) {
	if s.muted {
		return
	}
	p, ok := s.players[e]
	if !ok {
		data, known := s.effects[e]
		if !known {
			return
		}
		p = s.audioContext.NewPlayerFromBytes(data)
		s.players[e] = p
	}
	p.SetVolume(s.volume)
	if err := p.SetPosition(0); err != nil {
		return
	}
	p.Play()
}

func (s *AudioSystem) PlayRoll() { s.Play(EffectRoll) }
func (s *AudioSystem) PlayPig() { s.Play(EffectPig) }
func (s *AudioSystem) PlayClick() { s.Play(EffectClick) }
func (s *AudioSystem) PlayWin() { s.Play(EffectWin) }

// PlayBGM starts looping background music from an mp3 or ogg file
func (s *AudioSystem) PlayBGM(path string) error {
	s.StopBGM()

	// Open the audio file
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}

	var stream io.ReadSeeker
	var length int64

	// Determine file type and create appropriate stream
	switch strings.ToLower(path[strings.LastIndex(path, ".")+1:]) {
	case "mp3":
		st, derr := mp3.DecodeWithSampleRate(sampleRate, file)
		if derr != nil {
			file.Close()
			return fmt.Errorf("failed to decode audio file: %w", derr)
		}
		stream, length = st, st.Length()
	case "ogg":
		st, derr := vorbis.DecodeWithSampleRate(sampleRate, file)
		if derr != nil {
			file.Close()
			return fmt.Errorf("failed to decode audio file: %w", derr)
		}
		stream, length = st, st.Length()
	default:
		file.Close()
		return fmt.Errorf("unsupported audio format: %s", path)
	}

	player, err := s.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to create audio player: %w", err)
	}

	s.bgmFile = file
	s.bgmPlayer = player
	s.bgmPlayer.SetVolume(s.volume)
	if !s.muted {
		s.bgmPlayer.Play()
	}
	return nil
}

// StopBGM stops the background music
func (s *AudioSystem) StopBGM() {
	if s.bgmPlayer != nil {
		s.bgmPlayer.Close()
		s.bgmPlayer = nil
	}
	if s.bgmFile != nil {
		s.bgmFile.Close()
		s.bgmFile = nil
	}
}

func (s *AudioSystem) Close() {
	s.StopBGM()
	for _, p := range s.players {
		p.Close()
	}
}
