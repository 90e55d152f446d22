package sound

import (
	"encoding/binary"
	"math"
)

// Effect names a synthesized sound effect.
type Effect int

const (
	EffectClick Effect = iota
	EffectRoll
	EffectPig
	EffectWin
)

// tone is one segment of an effect: a decaying sine, or noise when freq is 0.
type tone struct {
	freq    float64
	seconds float64
	decay   float64
}

var effectTones = map[Effect][]tone{
	EffectClick: {{freq: 1200, seconds: 0.03, decay: 60}},
	EffectRoll:  {{seconds: 0.05, decay: 40}, {seconds: 0.04, decay: 50}, {seconds: 0.06, decay: 35}},
	EffectPig:   {{freq: 220, seconds: 0.18, decay: 8}, {freq: 160, seconds: 0.25, decay: 6}},
	EffectWin:   {{freq: 523, seconds: 0.12, decay: 4}, {freq: 659, seconds: 0.12, decay: 4}, {freq: 784, seconds: 0.3, decay: 3}},
}

func synthesizeAll(rate int) map[Effect][]byte {
	out := make(map[Effect][]byte, len(effectTones))
	for e, tones := range effectTones {
		out[e] = synthesize(rate, tones)
	}
	return out
}

// synthesize renders tones as 16-bit little-endian stereo PCM, the format
// ebiten's audio context plays.
func synthesize(rate int, tones []tone) []byte {
	var buf []byte
	seed := uint32(2463534242)
	for _, t := range tones {
		n := int(t.seconds * float64(rate))
		for i := 0; i < n; i++ {
			at := float64(i) / float64(rate)
			var v float64
			if t.freq == 0 {
				// xorshift noise
				seed ^= seed << 13
				seed ^= seed >> 17
				seed ^= seed << 5
				v = float64(int32(seed)) / math.MaxInt32
			} else {
				v = math.Sin(2 * math.Pi * t.freq * at)
			}
			v *= math.Exp(-t.decay*at) * 0.4
			sample := int16(v * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(sample))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(sample))
		}
	}
	return buf
}
