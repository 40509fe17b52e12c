package main

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

var audioContext = audio.NewContext(sampleRate)

// CrashSound is a short burst of decaying noise over a low thud, generated
// once at startup.
type CrashSound struct {
	player *audio.Player
}

func NewCrashSound(seed uint64) *CrashSound {
	pcm := synthesizeCrash(rand.New(rand.NewPCG(seed, 0)), 0.6)
	return &CrashSound{player: audioContext.NewPlayerFromBytes(pcm)}
}

func (c *CrashSound) Play() {
	if c == nil || c.player == nil {
		return
	}
	_ = c.player.Rewind()
	c.player.SetVolume(0.5)
	c.player.Play()
}

// synthesizeCrash returns 16-bit little-endian stereo PCM.
func synthesizeCrash(rng *rand.Rand, seconds float64) []byte {
	n := int(seconds * sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		env := math.Exp(-t * 8)
		thud := math.Sin(2*math.Pi*55*t) * math.Exp(-t*14)
		noise := rng.Float64()*2 - 1
		v := int16(math.MaxInt16 * 0.8 * (0.6*noise*env + 0.4*thud))
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
