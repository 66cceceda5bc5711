package sfx

import "math"

// Buffers are interleaved stereo float32 little-endian, 8 bytes per frame.
const bytesPerFrame = 8

// Generate renders kind into a fresh buffer. Output is deterministic.
func Generate(kind Kind) []byte {
	switch kind {
	case Shot:
		return genShot(620, 0.08)
	case EnemyShot:
		return genShot(380, 0.10)
	case Explosion:
		return genExplosion()
	case Hit:
		return genHit()
	case Defeat:
		return genDefeat()
	case Wave:
		return genWave()
	}
	return nil
}

func frames(seconds float64) int {
	return int(seconds * SampleRate)
}

func putStereo(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * bytesPerFrame
	for ch := 0; ch < 2; ch++ {
		buf[o+ch*4] = byte(v)
		buf[o+ch*4+1] = byte(v >> 8)
		buf[o+ch*4+2] = byte(v >> 16)
		buf[o+ch*4+3] = byte(v >> 24)
	}
}

// envelope is a linear attack followed by an exponential-ish decay, over
// normalised progress p in [0,1].
func envelope(p, attack, curve float64) float64 {
	if p < attack {
		return p / attack
	}
	return math.Pow(1-(p-attack)/(1-attack), curve)
}

// soften bends x into [-1,1] without a hard clip.
func soften(x float64) float64 {
	return math.Tanh(x)
}

// noise is a small LCG so buffers are identical run to run.
type noise uint64

func (n *noise) next() float64 {
	*n = *n*6364136223846793005 + 1442695040888963407
	return float64(int64(uint64(*n)>>33)-(1<<30)) / float64(1<<30)
}

// genShot is a short pitch-dropping square blip with a noise transient.
func genShot(freq, seconds float64) []byte {
	n := frames(seconds)
	buf := make([]byte, n*bytesPerFrame)
	ns := noise(7)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		f := freq * (1 - 0.6*p)
		phase += f / SampleRate
		sq := 1.0
		if math.Mod(phase, 1) > 0.5 {
			sq = -1
		}
		s := 0.35*sq + 0.25*ns.next()*(1-p)
		putStereo(buf, i, soften(s*envelope(p, 0.02, 2)))
	}
	return buf
}

// genExplosion is low-passed noise with a rumbling sine underneath.
func genExplosion() []byte {
	n := frames(0.55)
	buf := make([]byte, n*bytesPerFrame)
	ns := noise(31)
	lp := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		t := float64(i) / SampleRate
		cut := 0.25 * (1 - 0.8*p)
		lp += cut * (ns.next() - lp)
		rumble := math.Sin(2 * math.Pi * (55 - 25*p) * t)
		s := 1.4*lp + 0.4*rumble
		putStereo(buf, i, soften(s*envelope(p, 0.01, 1.6)))
	}
	return buf
}

// genHit is a metallic FM clang.
func genHit() []byte {
	n := frames(0.3)
	buf := make([]byte, n*bytesPerFrame)
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		t := float64(i) / SampleRate
		mod := math.Sin(2 * math.Pi * 220 * 1.41 * t)
		s := math.Sin(2*math.Pi*220*t + 3*(1-p)*mod)
		putStereo(buf, i, soften(0.7*s*envelope(p, 0.01, 2.5)))
	}
	return buf
}

// genDefeat is three falling tones.
func genDefeat() []byte {
	notes := []float64{392, 311, 196}
	return tones(notes, 0.22)
}

// genWave is a short rising arpeggio announcing new enemies.
func genWave() []byte {
	notes := []float64{262, 330, 392}
	return tones(notes, 0.09)
}

func tones(notes []float64, each float64) []byte {
	per := frames(each)
	buf := make([]byte, per*len(notes)*bytesPerFrame)
	for k, f := range notes {
		for i := 0; i < per; i++ {
			p := float64(i) / float64(per)
			t := float64(i) / SampleRate
			s := math.Sin(2*math.Pi*f*t) + 0.3*math.Sin(4*math.Pi*f*t)
			putStereo(buf, k*per+i, soften(0.5*s*envelope(p, 0.05, 1.2)))
		}
	}
	return buf
}
