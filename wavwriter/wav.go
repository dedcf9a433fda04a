// Package wavwriter records the buzzer to disk as a WAV file. Audio data is
// buffered in memory in its entirety and written to disk when mixing ends.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/youpy/go-wav"
)

// amplitude of the square wave as a signed 16-bit sample.
const amplitude = 8192

// toneFrequency is the pitch of the recorded buzzer in Hz.
const toneFrequency = 440

// framesPerSecond is the rate SetAudio is called at.
const framesPerSecond = 60

// WavWriter accumulates one buffer of samples per emulated frame.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []wav.Sample

	// phase is the position within the square wave, carried across frames.
	phase int
}

// New creates a writer that will save to filename when EndMixing is called.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate < toneFrequency*2 {
		return nil, fmt.Errorf("wavwriter: sample rate %d too low", sampleRate)
	}

	ww := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]wav.Sample, 0),
	}

	return ww, nil
}

// SetAudio appends the given number of frames of audio, either the buzzer
// tone or silence.
func (ww *WavWriter) SetAudio(frames int, on bool) {
	n := frames * ww.sampleRate / framesPerSecond
	period := ww.sampleRate / toneFrequency

	for i := 0; i < n; i++ {
		w := wav.Sample{}

		if on {
			if ww.phase < period/2 {
				w.Values[0] = amplitude
			} else {
				w.Values[0] = -amplitude
			}

			if ww.phase++; ww.phase >= period {
				ww.phase = 0
			}
		} else {
			ww.phase = 0
		}

		ww.buffer = append(ww.buffer, w)
	}
}

// Samples returns the number of samples recorded so far.
func (ww *WavWriter) Samples() int {
	return len(ww.buffer)
}

// EndMixing writes the recorded audio to disk.
func (ww *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(ww.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(ww.buffer)), 1, uint32(ww.sampleRate), 16)
	if enc == nil {
		return fmt.Errorf("wavwriter: bad parameters for wav encoding")
	}

	if err := enc.WriteSamples(ww.buffer); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
