package wavwriter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew_RejectsLowSampleRate(t *testing.T) {
	_, err := New("out.wav", 100)
	assert.Error(t, err, "wavwriter: sample rate 100 too low")
}

func TestSetAudio(t *testing.T) {
	ww, err := New("out.wav", 6000)
	assert.NoError(t, err)

	ww.SetAudio(1, false)
	assert.Equal(t, 100, ww.Samples())
	assert.Equal(t, 0, ww.buffer[0].Values[0])

	ww.SetAudio(2, true)
	assert.Equal(t, 300, ww.Samples())
	assert.Equal(t, amplitude, ww.buffer[100].Values[0])

	// the second half of each period is negative
	period := 6000 / toneFrequency
	assert.Equal(t, -amplitude, ww.buffer[100+period-1].Values[0])

	ww.SetAudio(0, true)
	assert.Equal(t, 300, ww.Samples())
}

func TestEndMixing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buzzer.wav")

	ww, err := New(path, 6000)
	assert.NoError(t, err)

	ww.SetAudio(3, true)
	assert.NoError(t, ww.EndMixing())

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 44+2*300, len(data))
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
}

func TestEndMixing_BadPath(t *testing.T) {
	ww, err := New(filepath.Join(t.TempDir(), "missing", "buzzer.wav"), 6000)
	assert.NoError(t, err)

	err = ww.EndMixing()
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
