package main

// typedef unsigned char byte;
// void Tone(void *data, byte *stream, int len);
import "C"
import (
	"sync/atomic"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	/// SampleRate of the audio device and any recording.
	///
	SampleRate = 22050

	/// ToneFrequency is the pitch of the buzzer in Hz.
	///
	ToneFrequency = 440

	/// Volume of the buzzer, in the range [0,1].
	///
	Volume = 0.25
)

var (
	/// toneOn is read by the audio thread, so it can't be a plain bool.
	///
	toneOn atomic.Bool

	/// phase is the sample position within the square wave. Only the
	/// audio callback touches it.
	///
	phase int
)

/// Initialize an audio device for the CHIP-8 virtual machine.
///
func InitAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_F32,
		Channels: 1,
		Samples:  512,
		Callback: sdl.AudioCallback(C.Tone),
	}

	// open the device
	if err := sdl.OpenAudio(spec, nil); err != nil {
		return err
	}

	// start playing silence immediately
	sdl.PauseAudio(false)
	return nil
}

/// SetTone turns the buzzer on or off.
///
func SetTone(on bool) {
	toneOn.Store(on)
}

//export Tone
func Tone(_ unsafe.Pointer, stream *C.byte, length C.int) {
	buf := unsafe.Slice((*C.float)(unsafe.Pointer(stream)), int(length)/4)

	if !toneOn.Load() {
		for i := range buf {
			buf[i] = 0
		}

		phase = 0
		return
	}

	period := SampleRate / ToneFrequency

	// fill in the data with a square wave
	for i := range buf {
		if phase < period/2 {
			buf[i] = Volume
		} else {
			buf[i] = -Volume
		}

		if phase++; phase >= period {
			phase = 0
		}
	}
}
