package constants

// Audio Synthesis
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferMs is the speaker buffer length in milliseconds
	AudioBufferMs = 100
)
