package audio

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
}

// DefaultAudioConfig returns sound on at 70% volume, 48 kHz
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.7,
		SampleRate:   48000,
	}
}
