package main

// Default command-line flag values
const (
	defaultSampleRate = 48000 // DAT/DVD sample rate
	defaultFrequency  = 440.0 // A4 test tone
	defaultDuration   = 1.0   // Tone length when the envelope has no length
)

// Argument limits
const (
	minRequiredArgs    = 1 // output.wav
	maxArgs            = 2 // input.wav output.wav
	minSampleRate      = 8000
	maxSampleRate      = 384000
	maxDurationSeconds = 3600
	nyquistDivisor     = 2
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// Tone and WAV constants
const (
	wavFormatPCM  = 1   // WAVE_FORMAT_PCM
	toneAmplitude = 0.8 // Peak level of the generated tone
	monoChannels  = 1
)
