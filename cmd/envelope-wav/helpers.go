package main

import (
	"fmt"
	"log"
	"math"
	"os"

	envelope "github.com/88998347/ddnet-android-ci"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// source is the audio the envelope is applied to.
type source struct {
	buffer   *audio.IntBuffer
	bitDepth int
}

// loadSource reads the input file, or generates a tone when no input is
// configured. A zero duration falls back to the envelope's end time.
func loadSource(config *Config, endTime float64, verbose bool) (*source, error) {
	if config.InputPath != "" {
		return openWAVInput(config.InputPath, verbose)
	}

	duration := config.Duration
	if duration == 0 {
		duration = endTime
	}
	if duration <= 0 {
		duration = defaultDuration
	}

	if verbose {
		log.Printf("Generating %.1f Hz tone: %.3fs at %d Hz, %d-bit",
			config.Frequency, duration, config.SampleRate, config.BitDepth)
	}
	return &source{
		buffer:   generateTone(config.SampleRate, config.BitDepth, config.Frequency, duration),
		bitDepth: config.BitDepth,
	}, nil
}

// openWAVInput opens and fully decodes a WAV file.
func openWAVInput(path string, verbose bool) (*source, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer inputFile.Close()

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode input file: %w", err)
	}

	bitDepth := int(decoder.BitDepth)
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return nil, fmt.Errorf("unsupported bit depth %d: %s", bitDepth, path)
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			buf.Format.SampleRate, buf.Format.NumChannels, bitDepth)
	}
	return &source{buffer: buf, bitDepth: bitDepth}, nil
}

// generateTone returns a mono sine tone of the given length.
func generateTone(sampleRate, bitDepth int, frequency, seconds float64) *audio.IntBuffer {
	frames := int(math.Round(seconds * float64(sampleRate)))
	peak := toneAmplitude * getMaxValue(bitDepth)
	omega := 2 * math.Pi * frequency / float64(sampleRate)

	data := make([]int, frames)
	for i := range data {
		data[i] = int(math.Round(peak * math.Sin(omega*float64(i))))
	}

	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}

// applyEnvelope scales every frame of buf by the envelope channel evaluated
// at the frame's time. Results are clipped to the bit depth's range.
func applyEnvelope(env *envelope.Envelope, channel int, buf *audio.IntBuffer, bitDepth int) error {
	gains, err := frameGains(env, channel, buf.NumFrames(), buf.Format.SampleRate)
	if err != nil {
		return err
	}

	maxVal := getMaxValue(bitDepth)
	channels := buf.Format.NumChannels
	for frame, gain := range gains {
		for ch := range channels {
			i := frame*channels + ch
			v := math.Round(float64(buf.Data[i]) * gain)
			buf.Data[i] = int(min(max(v, -maxVal-1), maxVal))
		}
	}
	return nil
}

// frameGains samples the envelope channel once per frame.
func frameGains(env *envelope.Envelope, channel, frames, sampleRate int) ([]float64, error) {
	switch {
	case frames == 0:
		return nil, nil
	case frames == 1:
		_, color := env.Eval(0)
		return []float64{color[channel]}, nil
	}

	end := float64(frames-1) / float64(sampleRate)
	line, err := env.Rasterize(channel, 0, end, frames)
	if err != nil {
		return nil, fmt.Errorf("failed to sample envelope: %w", err)
	}
	return line.Values, nil
}

// writeWAV encodes buf as a PCM WAV file at path.
func writeWAV(path string, buf *audio.IntBuffer, bitDepth int) error {
	outputFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	encoder := wav.NewEncoder(outputFile, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, wavFormatPCM)
	if err := encoder.Write(buf); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := encoder.Close(); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return outputFile.Close()
}

// getMaxValue returns the largest sample value for a bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}
