// Command envelope-wav previews a sound envelope by applying it as a volume
// curve to a WAV file or a generated sine tone.
//
// Usage:
//
//	envelope-wav -env fade.yaml output.wav                 # 440 Hz tone, envelope length
//	envelope-wav -env fade.yaml -duration 4 output.wav     # loop the envelope for 4 seconds
//	envelope-wav -env fade.yaml input.wav output.wav       # apply to an existing file
//
// The envelope loops over its end time, as sound envelopes do in the game.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/88998347/ddnet-android-ci/internal/envfile"
)

// ErrInvalidConfig indicates invalid command-line parameters.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the parameters of one rendering run.
type Config struct {
	EnvelopePath string
	InputPath    string // empty to generate a tone
	OutputPath   string

	SampleRate int     // tone sample rate in Hz
	BitDepth   int     // tone bit depth
	Frequency  float64 // tone frequency in Hz
	Duration   float64 // seconds, 0 for the envelope's end time
	Channel    int     // envelope channel used as gain
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.EnvelopePath == "" {
		return fmt.Errorf("%w: envelope file is required", ErrInvalidConfig)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output file is required", ErrInvalidConfig)
	}
	if c.SampleRate < minSampleRate || c.SampleRate > maxSampleRate {
		return fmt.Errorf("%w: sample rate must be %d-%d Hz", ErrInvalidConfig, minSampleRate, maxSampleRate)
	}
	switch c.BitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return fmt.Errorf("%w: bit depth must be 16, 24 or 32", ErrInvalidConfig)
	}
	if c.Frequency <= 0 || c.Frequency >= float64(c.SampleRate)/nyquistDivisor {
		return fmt.Errorf("%w: frequency must be in (0, %d) Hz", ErrInvalidConfig, c.SampleRate/nyquistDivisor)
	}
	if c.Duration < 0 || c.Duration > maxDurationSeconds {
		return fmt.Errorf("%w: duration must be 0-%d seconds", ErrInvalidConfig, maxDurationSeconds)
	}
	if c.Channel < 0 {
		return fmt.Errorf("%w: channel must not be negative", ErrInvalidConfig)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	envPath := flag.String("env", "", "Envelope YAML file (required)")
	rate := flag.Int("rate", defaultSampleRate, "Sample rate of the generated tone in Hz")
	bits := flag.Int("bits", bitsPerSample16, "Bit depth of the generated tone: 16, 24, 32")
	freq := flag.Float64("freq", defaultFrequency, "Frequency of the generated tone in Hz")
	duration := flag.Float64("duration", 0, "Tone length in seconds (0 = envelope end time)")
	channel := flag.Int("channel", 0, "Envelope channel used as volume")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs || len(args) > maxArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s -env envelope.yaml [options] [input.wav] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	config := Config{
		EnvelopePath: *envPath,
		OutputPath:   args[len(args)-1],
		SampleRate:   *rate,
		BitDepth:     *bits,
		Frequency:    *freq,
		Duration:     *duration,
		Channel:      *channel,
	}
	if len(args) == maxArgs {
		config.InputPath = args[0]
	}
	if err := config.Validate(); err != nil {
		return err
	}

	env, err := envfile.Load(config.EnvelopePath)
	if err != nil {
		return err
	}
	if config.Channel >= env.Channels() {
		return fmt.Errorf("%w: envelope %q has %d channel(s)", ErrInvalidConfig, env.Name(), env.Channels())
	}

	if *verbose {
		log.Printf("Envelope: %q, %d point(s), %d channel(s), end time %.3fs",
			env.Name(), env.Len(), env.Channels(), env.EndTime())
		log.Printf("Output: %s", config.OutputPath)
	}

	src, err := loadSource(&config, env.EndTime(), *verbose)
	if err != nil {
		return err
	}

	if err := applyEnvelope(env, config.Channel, src.buffer, src.bitDepth); err != nil {
		return err
	}

	if err := writeWAV(config.OutputPath, src.buffer, src.bitDepth); err != nil {
		return err
	}

	if *verbose {
		log.Printf("Wrote %d frame(s) at %d Hz", src.buffer.NumFrames(), src.buffer.Format.SampleRate)
	}
	return nil
}
