package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	envelope "github.com/88998347/ddnet-android-ci"
	"github.com/88998347/ddnet-android-ci/internal/envfile"
)

func main() {
	// Command-line flags
	var (
		file    = flag.String("file", "", "Envelope YAML file")
		at      = flag.String("at", "", "Comma-separated times in seconds to evaluate, e.g. 0,0.5,1")
		samples = flag.Int("samples", 0, "Sample each channel this many times over the envelope's length")
		save    = flag.String("save", "", "Write the (sorted) envelope back to this YAML file")
		demo    = flag.Bool("demo", false, "Run a demonstration")
	)
	flag.Parse()

	if *demo {
		runDemo(os.Stdout)
		return
	}

	if *file == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -file envelope.yaml [-at 0,0.5] [-samples N]\n\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(exitUsage)
	}

	env, err := envfile.Load(*file)
	if err != nil {
		log.Fatalf("Failed to load envelope: %v", err)
	}

	describe(os.Stdout, env)

	if *at != "" {
		times, err := parseTimes(*at)
		if err != nil {
			log.Fatalf("Invalid -at: %v", err)
		}
		evaluate(os.Stdout, env, times)
	}

	if *samples > 0 {
		if err := sample(os.Stdout, env, *samples); err != nil {
			log.Fatalf("Sampling failed: %v", err)
		}
	}

	if *save != "" {
		if err := envfile.Save(*save, env); err != nil {
			log.Fatalf("Failed to save envelope: %v", err)
		}
	}
}

// parseTimes parses a comma-separated list of seconds.
func parseTimes(s string) ([]float64, error) {
	var times []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		t, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("bad time %q: %w", field, err)
		}
		times = append(times, t)
	}
	return times, nil
}

// describe prints the envelope's properties and points.
func describe(w io.Writer, env *envelope.Envelope) {
	fmt.Fprintf(w, "Envelope %q:\n", env.Name())
	fmt.Fprintf(w, "  Channels: %d\n", env.Channels())
	fmt.Fprintf(w, "  Synchronized: %v\n", env.Synchronized())
	fmt.Fprintf(w, "  Points: %d\n", env.Len())
	fmt.Fprintf(w, "  End time: %.3fs\n", env.EndTime())
	if env.Len() > 0 {
		fmt.Fprintf(w, "  Bounds: [%.4f, %.4f]\n", env.Bottom(), env.Top())
	}

	for i, p := range env.ExportPoints() {
		fmt.Fprintf(w, "  #%-3d %7dms %-6s", i, p.Time, p.Curve)
		for c := 0; c < env.Channels(); c++ {
			fmt.Fprintf(w, " %9.4f", p.Value(c))
		}
		fmt.Fprintln(w)
	}
}

// evaluate prints the envelope's value at each time.
func evaluate(w io.Writer, env *envelope.Envelope, times []float64) {
	fmt.Fprintln(w, "Evaluation:")
	for _, t := range times {
		channels, color := env.Eval(t)
		fmt.Fprintf(w, "  %8.3fs:", t)
		for c := 0; c < channels; c++ {
			fmt.Fprintf(w, " %9.4f", color[c])
		}
		fmt.Fprintln(w)
	}
}

// sample prints n evenly spaced samples of every channel.
func sample(w io.Writer, env *envelope.Envelope, n int) error {
	end := env.EndTime()
	if end <= 0 {
		end = defaultSampleSpan
	}
	// stop short of the end time, which wraps around to the start
	end -= end / float64(n)

	fmt.Fprintf(w, "Samples (%d over %.3fs):\n", n, end)
	for c := 0; c < env.Channels(); c++ {
		line, err := env.Rasterize(c, 0, end, n)
		if err != nil {
			return fmt.Errorf("channel %d: %w", c, err)
		}
		fmt.Fprintf(w, "  channel %d:", c)
		for _, v := range line.Values {
			fmt.Fprintf(w, " %.4f", v)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// demoEnvelope builds a color envelope fading from transparent black through
// a bezier bump to opaque white.
func demoEnvelope() *envelope.Envelope {
	env := envelope.New(demoChannels)
	env.SetName("demo fade")

	env.AddPoint(0, 0, 0, 0, 0)
	idx := env.AddPoint(demoMidTime, demoHalf, demoHalf, demoHalf, demoFull)
	env.AddPoint(demoEndTime, demoFull, demoFull, demoFull, demoFull)

	var b envelope.Bezier
	for c := range envelope.MaxChannels {
		b.OutDeltaX[c] = demoHandleX
		b.OutDeltaY[c] = demoHandleY
	}
	// Errors are impossible here: idx comes from AddPoint.
	_ = env.SetCurveType(idx, envelope.CurveBezier)
	_ = env.SetBezier(idx, b)
	return env
}

func runDemo(w io.Writer) {
	fmt.Fprintln(w, "=== Envelope Demo ===")

	env := demoEnvelope()
	describe(w, env)

	fmt.Fprintln(w)
	evaluate(w, env, demoTimes)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Curve types at half time:")
	for c := envelope.CurveStep; c <= envelope.CurveBezier; c++ {
		ramp := envelope.New(1)
		ramp.AddPoint(0, 0)
		ramp.AddPoint(demoEndTime, demoFull)
		_ = ramp.SetCurveType(0, c)
		_, color := ramp.Eval(envelope.MillisToSeconds(demoEndTime) / 2)
		fmt.Fprintf(w, "  %-6s %.4f\n", c, color[0])
	}

	fmt.Fprintln(w, "\n=== Demo Complete ===")
}
