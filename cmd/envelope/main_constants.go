package main

// Exit codes
const (
	exitUsage = 2
)

// Sampling
const (
	defaultSampleSpan = 1.0 // Seconds sampled when the envelope has no length
)

// Demo envelope
const (
	demoChannels = 4
	demoMidTime  = 500  // ms
	demoEndTime  = 1500 // ms
	demoHalf     = 512  // 0.5 in fixed point
	demoFull     = 1024 // 1.0 in fixed point
	demoHandleX  = 250  // ms
	demoHandleY  = 256  // 0.25 in fixed point
)

// Demo evaluation times in seconds
var demoTimes = []float64{0, 0.25, 0.5, 0.75, 1.0, 1.25}
