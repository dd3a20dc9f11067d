package mathutil

// Fixed-point format of envelope channel values
const (
	fixedFractionBits = 10                     // Fractional bits per value
	fixedOne          = 1 << fixedFractionBits // Encoded representation of 1.0
)

// Bezier root selection
const (
	rootTolerance = 1e-4 // Slack above 1.0 accepted when picking a root in [0, 1]
)
