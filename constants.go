package envelope

// Channel constants
const (
	MaxChannels     = 4   // Maximum number of channels per envelope
	allChannelsMask = 0xf // Mask selecting every channel in FindTopBottom
)

// MaxNameLength is the maximum length of an envelope name in bytes.
const MaxNameLength = 31

// Bounds sentinels, reset by FindTopBottom before scanning the points
const (
	boundsTopSentinel    = -1e9
	boundsBottomSentinel = 1e9
)

// Time units
const (
	millisPerSecond = 1000.0 // Point times are stored in milliseconds
)

// Point record layout
const (
	recordFieldSize  = 4 // Bytes per int32 field
	recordArrayCount = 5 // Values plus four tangent delta arrays
	recordFieldCount = 2 + recordArrayCount*MaxChannels

	// PointRecordSize is the size of an encoded point record in bytes.
	PointRecordSize = recordFieldCount * recordFieldSize
)

// Rasterization
const (
	minRasterSamples = 2 // A polyline needs both endpoints
)
