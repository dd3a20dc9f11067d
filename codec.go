package envelope

import (
	"encoding/binary"
	"fmt"
)

// AppendBinary appends the fixed-layout record of p to b.
//
// The record is PointRecordSize bytes of little-endian int32 fields: time,
// curve type, the channel values, then the in-handle X and Y deltas and the
// out-handle X and Y deltas, each as MaxChannels entries.
func (p Point) AppendBinary(b []byte) ([]byte, error) {
	b = binary.LittleEndian.AppendUint32(b, uint32(p.Time))
	b = binary.LittleEndian.AppendUint32(b, uint32(p.Curve))
	for _, field := range p.recordArrays() {
		for _, v := range field {
			b = binary.LittleEndian.AppendUint32(b, uint32(v))
		}
	}
	return b, nil
}

// MarshalBinary encodes p as a point record.
func (p Point) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(make([]byte, 0, PointRecordSize))
}

// UnmarshalBinary decodes a point record produced by MarshalBinary.
func (p *Point) UnmarshalBinary(data []byte) error {
	if len(data) != PointRecordSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidRecord, len(data), PointRecordSize)
	}

	next := func() int32 {
		v := int32(binary.LittleEndian.Uint32(data))
		data = data[recordFieldSize:]
		return v
	}

	var decoded Point
	decoded.Time = next()
	decoded.Curve = CurveType(next())
	if !decoded.Curve.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCurveType, int32(decoded.Curve))
	}
	for _, field := range decoded.recordArrays() {
		for i := range field {
			field[i] = next()
		}
	}

	*p = decoded
	return nil
}

// recordArrays lists the per-channel arrays of p in record order.
func (p *Point) recordArrays() [recordArrayCount]*[MaxChannels]int32 {
	return [recordArrayCount]*[MaxChannels]int32{
		&p.Values,
		&p.Bezier.InDeltaX,
		&p.Bezier.InDeltaY,
		&p.Bezier.OutDeltaX,
		&p.Bezier.OutDeltaY,
	}
}
