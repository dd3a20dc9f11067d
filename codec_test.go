package envelope

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointRecordSize(t *testing.T) {
	assert.Equal(t, 88, PointRecordSize)
}

func TestPoint_BinaryRoundTrip(t *testing.T) {
	p := Point{
		Time:   -1234,
		Values: [MaxChannels]int32{1, -2, 1 << 30, -(1 << 30)},
		Curve:  CurveBezier,
		Bezier: Bezier{
			InDeltaX:  [MaxChannels]int32{-10, -20, -30, -40},
			InDeltaY:  [MaxChannels]int32{5, 6, 7, 8},
			OutDeltaX: [MaxChannels]int32{11, 22, 33, 44},
			OutDeltaY: [MaxChannels]int32{-5, -6, -7, -8},
		},
	}

	data, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, PointRecordSize)

	var decoded Point
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, p, decoded)
}

func TestPoint_RecordLayout(t *testing.T) {
	p := NewPoint(7, 100)
	p.Bezier.OutDeltaY[3] = -1

	data, err := p.MarshalBinary()
	require.NoError(t, err)

	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(data[0:]))
	assert.Equal(t, uint32(CurveLinear), binary.LittleEndian.Uint32(data[4:]))
	assert.Equal(t, uint32(100), binary.LittleEndian.Uint32(data[8:]))
	assert.Equal(t, uint32(0xffffffff), binary.LittleEndian.Uint32(data[PointRecordSize-4:]))
}

func TestPoint_AppendBinary(t *testing.T) {
	prefix := []byte{0xAA}
	out, err := NewPoint(1).AppendBinary(prefix)
	require.NoError(t, err)
	assert.Len(t, out, 1+PointRecordSize)
	assert.Equal(t, byte(0xAA), out[0])
}

func TestPoint_UnmarshalBinaryErrors(t *testing.T) {
	var p Point
	require.ErrorIs(t, p.UnmarshalBinary(nil), ErrInvalidRecord)
	require.ErrorIs(t, p.UnmarshalBinary(make([]byte, PointRecordSize-1)), ErrInvalidRecord)

	data, err := NewPoint(1, 2).MarshalBinary()
	require.NoError(t, err)
	binary.LittleEndian.PutUint32(data[4:], 99)

	p = NewPoint(55)
	require.ErrorIs(t, p.UnmarshalBinary(data), ErrInvalidCurveType)
	assert.Equal(t, int32(55), p.Time, "failed decode leaves point untouched")
}
