package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_Width(t *testing.T) {
	tests := []struct {
		kind  Kind
		width int
	}{
		{Float32, 4}, {Int32, 4}, {Int24, 3}, {Int16, 2}, {Int8, 1}, {UInt8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.width, tt.kind.Width())
		})
	}
}

func TestInt24_RoundTrip(t *testing.T) {
	values := []int32{0, 0x7FFFFF00, -0x80000000, 0x12345600, -256, 256}
	buf := make([]byte, 3*len(values))
	for i, v := range values {
		StoreInt24(buf, 3*i, v)
	}
	for i, v := range values {
		assert.Equal(t, v, LoadInt24(buf, 3*i), "value %d", i)
	}
}

func TestStoreInt24_DropsLowByte(t *testing.T) {
	buf := make([]byte, 3)
	StoreInt24(buf, 0, 0x123456FF)
	assert.Equal(t, int32(0x12345600), LoadInt24(buf, 0))
	assert.Equal(t, int32(0x123456), Int24Value(LoadInt24(buf, 0)))
}

func TestStoreInt24_ByteOrder(t *testing.T) {
	buf := make([]byte, 3)
	StoreInt24(buf, 0, 0x7FFFFFFF)
	if BigEndian {
		assert.Equal(t, []byte{0x7F, 0xFF, 0xFF}, buf)
	} else {
		assert.Equal(t, []byte{0xFF, 0xFF, 0x7F}, buf)
	}
}

func TestPack24Shuffle_MatchesStoreInt24(t *testing.T) {
	lanes := [4]int32{0x01020304, -0x0A0B0C0D, 0x7FFFFFFF, -0x80000000}

	wide := make([]byte, 16)
	for k, v := range lanes {
		StoreInt32(wide, 4*k, v)
	}
	packed := make([]byte, 12)
	for i, p := range Pack24Shuffle {
		packed[i] = wide[p]
	}

	want := make([]byte, 12)
	for k, v := range lanes {
		StoreInt24(want, 3*k, v)
	}
	assert.Equal(t, want, packed)
}

func TestLoadStore_Native(t *testing.T) {
	buf := make([]byte, 8)
	StoreFloat32(buf, 0, -0.25)
	StoreInt16(buf, 4, -12345)
	StoreInt16(buf, 6, 32767)
	assert.Equal(t, float32(-0.25), LoadFloat32(buf, 0))
	assert.Equal(t, int16(-12345), LoadInt16(buf, 4))
	assert.Equal(t, int16(32767), LoadInt16(buf, 6))

	StoreInt32(buf, 4, -2147483648)
	assert.Equal(t, int32(-2147483648), LoadInt32(buf, 4))
}
