//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package sample

// BigEndian reports the host byte order.
const BigEndian = true

// Pack24Shuffle selects the three significant bytes of each of four native
// 32-bit lanes laid out contiguously, producing 12 packed 24-bit samples.
var Pack24Shuffle = [12]uint8{0, 1, 2, 4, 5, 6, 8, 9, 10, 12, 13, 14}

// LoadInt24 reads the 3-byte sample at byte offset off and returns it in
// the high 24 bits of an int32.
func LoadInt24(b []byte, off int) int32 {
	_ = b[off+2]
	return int32(uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8)
}

// StoreInt24 writes the high 24 bits of v as a 3-byte sample at byte
// offset off.
func StoreInt24(b []byte, off int, v int32) {
	_ = b[off+2]
	u := uint32(v)
	b[off] = byte(u >> 24)
	b[off+1] = byte(u >> 16)
	b[off+2] = byte(u >> 8)
}
