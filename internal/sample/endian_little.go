//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mips64p32le || mipsle || ppc64le || riscv64 || wasm

package sample

// BigEndian reports the host byte order.
const BigEndian = false

// Pack24Shuffle selects the three significant bytes of each of four native
// 32-bit lanes laid out contiguously, producing 12 packed 24-bit samples.
var Pack24Shuffle = [12]uint8{1, 2, 3, 5, 6, 7, 9, 10, 11, 13, 14, 15}

// LoadInt24 reads the 3-byte sample at byte offset off and returns it in
// the high 24 bits of an int32.
func LoadInt24(b []byte, off int) int32 {
	_ = b[off+2]
	return int32(uint32(b[off])<<8 | uint32(b[off+1])<<16 | uint32(b[off+2])<<24)
}

// StoreInt24 writes the high 24 bits of v as a 3-byte sample at byte
// offset off.
func StoreInt24(b []byte, off int, v int32) {
	_ = b[off+2]
	u := uint32(v)
	b[off] = byte(u >> 8)
	b[off+1] = byte(u >> 16)
	b[off+2] = byte(u >> 24)
}
