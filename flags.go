package sampleconv

// Flags adjust converter selection.
type Flags uint32

const (
	// ClipOff disables clamping of out-of-range float input.
	ClipOff Flags = 0x00000001

	// DitherOff disables dither when narrowing.
	DitherOff Flags = 0x00000002
)

func (f Flags) dither() bool { return f&DitherOff == 0 }
func (f Flags) clip() bool   { return f&ClipOff == 0 }
