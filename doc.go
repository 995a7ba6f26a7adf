// Package sampleconv converts audio samples between the PCM encodings audio
// devices and files use: 32-bit float, 32-, 24-, 16- and 8-bit signed
// integers, and 8-bit offset binary.
//
// # Features
//
//   - One converter per (source, destination, dither, clip) combination,
//     resolved once from an immutable Registry
//   - Triangular, high-passed dither when narrowing, with one independent
//     stream per channel
//   - Optional saturation of out-of-range float input
//   - Strided access for interleaved buffers, packed 24-bit samples
//   - 4-lane vector kernels for the float to Int32, Int24 and Int16 family,
//     matching the portable kernels except that 32-bit output is never
//     dithered
//   - Format negotiation: pick the nearest supported encoding
//   - Adapters for github.com/go-audio/audio buffers
//
// # Quick Start
//
//	reg, err := sampleconv.NewRegistry(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conv, err := reg.Select(sampleconv.Float32, sampleconv.Int16, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	in := []float32{0.5, -0.25, 1.2}
//	out := make([]int16, len(in))
//	conv.Convert(sampleconv.Bytes(out), 1, sampleconv.Bytes(in), 1, len(in),
//	    sampleconv.NewDitherState())
//
// Flags turn processing off: DitherOff selects truncation without noise and
// ClipOff lets out-of-range float input wrap. Converting a format to itself
// always copies, whatever the flags.
//
// # Real-time use
//
// Converter.Convert and Zeroer.Zero allocate nothing, take no locks and
// return no errors, so they may run on an audio callback thread. All
// failure cases are reported when the converter is selected. Buffers that
// are too short for the requested count panic; use CheckBuffer or the
// ConvertInterleaved helper where inputs are untrusted.
//
// # Byte order
//
// Buffers hold samples in host byte order, including the three bytes of a
// packed 24-bit sample.
package sampleconv
