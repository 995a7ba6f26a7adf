package sampleconv_test

import (
	"fmt"

	sampleconv "github.com/tphakala/go-audio-sampleconv"
)

func ExampleRegistry_Select() {
	reg, err := sampleconv.NewRegistry(nil)
	if err != nil {
		panic(err)
	}

	conv, err := reg.Select(sampleconv.Float32, sampleconv.Int16, sampleconv.DitherOff)
	if err != nil {
		panic(err)
	}

	src := []float32{0.5, -0.5}
	dst := make([]int16, len(src))
	conv.Convert(sampleconv.Bytes(dst), 1, sampleconv.Bytes(src), 1, len(src), nil)

	fmt.Println(conv.Name(), dst)
	// Output: Float32ToInt16Clip [16383 -16383]
}

func ExampleSelectClosestFormat() {
	f, err := sampleconv.SelectClosestFormat(sampleconv.Float32|sampleconv.Int8, sampleconv.UInt8)
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	// Output: Int8
}

func ExampleConverter_ConvertInterleaved() {
	reg, err := sampleconv.NewRegistry(&sampleconv.Config{Strategy: sampleconv.StrategyPortable})
	if err != nil {
		panic(err)
	}
	conv, err := reg.Select(sampleconv.Int16, sampleconv.Float32, 0)
	if err != nil {
		panic(err)
	}

	stereo := []int16{16384, -16384, 32767, 0}
	out := make([]float32, len(stereo))
	if err := conv.ConvertInterleaved(sampleconv.Bytes(out), sampleconv.Bytes(stereo), 2, 2, nil); err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", out)
	// Output: [0.5000 -0.5000 1.0000 0.0000]
}
