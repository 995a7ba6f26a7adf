package main

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	sampleconv "github.com/tphakala/go-audio-sampleconv"
	"github.com/tphakala/go-audio-sampleconv/internal/sample"
)

const (
	// WAV format constants
	wavHeaderSize      = 44 // Total WAV header size in bytes
	wavRiffHeaderSize  = 36 // RIFF header size (file size - 8 = riffHeaderSize + dataSize)
	wavPCMSubchunkSize = 16 // fmt subchunk size for PCM format
	wavFileSizeOffset  = 4  // Byte offset for file size field in header
	wavDataSizeOffset  = 40 // Byte offset for data size field in header

	wavFormatFloat = 3 // WAVE format tag of IEEE float data

	// I/O buffer sizes
	wavWriterBufferSize = 256 * 1024 // 256KB write buffer
	uint32Size          = 4          // Size of uint32 in bytes
)

// fastWAVWriter writes already encoded sample bytes behind a canonical
// 44-byte header and patches the sizes on Close.
type fastWAVWriter struct {
	w           *bufio.Writer
	f           *os.File
	sampleRate  int
	width       int
	channels    int
	audioFormat uint16
	dataSize    uint32
	swapBuf     []byte // byte-swap scratch for big-endian hosts
}

// newFastWAVWriter creates a new fast WAV writer for samples of format.
func newFastWAVWriter(f *os.File, sampleRate int, format sampleconv.SampleFormat, channels int) (*fastWAVWriter, error) {
	audioFormat := uint16(wavFormatPCM)
	if format.Base() == sampleconv.Float32 {
		audioFormat = wavFormatFloat
	}
	w := &fastWAVWriter{
		w:           bufio.NewWriterSize(f, wavWriterBufferSize),
		f:           f,
		sampleRate:  sampleRate,
		width:       format.BytesPerSample(),
		channels:    channels,
		audioFormat: audioFormat,
	}

	// Write WAV header (44 bytes) with placeholder sizes
	if err := w.writeHeader(); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *fastWAVWriter) writeHeader() error {
	byteRate := w.sampleRate * w.channels * w.width
	blockAlign := w.channels * w.width

	header := make([]byte, wavHeaderSize)

	// RIFF header
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 0) // Placeholder for file size - 8
	copy(header[8:12], "WAVE")

	// fmt subchunk
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], wavPCMSubchunkSize)
	binary.LittleEndian.PutUint16(header[20:22], w.audioFormat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(w.channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(w.sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(w.width*bitsPerByte))

	// data subchunk
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], 0) // Placeholder for data size

	_, err := w.w.Write(header)
	return err
}

// WriteRaw writes host-order encoded samples. WAV data is little-endian,
// so big-endian hosts swap each sample first.
func (w *fastWAVWriter) WriteRaw(b []byte) error {
	if sample.BigEndian && w.width > 1 {
		if cap(w.swapBuf) < len(b) {
			w.swapBuf = make([]byte, len(b))
		}
		swapped := w.swapBuf[:len(b)]
		for i := 0; i+w.width <= len(b); i += w.width {
			for j := range w.width {
				swapped[i+j] = b[i+w.width-1-j]
			}
		}
		b = swapped
	}

	written, err := w.w.Write(b)
	w.dataSize += uint32(written)
	return err
}

// Close flushes the buffer and updates the WAV header with final sizes.
func (w *fastWAVWriter) Close() error {
	if err := w.w.Flush(); err != nil {
		return err
	}

	fileSize := wavRiffHeaderSize + w.dataSize

	if _, err := w.f.Seek(wavFileSizeOffset, io.SeekStart); err != nil {
		return err
	}
	sizeBytes := make([]byte, uint32Size)
	binary.LittleEndian.PutUint32(sizeBytes, fileSize)
	if _, err := w.f.Write(sizeBytes); err != nil {
		return err
	}

	if _, err := w.f.Seek(wavDataSizeOffset, io.SeekStart); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(sizeBytes, w.dataSize)
	if _, err := w.f.Write(sizeBytes); err != nil {
		return err
	}

	return nil
}
