// Package npyio writes strategies in numpy's .npy and .npz formats so they
// can be loaded with numpy.load.
package npyio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

var order = binary.LittleEndian

// Write writes v as a 1-D float64 array.
func Write(w io.Writer, v []float64) error {
	if err := writeHeader(w, len(v)); err != nil {
		return err
	}

	var buf [8]byte
	for _, x := range v {
		order.PutUint64(buf[:], math.Float64bits(x))
		_, err := w.Write(buf[:])
		if err != nil {
			return err
		}
	}

	return nil
}

// The following is adapted from: github.com/sbinet/npyio
var magic = [6]byte{'\x93', 'N', 'U', 'M', 'P', 'Y'}

const (
	majorVersion = byte(2)
	minorVersion = byte(0)

	// magic, version and the 4-byte header length.
	preambleLen = len(magic) + 2 + 4
)

func writeHeader(w io.Writer, numElements int) error {
	if err := binary.Write(w, order, magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, order, majorVersion); err != nil {
		return err
	}
	if err := binary.Write(w, order, minorVersion); err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf,
		"{'descr': '<f8', 'fortran_order': False, 'shape': (%d,), }",
		numElements)

	// The data must start on a 16-byte boundary, and the header ends in '\n'.
	padding := (16 - (preambleLen+buf.Len()+1)%16) % 16
	if _, err := buf.Write(bytes.Repeat([]byte{'\x20'}, padding)); err != nil {
		return err
	}
	if err := buf.WriteByte('\n'); err != nil {
		return err
	}

	buflen := int64(buf.Len())
	if err := binary.Write(w, order, uint32(buflen)); err != nil {
		return err
	}

	if n, err := io.Copy(w, buf); err != nil {
		return err
	} else if n < buflen {
		return io.ErrShortWrite
	}

	return nil
}
