package npyio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

func decode(t *testing.T, data []byte) (string, []float64) {
	t.Helper()
	if !bytes.Equal(data[:6], magic[:]) {
		t.Fatalf("bad magic: %q", data[:6])
	}
	if data[6] != majorVersion || data[7] != minorVersion {
		t.Fatalf("bad version: %d.%d", data[6], data[7])
	}

	hdrLen := int(binary.LittleEndian.Uint32(data[8:12]))
	start := preambleLen + hdrLen
	if start%16 != 0 {
		t.Errorf("data starts at offset %d, expected a multiple of 16", start)
	}

	header := string(data[preambleLen:start])
	if !strings.HasSuffix(header, "\n") {
		t.Errorf("header does not end in a newline: %q", header)
	}

	body := data[start:]
	if len(body)%8 != 0 {
		t.Fatalf("body has %d bytes, expected a multiple of 8", len(body))
	}

	result := make([]float64, len(body)/8)
	for i := range result {
		result[i] = math.Float64frombits(binary.LittleEndian.Uint64(body[8*i:]))
	}
	return header, result
}

func TestWrite(t *testing.T) {
	for _, v := range [][]float64{
		{},
		{1},
		{0.5, 0.5},
		{0.1, 0.2, 0.3, 0.4, 1e-300, 1234567.5},
	} {
		var buf bytes.Buffer
		if err := Write(&buf, v); err != nil {
			t.Fatal(err)
		}

		header, got := decode(t, buf.Bytes())
		if !strings.Contains(header, "'descr': '<f8'") {
			t.Errorf("unexpected dtype in header: %q", header)
		}
		if len(got) != len(v) {
			t.Fatalf("decoded %d values, expected %d", len(got), len(v))
		}
		for i := range v {
			if got[i] != v[i] {
				t.Errorf("value %d: got %v, expected %v", i, got[i], v[i])
			}
		}
	}
}

func TestMakeNPZ(t *testing.T) {
	dir, err := ioutil.TempDir("", "npyio")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	var row, col bytes.Buffer
	if err := Write(&row, []float64{0.25, 0.75}); err != nil {
		t.Fatal(err)
	}
	if err := Write(&col, []float64{1, 0, 0}); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "strategies.npz")
	err = MakeNPZ(map[string]io.Reader{
		"row.npy": &row,
		"col.npy": &col,
	}, output)
	if err != nil {
		t.Fatal(err)
	}

	z, err := zip.OpenReader(output)
	if err != nil {
		t.Fatal(err)
	}
	defer z.Close()

	if len(z.File) != 2 {
		t.Fatalf("expected 2 files in archive, got %d", len(z.File))
	}
	want := map[string]int{"col.npy": 3, "row.npy": 2}
	for i, name := range []string{"col.npy", "row.npy"} {
		f := z.File[i]
		if f.Name != name {
			t.Errorf("entry %d is %v, expected %v", i, f.Name, name)
			continue
		}

		r, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := ioutil.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatal(err)
		}

		_, v := decode(t, data)
		if len(v) != want[name] {
			t.Errorf("%v has %d values, expected %d", name, len(v), want[name])
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteNPZ_ReportsWriteErrors(t *testing.T) {
	var row bytes.Buffer
	if err := Write(&row, []float64{0.5, 0.5}); err != nil {
		t.Fatal(err)
	}

	err := writeNPZ(failingWriter{}, map[string]io.Reader{"row.npy": &row})
	if err == nil {
		t.Error("expected error when the underlying writer fails")
	}
}

func TestMakeNPZ_BadPath(t *testing.T) {
	output := filepath.Join(os.TempDir(), "does-not-exist", "nested", "strategies.npz")
	if err := MakeNPZ(map[string]io.Reader{}, output); err == nil {
		t.Error("expected error creating an archive in a missing directory")
	}
}
