package npyio

import (
	"bufio"
	"io"
	"os"
	"sort"

	"github.com/klauspost/compress/zip"
)

// MakeNPZ writes the given .npy payloads into a single .npz archive.
// Entries are written in name order.
func MakeNPZ(npyFiles map[string]io.Reader, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}

	if err := writeNPZ(f, npyFiles); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func writeNPZ(w io.Writer, npyFiles map[string]io.Reader) error {
	b := bufio.NewWriter(w)
	z := zip.NewWriter(b)

	names := make([]string, 0, len(npyFiles))
	for name := range npyFiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		zw, err := z.Create(name)
		if err != nil {
			return err
		}

		if _, err := io.Copy(zw, npyFiles[name]); err != nil {
			return err
		}
	}

	if err := z.Close(); err != nil {
		return err
	}

	return b.Flush()
}
