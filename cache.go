// Package mtcrack: on-disk transformation-matrix cache.
//
// The matrix is a pure function of (N, v) and the MT19937 constants, so a
// build can be persisted once and reused forever. Layout: a 16-byte header
// {magic "MTMX", version u32, N u32, v u32}, all little-endian, followed by
// N × ⌈N/64⌉ little-endian 64-bit row words. Any header mismatch
// invalidates the cache.
package mtcrack

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mtcrack/bitmatrix"
)

const (
	cacheMagic   = "MTMX"
	cacheVersion = 1
	headerSize   = 16
)

// encodeHeader fills a 16-byte cache header for an n×n width-v matrix.
func encodeHeader(hdr []byte, n, v int) {
	copy(hdr[0:4], cacheMagic)
	binary.LittleEndian.PutUint32(hdr[4:8], cacheVersion)
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(n))
	binary.LittleEndian.PutUint32(hdr[12:16], uint32(v))
}

// verifyHeader checks magic, version, N and v against the request.
// Returns ErrCacheMismatch describing the first disagreement.
func verifyHeader(hdr []byte, n, v int) error {
	if string(hdr[0:4]) != cacheMagic {
		return fmt.Errorf("bad magic %q: %w", hdr[0:4], ErrCacheMismatch)
	}
	if got := binary.LittleEndian.Uint32(hdr[4:8]); got != cacheVersion {
		return fmt.Errorf("version %d, want %d: %w", got, cacheVersion, ErrCacheMismatch)
	}
	if got := binary.LittleEndian.Uint32(hdr[8:12]); got != uint32(n) {
		return fmt.Errorf("dimension %d, want %d: %w", got, n, ErrCacheMismatch)
	}
	if got := binary.LittleEndian.Uint32(hdr[12:16]); got != uint32(v) {
		return fmt.Errorf("width %d, want %d: %w", got, v, ErrCacheMismatch)
	}

	return nil
}

// SaveMatrix persists a built artifact at path in the cache layout.
// The write goes through a same-directory temp file renamed into place,
// so readers never observe a torn cache.
// Complexity: O(n × ⌈n/64⌉) words written.
func SaveMatrix(path string, art *MatrixArtifact) error {
	m := art.Bits()
	n := m.Rows()

	tmp, err := os.CreateTemp(dirOf(path), ".mtmx-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriterSize(tmp, 1<<16)
	var hdr [headerSize]byte
	encodeHeader(hdr[:], n, art.Width())
	if _, err = w.Write(hdr[:]); err != nil {
		tmp.Close()
		return err
	}

	var word [8]byte
	for r := 0; r < n; r++ {
		for _, wv := range m.Row(r) {
			binary.LittleEndian.PutUint64(word[:], wv)
			if _, err = w.Write(word[:]); err != nil {
				tmp.Close()
				return err
			}
		}
	}
	if err = w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// LoadMatrix reads a cached n×n width-v artifact from path, validating
// the header against the requested parameters.
// Returns ErrCacheMismatch (which wraps ErrBadParameter) on disagreement.
// Complexity: O(n × ⌈n/64⌉) words read.
func LoadMatrix(path string, n, v int) (*MatrixArtifact, error) {
	if !validWidth(v) {
		return nil, fmt.Errorf("mtcrack: LoadMatrix width %d: %w", v, ErrBadParameter)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, 1<<16)
	var hdr [headerSize]byte
	if _, err = io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("mtcrack: LoadMatrix header: %w", err)
	}
	if err = verifyHeader(hdr[:], n, v); err != nil {
		return nil, fmt.Errorf("mtcrack: LoadMatrix %s: %w", path, err)
	}

	m, err := bitmatrix.New(n, n)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 8*m.WordsPerRow())
	for row := 0; row < n; row++ {
		if _, err = io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("mtcrack: LoadMatrix row %d: %w", row, err)
		}
		words := m.Row(row)
		for w := range words {
			words[w] = binary.LittleEndian.Uint64(buf[8*w:])
		}
	}

	return &MatrixArtifact{mat: m, width: v}, nil
}

// dirOf returns the directory portion of path for temp-file placement,
// defaulting to the current directory.
func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if os.IsPathSeparator(path[i]) {
			return path[:i+1]
		}
	}

	return "."
}
