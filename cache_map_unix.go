//go:build (linux || darwin) && (amd64 || arm64)

package mtcrack

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/katalvlaran/mtcrack/bitmatrix"
)

// MapMatrix memory-maps a cached artifact instead of reading it.
//
// The mapping is private (copy-on-write): elimination's in-place row
// writes dirty only the touched pages while the cache file stays
// pristine, and clean pages are shared with the page cache. The words
// are reinterpreted in place, which is why this path is limited to
// little-endian unix targets; elsewhere MapMatrix falls back to
// LoadMatrix.
//
// The mapping stays alive for the life of the returned artifact and is
// reclaimed when the process exits; a matrix is typically mapped once
// and solved once.
// Returns ErrCacheMismatch on header disagreement.
// Complexity: O(n) beyond the header check: FromWords rewrites the last
// word of every row, which faults in and privately copies each page that
// holds a row end; other pages fault in on demand.
func MapMatrix(path string, n, v int) (*MatrixArtifact, error) {
	if !validWidth(v) {
		return nil, fmt.Errorf("mtcrack: MapMatrix width %d: %w", v, ErrBadParameter)
	}
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mtcrack: MapMatrix %s: %w", path, err)
	}
	defer unix.Close(fd)

	var st unix.Stat_t
	if err = unix.Fstat(fd, &st); err != nil {
		return nil, fmt.Errorf("mtcrack: MapMatrix %s: %w", path, err)
	}
	wordsPerRow := (n + bitmatrix.WordBits - 1) / bitmatrix.WordBits
	want := int64(headerSize) + 8*int64(n)*int64(wordsPerRow)
	if st.Size != want {
		return nil, fmt.Errorf("mtcrack: MapMatrix %s: size %d, want %d: %w",
			path, st.Size, want, ErrCacheMismatch)
	}

	data, err := unix.Mmap(fd, 0, int(st.Size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mtcrack: MapMatrix %s: mmap: %w", path, err)
	}
	if err = verifyHeader(data[:headerSize], n, v); err != nil {
		_ = unix.Munmap(data)
		return nil, fmt.Errorf("mtcrack: MapMatrix %s: %w", path, err)
	}

	// Payload starts 8-byte aligned (page-aligned mapping + 16-byte header).
	payload := data[headerSize:]
	words := unsafe.Slice((*uint64)(unsafe.Pointer(&payload[0])), n*wordsPerRow)
	m, err := bitmatrix.FromWords(n, n, words)
	if err != nil {
		_ = unix.Munmap(data)
		return nil, err
	}

	return &MatrixArtifact{mat: m, width: v}, nil
}
