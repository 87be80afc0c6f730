package grid

import (
	"encoding/binary"
	"fmt"
)

// FormatRow renders one row chunk as grouped hex cells and per-byte ASCII
// cells. Bytes are grouped left to right in file order; each whole group is
// decoded as an unsigned integer in the given endianness and formatted as
// uppercase hex, zero-padded to 2*groupWidth digits. A short trailing group
// is dropped from the hex cells. The ASCII cells always cover every raw byte:
// printable bytes (32..126) map to their character, everything else to ".".
func FormatRow(chunk []byte, groupWidth int, littleEndian bool) (hexCells, asciiCells []string) {
	var order binary.ByteOrder = binary.BigEndian
	if littleEndian {
		order = binary.LittleEndian
	}

	groups := len(chunk) / groupWidth
	hexCells = make([]string, 0, groups)
	for i := 0; i < groups; i++ {
		g := chunk[i*groupWidth : (i+1)*groupWidth]
		var v uint64
		switch groupWidth {
		case 1:
			v = uint64(g[0])
		case 2:
			v = uint64(order.Uint16(g))
		case 4:
			v = uint64(order.Uint32(g))
		case 8:
			v = order.Uint64(g)
		}
		hexCells = append(hexCells, fmt.Sprintf("%0*X", 2*groupWidth, v))
	}

	asciiCells = make([]string, len(chunk))
	for i, b := range chunk {
		if b >= 32 && b < 127 {
			asciiCells[i] = string(b)
		} else {
			asciiCells[i] = "."
		}
	}

	return hexCells, asciiCells
}
