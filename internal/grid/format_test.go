package grid

import (
	"reflect"
	"testing"
)

func TestFormatRowWidth1(t *testing.T) {
	chunk := []byte{0x00, 0x41, 0xFF, 0x7E}
	hexCells, asciiCells := FormatRow(chunk, 1, true)

	wantHex := []string{"00", "41", "FF", "7E"}
	if !reflect.DeepEqual(hexCells, wantHex) {
		t.Errorf("expected hex cells %v, got %v", wantHex, hexCells)
	}

	wantASCII := []string{".", "A", ".", "~"}
	if !reflect.DeepEqual(asciiCells, wantASCII) {
		t.Errorf("expected ascii cells %v, got %v", wantASCII, asciiCells)
	}
}

func TestFormatRowWidth2(t *testing.T) {
	chunk := []byte{0x01, 0x02, 0x03, 0x04}

	hexCells, _ := FormatRow(chunk, 2, true)
	want := []string{"0201", "0403"}
	if !reflect.DeepEqual(hexCells, want) {
		t.Errorf("little endian: expected %v, got %v", want, hexCells)
	}

	hexCells, _ = FormatRow(chunk, 2, false)
	want = []string{"0102", "0304"}
	if !reflect.DeepEqual(hexCells, want) {
		t.Errorf("big endian: expected %v, got %v", want, hexCells)
	}
}

func TestFormatRowWidth4(t *testing.T) {
	chunk := []byte{0x01, 0x02, 0x03, 0x04, 0xAA, 0xBB, 0xCC, 0xDD}

	hexCells, _ := FormatRow(chunk, 4, true)
	want := []string{"04030201", "DDCCBBAA"}
	if !reflect.DeepEqual(hexCells, want) {
		t.Errorf("little endian: expected %v, got %v", want, hexCells)
	}

	hexCells, _ = FormatRow(chunk, 4, false)
	want = []string{"01020304", "AABBCCDD"}
	if !reflect.DeepEqual(hexCells, want) {
		t.Errorf("big endian: expected %v, got %v", want, hexCells)
	}
}

func TestFormatRowWidth8(t *testing.T) {
	chunk := []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}

	hexCells, _ := FormatRow(chunk, 8, true)
	if len(hexCells) != 1 || hexCells[0] != "8000000000000001" {
		t.Errorf("little endian: unexpected cells %v", hexCells)
	}

	hexCells, _ = FormatRow(chunk, 8, false)
	if len(hexCells) != 1 || hexCells[0] != "0100000000000080" {
		t.Errorf("big endian: unexpected cells %v", hexCells)
	}
}

// A trailing group shorter than the width is dropped from the hex cells, but
// every raw byte still gets an ASCII cell.
func TestFormatRowPartialTrailingGroup(t *testing.T) {
	chunk := make([]byte, 10)
	hexCells, asciiCells := FormatRow(chunk, 4, true)

	if len(hexCells) != 2 {
		t.Errorf("expected 2 hex cells, got %d", len(hexCells))
	}
	if len(asciiCells) != 10 {
		t.Errorf("expected 10 ascii cells, got %d", len(asciiCells))
	}
}

func TestFormatRowEmpty(t *testing.T) {
	hexCells, asciiCells := FormatRow(nil, 4, true)
	if len(hexCells) != 0 {
		t.Errorf("expected no hex cells, got %v", hexCells)
	}
	if len(asciiCells) != 0 {
		t.Errorf("expected no ascii cells, got %v", asciiCells)
	}
}

func TestFormatRowPrintableBounds(t *testing.T) {
	chunk := []byte{31, 32, 126, 127}
	_, asciiCells := FormatRow(chunk, 1, true)

	want := []string{".", " ", "~", "."}
	if !reflect.DeepEqual(asciiCells, want) {
		t.Errorf("expected %v, got %v", want, asciiCells)
	}
}
