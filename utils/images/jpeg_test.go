package images

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestEnsureJFIFAPP0_AddsMarker(t *testing.T) {
	// SOI followed directly by a quantization table, no APP0
	picture := []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00, 0x04}

	out, added, err := EnsureJFIFAPP0(picture, DpiPxPerInch, 150, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !added {
		t.Fatal("expected marker to be added")
	}
	if out[0] != 0xFF || out[1] != 0xD8 {
		t.Fatal("expected SOI marker preserved")
	}
	if !bytes.Equal(out[2:4], []byte{0xFF, 0xE0}) {
		t.Fatal("expected JFIF APP0 marker right after SOI")
	}

	// density unit and values land at fixed offsets inside the segment
	if unit := out[13]; unit != byte(DpiPxPerInch) {
		t.Errorf("density unit = %d, want %d", unit, DpiPxPerInch)
	}
	if x := binary.BigEndian.Uint16(out[14:16]); x != 150 {
		t.Errorf("x density = %d, want 150", x)
	}
	if y := binary.BigEndian.Uint16(out[16:18]); y != 150 {
		t.Errorf("y density = %d, want 150", y)
	}
	if !bytes.Equal(out[len(out)-4:], picture[2:]) {
		t.Error("expected original payload preserved after the inserted segment")
	}
}

func TestEnsureJFIFAPP0_AlreadyPresent(t *testing.T) {
	picture := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}

	out, added, err := EnsureJFIFAPP0(picture, DpiPxPerInch, 150, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Fatal("expected no marker addition")
	}
	if !bytes.Equal(out, picture) {
		t.Fatal("expected same bytes")
	}
}

func TestEnsureJFIFAPP0_RejectsJunk(t *testing.T) {
	if _, _, err := EnsureJFIFAPP0([]byte{0xFF, 0xD8}, DpiPxPerInch, 150, 150); err == nil {
		t.Error("expected error for truncated data")
	}
	if _, _, err := EnsureJFIFAPP0([]byte("PNG?not really"), DpiPxPerInch, 150, 150); err == nil {
		t.Error("expected error for data without SOI marker")
	}
}
