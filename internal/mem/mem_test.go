package mem

import (
	"testing"
	"unsafe"
)

func TestAlignedBytes(t *testing.T) {
	for _, align := range []int{1, 2, 8, 16, 64, 128} {
		b := AlignedBytes(100, align)
		if len(b) != 100 {
			t.Errorf("align %d: len = %d, want 100", align, len(b))
		}
		if addr := uintptr(unsafe.Pointer(&b[0])); addr%uintptr(align) != 0 {
			t.Errorf("align %d: address %#x not aligned", align, addr)
		}
		if cap(b) != 100 {
			t.Errorf("align %d: cap = %d, want 100", align, cap(b))
		}
	}
}

func TestAlignedBytesRejectsBadAlignment(t *testing.T) {
	for _, align := range []int{0, -8, 3, 12} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("AlignedBytes with align %d did not panic", align)
				}
			}()
			AlignedBytes(8, align)
		}()
	}
}

func TestAlignedTyped(t *testing.T) {
	f := AlignedFloat32(4, 64)
	if len(f) != 4 {
		t.Errorf("float len = %d, want 4", len(f))
	}
	if addr := uintptr(unsafe.Pointer(&f[0])); addr%64 != 0 {
		t.Errorf("float address %#x not 64-byte aligned", addr)
	}

	n := AlignedInt32(4, 16)
	if len(n) != 4 {
		t.Errorf("int len = %d, want 4", len(n))
	}
	n[0], n[3] = -1, 7
	if n[0] != -1 || n[3] != 7 {
		t.Error("aligned int slice does not hold writes")
	}
}
