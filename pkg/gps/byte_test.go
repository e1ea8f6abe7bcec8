package gps

import "testing"

func TestSymbolBitsAndAlignment(t *testing.T) {
	tests := []struct {
		name      string
		sym       Symbol
		wantBits  uint
		wantRight uint32
	}{
		{"full", NewSymbol(0xAB), 8, 0xAB},
		{"msb padded", NewMsbPaddedSymbol(0xFF), 6, 0x3f},
		{"lsb padded", NewLsbPaddedSymbol(0xFF), 6, 0x3f},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sym.bits(); got != tt.wantBits {
				t.Errorf("bits() = %d, want %d", got, tt.wantBits)
			}
			if got := tt.sym.rightAligned(); got != tt.wantRight {
				t.Errorf("rightAligned() = 0x%x, want 0x%x", got, tt.wantRight)
			}
		})
	}
}

func TestNewMsbPaddedSymbolMasksTopBits(t *testing.T) {
	sym := NewMsbPaddedSymbol(0b11_101010)
	if sym.Value != 0b101010 {
		t.Errorf("Value = 0b%b, want 0b101010", sym.Value)
	}
}

func TestNewLsbPaddedSymbolMasksBottomBits(t *testing.T) {
	sym := NewLsbPaddedSymbol(0b101010_11)
	if sym.Value != 0b101010_00 {
		t.Errorf("Value = 0b%b, want 0b10101000", sym.Value)
	}
}
