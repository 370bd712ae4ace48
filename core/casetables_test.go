package core

import (
	"testing"
)

func newActiveLibrary(t *testing.T) *Library {
	t.Helper()
	l := New(WithLogger(testLogger()))
	if err := l.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	t.Cleanup(func() {
		for l.RefCount() > 0 {
			if err := l.Finalize(); err != nil {
				t.Fatalf("Finalize failed: %v", err)
			}
		}
	})
	return l
}

func TestAltercaseIsItsOwnInverse(t *testing.T) {
	l := newActiveLibrary(t)
	alter := l.Altercase()
	for b := 0; b < 256; b++ {
		if got := alter[alter[b]]; got != byte(b) {
			t.Errorf("altercase[altercase[%d]] = %d, want %d", b, got, b)
		}
	}
}

func TestAltercaseTogglesLetters(t *testing.T) {
	l := newActiveLibrary(t)
	alter := l.Altercase()
	if alter['a'] != 'A' || alter['z'] != 'Z' {
		t.Error("expected lowercase letters to map to uppercase")
	}
	if alter['A'] != 'a' || alter['Z'] != 'z' {
		t.Error("expected uppercase letters to map to lowercase")
	}
}

func TestAltercaseIdentityForNonAlpha(t *testing.T) {
	l := newActiveLibrary(t)
	alter := l.Altercase()
	for b := 0; b < 256; b++ {
		isAlpha := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
		if !isAlpha && alter[b] != byte(b) {
			t.Errorf("altercase[%d] = %d, want identity", b, alter[b])
		}
	}
}

func TestLowercaseMatchesASCII(t *testing.T) {
	l := newActiveLibrary(t)
	lower := l.Lowercase()
	for b := 0; b < 256; b++ {
		want := byte(b)
		if b >= 'A' && b <= 'Z' {
			want = byte(b + 32)
		}
		if lower[b] != want {
			t.Errorf("lowercase[%d] = %d, want %d", b, lower[b], want)
		}
	}
}
