package model

import "testing"

func TestStats(t *testing.T) {
	done, pending := Stats(Seed())
	if done != 1 || pending != 1 {
		t.Errorf("Stats(Seed()) = %d, %d; want 1, 1", done, pending)
	}
	if d, p := Stats(nil); d != 0 || p != 0 {
		t.Errorf("Stats(nil) = %d, %d", d, p)
	}
}

func TestSeedIsFresh(t *testing.T) {
	a := Seed()
	a[0].Name = "changed"
	if Seed()[0].Name == "changed" {
		t.Error("Seed shares backing storage between calls")
	}
}
