package main

import "testing"

func TestSeedFlagRoundTrips(t *testing.T) {
	var v uint32
	f := seedFlag{&v}
	if err := f.Set("42"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v != 42 {
		t.Fatalf("v = %d, want 42", v)
	}
	if f.String() != "42" {
		t.Fatalf("String() = %q, want %q", f.String(), "42")
	}
}

func TestSeedFlagRejectsNonNumeric(t *testing.T) {
	var v uint32
	f := seedFlag{&v}
	if err := f.Set("not-a-number"); err == nil {
		t.Fatal("expected an error for a non-numeric seed")
	}
}
