package alert

import "testing"

func TestLeaseSingleHolder(t *testing.T) {
	l := NewLease()

	if !l.TryAcquire("a") {
		t.Fatal("first acquire failed")
	}
	if l.TryAcquire("b") {
		t.Fatal("second instance acquired a held lease")
	}
	if l.Owner() != "a" {
		t.Fatalf("owner = %q, want a", l.Owner())
	}

	// Re-acquire by the holder is allowed.
	if !l.TryAcquire("a") {
		t.Fatal("holder could not re-acquire")
	}
}

func TestLeaseReleaseOnlyByOwner(t *testing.T) {
	l := NewLease()
	l.TryAcquire("a")

	l.Release("b")
	if l.Owner() != "a" {
		t.Fatal("non-owner release took effect")
	}

	l.Release("a")
	if l.Owner() != "" {
		t.Fatal("owner release did not free the lease")
	}
	if !l.TryAcquire("b") {
		t.Fatal("released lease could not be acquired by the waiting instance")
	}
}
