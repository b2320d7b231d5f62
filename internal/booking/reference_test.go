package booking

import "testing"

func TestNewReferenceFormat(t *testing.T) {
	ref, err := NewReference()
	if err != nil {
		t.Fatalf("NewReference: %v", err)
	}
	if len(ref) != ReferenceLength {
		t.Fatalf("reference %q has length %d, want %d", ref, len(ref), ReferenceLength)
	}
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			t.Fatalf("reference %q contains invalid character %q", ref, c)
		}
	}
}

func TestNewReferencePairwiseDistinct(t *testing.T) {
	const n = 1000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		ref, err := NewReference()
		if err != nil {
			t.Fatalf("NewReference: %v", err)
		}
		if _, dup := seen[ref]; dup {
			t.Fatalf("duplicate reference %q after %d generations", ref, i)
		}
		seen[ref] = struct{}{}
	}
}
