package refcode

import "testing"

func TestRoundTrip(t *testing.T) {
	ids := []int64{0, 1, 42, 12345, 1234567890, 5000000000, 1<<40 + 7, 1<<62 + 99}

	for _, id := range ids {
		code := Encode(id)
		got, err := Decode(code)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", code, err)
		}
		if got != id {
			t.Fatalf("Decode(Encode(%d)) = %d", id, got)
		}
	}
}

func TestDistinctIDsDistinctCodes(t *testing.T) {
	seen := make(map[string]int64)
	for id := int64(1000000000); id < 1000005000; id++ {
		code := Encode(id)
		if prev, ok := seen[code]; ok {
			t.Fatalf("collision: ids %d and %d both encode to %q", prev, id, code)
		}
		seen[code] = id
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	cases := []string{"", "привет", "0000", "has space", "ABCDEFGHJKLMNPQ"}
	for _, c := range cases {
		if _, err := Decode(c); err == nil {
			t.Fatalf("Decode(%q) should fail", c)
		}
	}
}

func TestCodesAreShort(t *testing.T) {
	// Real Telegram ids are well under 2^53; codes should stay compact.
	if code := Encode(7081234567); len(code) > 10 {
		t.Fatalf("code %q unexpectedly long", code)
	}
}
