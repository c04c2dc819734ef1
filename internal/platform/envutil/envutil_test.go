package envutil

import "testing"

func TestBool(t *testing.T) {
	cases := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"true", false, true},
		{"on", false, true},
		{"0", true, false},
		{"false", true, false},
		{"OFF", true, false},
		{"garbage", true, true},
	}
	for _, c := range cases {
		t.Setenv("ENVUTIL_TEST_BOOL", c.value)
		if got := Bool("ENVUTIL_TEST_BOOL", c.def); got != c.want {
			t.Fatalf("Bool(%q, %v) = %v, want %v", c.value, c.def, got, c.want)
		}
	}
}

func TestInt(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_INT", "42")
	if got := Int("ENVUTIL_TEST_INT", 7); got != 42 {
		t.Fatalf("Int = %d, want 42", got)
	}
	t.Setenv("ENVUTIL_TEST_INT", "not a number")
	if got := Int("ENVUTIL_TEST_INT", 7); got != 7 {
		t.Fatalf("Int fallback = %d, want 7", got)
	}
}
