package date

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_Normalizes(t *testing.T) {
	// Day 32 of January is February 1st.
	got := New(2024, time.January, 32)
	want := New(2024, time.February, 1)
	if got != want {
		t.Errorf("New(2024, Jan, 32) = %v, want %v", got, want)
	}
}

func TestFromUnix(t *testing.T) {
	// 2021-12-31T23:00:00Z is still Dec 31 in UTC.
	got := FromUnix(1640991600)
	want := New(2021, time.December, 31)
	if got != want {
		t.Errorf("FromUnix() = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "not-a-date", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.err {
				if err == nil {
					t.Fatal("Parse() should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := New(2024, time.February, 1).String(); got != "2024-02-01" {
		t.Errorf("String() = %q, want %q", got, "2024-02-01")
	}
}
