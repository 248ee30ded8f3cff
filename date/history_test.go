package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[0], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[1], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[0], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[1], v2)
	}
}

func TestAppend_OverwritesSameDay(t *testing.T) {
	h := new(History[float64])
	on := New(2024, 12, 31)
	h.Append(on, 100).Append(on, 101)
	if h.Len() != 1 {
		t.Fatalf("Len() = %d want 1", h.Len())
	}
	if v, ok := h.Get(on); !ok || v != 101 {
		t.Errorf("Get() = %v, %v want 101, true (last data wins)", v, ok)
	}
}

func TestValues_Chronological(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2023, 1, 1), 3)
	h.Append(New(2021, 1, 1), 1)
	h.Append(New(2022, 1, 1), 2)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() order = %v, want %v", got, want)
		}
	}
}

func TestLatest(t *testing.T) {
	h := new(History[float64])
	if _, v := h.Latest(); v != 0 {
		t.Errorf("Latest() on empty history = %v, want zero", v)
	}
	h.Append(New(2021, 1, 1), 1)
	h.Append(New(2025, 6, 30), 9)
	day, v := h.Latest()
	if day != New(2025, 6, 30) || v != 9 {
		t.Errorf("Latest() = %v, %v want 2025-06-30, 9", day, v)
	}
}
