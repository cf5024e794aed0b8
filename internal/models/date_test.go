package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2024-01-31" {
		t.Errorf("expected 2024-01-31, got %s", d.String())
	}

	for _, invalid := range []string{"", "2024-13-01", "2024-02-30", "01/31/2024", "2024-1-1"} {
		if _, err := ParseDate(invalid); err == nil {
			t.Errorf("expected error for %q", invalid)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.June, 5)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"2024-06-05"` {
		t.Errorf("expected \"2024-06-05\", got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.String() != d.String() {
		t.Errorf("round trip changed date: %s != %s", back.String(), d.String())
	}
}

func TestDateScan(t *testing.T) {
	t.Run("from_time", func(t *testing.T) {
		var d Date
		if err := d.Scan(time.Date(2024, time.March, 9, 17, 30, 0, 0, time.Local)); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if d.String() != "2024-03-09" {
			t.Errorf("expected 2024-03-09, got %s", d.String())
		}
	})

	t.Run("from_string_with_time_component", func(t *testing.T) {
		var d Date
		if err := d.Scan("2024-03-09 00:00:00+00:00"); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if d.String() != "2024-03-09" {
			t.Errorf("expected 2024-03-09, got %s", d.String())
		}
	})

	t.Run("from_nil", func(t *testing.T) {
		var d Date
		if err := d.Scan(nil); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if !d.IsZero() {
			t.Errorf("expected zero date, got %s", d.String())
		}
	})
}

func TestDateValueIsMidnightUTC(t *testing.T) {
	d := NewDate(2024, time.December, 25)
	v, err := d.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	ts, ok := v.(time.Time)
	if !ok {
		t.Fatalf("expected time.Time, got %T", v)
	}
	if ts.Hour() != 0 || ts.Minute() != 0 || ts.Location() != time.UTC {
		t.Errorf("expected UTC midnight, got %s", ts)
	}
}
