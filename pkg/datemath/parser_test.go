package datemath_test

import (
	"encoding/json"
	"testing"
	"time"

	"calendar-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParser_Today(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh")
	// 20:30 UTC on 1 May is already 2 May in UTC+7.
	now := time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC)

	got := parser.Today(now)
	want := datemath.NewDate(2024, time.May, 2)
	if !got.Equal(want) {
		t.Errorf("Today() = %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    datemath.Date
		wantErr bool
	}{
		{name: "ISO date", in: "2025-07-20", want: datemath.NewDate(2025, time.July, 20)},
		{name: "Surrounding spaces", in: "  2025-07-20 ", want: datemath.NewDate(2025, time.July, 20)},
		{name: "RFC3339 keeps written date", in: "2025-07-20T23:30:00-05:00", want: datemath.NewDate(2025, time.July, 20)},
		{name: "Local date-time", in: "2025-07-20T09:00:00", want: datemath.NewDate(2025, time.July, 20)},
		{name: "Slash form", in: "2025/07/20", want: datemath.NewDate(2025, time.July, 20)},
		{name: "Empty", in: "", wantErr: true},
		{name: "Garbage", in: "next tuesday", wantErr: true},
		{name: "Impossible day", in: "2025-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datemath.ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:30", want: "09:30"},
		{in: "9:30", want: "09:30"},
		{in: "15:00:00", want: "15:00"},
		{in: "3:00 PM", want: "15:00"},
		{in: "12:00 pm", want: "12:00"},
		{in: "7pm", want: "19:00"},
		{in: "noon-ish", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := datemath.ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	d := datemath.NewDate(2025, time.July, 4)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2025-07-04"` {
		t.Errorf("Marshal = %s, want \"2025-07-04\"", b)
	}

	var back datemath.Date
	if err := json.Unmarshal([]byte(`"2025-07-04T10:00:00Z"`), &back); err != nil {
		t.Fatalf("unexpected error unmarshaling Date: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("Unmarshal = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`20250704`), &back); err == nil {
		t.Errorf("expected error for non-string date")
	}
}

func TestDate_CompareAndAddDays(t *testing.T) {
	a := datemath.NewDate(2024, time.February, 28)
	b := a.AddDays(1)
	if !b.Equal(datemath.NewDate(2024, time.February, 29)) {
		t.Errorf("AddDays across leap day = %v", b)
	}
	c := b.AddDays(1)
	if !c.Equal(datemath.NewDate(2024, time.March, 1)) {
		t.Errorf("AddDays into March = %v", c)
	}
	if !a.Before(c) || !c.After(a) {
		t.Errorf("expected %v before %v", a, c)
	}
	if !b.Between(a, c) {
		t.Errorf("expected %v between %v and %v", b, a, c)
	}
	if b.Between(c, a) {
		t.Errorf("inverted range must be empty")
	}
}
