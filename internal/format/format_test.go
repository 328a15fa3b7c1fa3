package format

import (
    "testing"
    "time"
)

func TestFmtDate(t *testing.T) {
    d := time.Date(2024, time.March, 7, 15, 0, 0, 0, time.UTC)
    if got := FmtDate(d); got != "Mar 7, 2024" {
        t.Fatalf("FmtDate = %q", got)
    }
    if got := ISODate(d); got != "2024-03-07" {
        t.Fatalf("ISODate = %q", got)
    }
    if FmtDate(time.Time{}) != "" {
        t.Fatal("zero date should be empty")
    }
}

func TestReadingTimeAndCount(t *testing.T) {
    cases := map[int]string{0: "", -2: "", 1: "1 min read", 12: "12 min read"}
    for in, want := range cases {
        if got := ReadingTime(in); got != want {
            t.Errorf("ReadingTime(%d) = %q, want %q", in, got, want)
        }
    }
    if got := Count(1234567); got != "1,234,567" {
        t.Errorf("Count = %q", got)
    }
    if got := Count(-1200); got != "-1,200" {
        t.Errorf("Count = %q", got)
    }
    if got := Plural(1, "guide", "guides"); got != "1 guide" {
        t.Errorf("Plural = %q", got)
    }
    if got := Plural(1500, "guide", "guides"); got != "1,500 guides" {
        t.Errorf("Plural = %q", got)
    }
}
