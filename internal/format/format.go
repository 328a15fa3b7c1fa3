package format

import (
    "fmt"
    "strings"
    "time"
)

// FmtDate formats a publish date the way listing cards show it: "Jan 2, 2006".
// Zero times render as an empty string.
func FmtDate(t time.Time) string {
    if t.IsZero() {
        return ""
    }
    return t.Format("Jan 2, 2006")
}

// ISODate formats t for <time datetime> attributes.
func ISODate(t time.Time) string {
    if t.IsZero() {
        return ""
    }
    return t.UTC().Format("2006-01-02")
}

// ReadingTime renders minutes as "N min read". Non-positive values render empty.
func ReadingTime(minutes int) string {
    if minutes <= 0 {
        return ""
    }
    return fmt.Sprintf("%d min read", minutes)
}

// Count formats n with thousands separators: 12345 => "12,345".
func Count(n int) string {
    return thousandSep(int64(n))
}

// Plural picks singular or plural by n: Plural(1, "guide", "guides") => "1 guide".
func Plural(n int, one, many string) string {
    if n == 1 {
        return "1 " + one
    }
    return Count(n) + " " + many
}

func thousandSep(n int64) string {
    s := fmt.Sprintf("%d", n)
    neg := false
    if strings.HasPrefix(s, "-") { neg = true; s = s[1:] }
    out := ""
    for i, c := range s {
        if i != 0 && (len(s)-i)%3 == 0 { out += "," }
        out += string(c)
    }
    if neg { return "-" + out }
    return out
}
