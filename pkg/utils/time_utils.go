package utils

import "time"

// Japan time location (JST, +09:00)
var jstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Tokyo"); err == nil {
		return loc
	}
	return time.FixedZone("JST", 9*3600)
}()

func FormatRFC3339JST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(jstLoc).Format(time.RFC3339)
}

// FormatDisplayJST renders t the way the page footer shows it, e.g. 2024年05月01日 09:30.
func FormatDisplayJST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(jstLoc).Format("2006年01月02日 15:04")
}
