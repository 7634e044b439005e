package skill

import "time"

// timeString renders t in loc the way asctime does, e.g. "Mon Jan  2 15:04:05 2006".
func timeString(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.ANSIC)
}
