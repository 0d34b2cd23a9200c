package dashboard

import "time"

// Clock abstracts the time source for tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

type ClockView struct {
	Time string `json:"time" example:"14:05"`
	Date string `json:"date" example:"Fri, Jul 25"`
}

func FormatClock(now time.Time, hour12 bool) ClockView {
	layout := "15:04"
	if hour12 {
		layout = "03:04 PM"
	}

	return ClockView{
		Time: now.Format(layout),
		Date: now.Format("Mon, Jan 2"),
	}
}
