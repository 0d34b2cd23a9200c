package dashboard

import "time"

// LoadingState is the fetch affordance: trigger control, container fade and spinner.
type LoadingState struct {
	TriggerEnabled bool `json:"trigger_enabled"`
	ContainerFaded bool `json:"container_faded"`
	SpinnerVisible bool `json:"spinner_visible"`
}

var (
	LoadingIdle    = LoadingState{TriggerEnabled: true}
	LoadingPending = LoadingState{ContainerFaded: true}
	LoadingSpinner = LoadingState{ContainerFaded: true, SpinnerVisible: true}
)

type NotificationKind string

const (
	// NotificationError is blocking: the user has to acknowledge it.
	NotificationError         NotificationKind = "error"
	NotificationSevereWeather NotificationKind = "severe_weather"
)

type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title,omitempty"`
	Message string           `json:"message"`
	At      time.Time        `json:"at"`
}

// Chart is a drawn chart instance.
type Chart interface {
	Destroy()
}

// Presenter is the display surface the dashboard renders into. All calls
// arrive from the dashboard's event loop.
type Presenter interface {
	ShowCurrent(CurrentView)
	ShowDaily([]DayView)
	DrawChart(ChartView) Chart
	ShowClock(ClockView)
	SetTitle(string)
	SetLoading(LoadingState)
	Notify(Notification)
}
