package presenter

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/services/dashboard"
	"weather-dashboard/pkg/logger"
)

func newTestStore() *Store {
	return NewStore(logger.NewZapLogger("test-app", io.Discard))
}

func TestStore_InitialState(t *testing.T) {
	s := newTestStore()

	st := s.Snapshot()
	assert.Nil(t, st.Current)
	assert.Nil(t, st.Chart)
	assert.Empty(t, st.Notifications)
	assert.Equal(t, dashboard.LoadingIdle, st.Loading)
	assert.Zero(t, st.LiveCharts)
}

func TestStore_KeepsLatestValues(t *testing.T) {
	s := newTestStore()

	s.ShowCurrent(dashboard.CurrentView{Location: "Paris", Temperature: 20, Unit: "°C"})
	s.ShowCurrent(dashboard.CurrentView{Location: "Paris", Temperature: 69, Unit: "°F"})
	s.ShowDaily([]dashboard.DayView{{Weekday: "Fri", Temperature: 22}})
	s.SetTitle("Paris: 20.4°C")
	s.ShowClock(dashboard.ClockView{Time: "14:05", Date: "Fri, Jul 25"})
	s.SetLoading(dashboard.LoadingSpinner)

	st := s.Snapshot()
	require.NotNil(t, st.Current)
	assert.Equal(t, 69, st.Current.Temperature)
	assert.Equal(t, []dashboard.DayView{{Weekday: "Fri", Temperature: 22}}, st.Daily)
	assert.Equal(t, "Paris: 20.4°C", st.Title)
	assert.Equal(t, "14:05", st.Clock.Time)
	assert.Equal(t, dashboard.LoadingSpinner, st.Loading)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := newTestStore()
	s.ShowCurrent(dashboard.CurrentView{Location: "Paris"})
	s.ShowDaily([]dashboard.DayView{{Weekday: "Fri"}})

	st := s.Snapshot()
	st.Current.Location = "Berlin"
	st.Daily[0].Weekday = "Sat"

	again := s.Snapshot()
	assert.Equal(t, "Paris", again.Current.Location)
	assert.Equal(t, "Fri", again.Daily[0].Weekday)
}

func TestStore_LiveCharts(t *testing.T) {
	s := newTestStore()

	first := s.DrawChart(dashboard.ChartView{AxisLabel: "Temp (°C)"})
	assert.Equal(t, 1, s.Snapshot().LiveCharts)

	first.Destroy()
	second := s.DrawChart(dashboard.ChartView{AxisLabel: "Temp (°F)"})

	st := s.Snapshot()
	assert.Equal(t, 1, st.LiveCharts)
	require.NotNil(t, st.Chart)
	assert.Equal(t, "Temp (°F)", st.Chart.AxisLabel)

	// Destroy is idempotent.
	first.Destroy()
	assert.Equal(t, 1, s.Snapshot().LiveCharts)

	second.Destroy()
	assert.Zero(t, s.Snapshot().LiveCharts)
}

func TestStore_NotificationHistoryIsBounded(t *testing.T) {
	s := newTestStore()

	for i := 0; i < NotificationHistory+5; i++ {
		s.Notify(dashboard.Notification{
			Kind:    dashboard.NotificationError,
			Message: fmt.Sprintf("Error: %d", i),
		})
	}

	st := s.Snapshot()
	require.Len(t, st.Notifications, NotificationHistory)
	assert.Equal(t, "Error: 5", st.Notifications[0].Message)
	assert.Equal(t, fmt.Sprintf("Error: %d", NotificationHistory+4), st.Notifications[NotificationHistory-1].Message)
}

func TestStore_Subscribe(t *testing.T) {
	s := newTestStore()
	events, unsubscribe := s.Subscribe()

	s.SetTitle("Paris: 20.4°C")
	s.SetLoading(dashboard.LoadingPending)

	first := <-events
	assert.Equal(t, EventTitle, first.Kind)
	assert.Equal(t, "Paris: 20.4°C", first.Data)

	second := <-events
	assert.Equal(t, EventLoading, second.Kind)
	assert.Equal(t, dashboard.LoadingPending, second.Data)

	unsubscribe()
	unsubscribe()

	_, open := <-events
	assert.False(t, open)

	// Updates after unsubscribing must not panic on the closed channel.
	s.SetTitle("Berlin: 18.0°C")
}

func TestStore_SlowSubscriberDropsEvents(t *testing.T) {
	s := newTestStore()
	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	for i := 0; i < subscriberBuffer*2; i++ {
		s.ShowClock(dashboard.ClockView{Time: fmt.Sprintf("%02d:00", i%24)})
	}

	assert.Len(t, events, subscriberBuffer)
	assert.Equal(t, fmt.Sprintf("%02d:00", (subscriberBuffer*2-1)%24), s.Snapshot().Clock.Time)
}

func TestStore_DrivenByDashboardRender(t *testing.T) {
	s := newTestStore()

	var c dashboard.Chart
	for i := 0; i < 4; i++ {
		if c != nil {
			c.Destroy()
		}
		c = s.DrawChart(dashboard.ChartView{})
		assert.Equal(t, 1, s.Snapshot().LiveCharts)
	}
}
