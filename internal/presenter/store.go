package presenter

import (
	"sync"

	"weather-dashboard/internal/services/dashboard"
	"weather-dashboard/pkg/logger"
)

const (
	NotificationHistory = 20
	subscriberBuffer    = 32
)

type EventKind string

const (
	EventClock        EventKind = "clock"
	EventCurrent      EventKind = "current"
	EventDaily        EventKind = "daily"
	EventChart        EventKind = "chart"
	EventTitle        EventKind = "title"
	EventLoading      EventKind = "loading"
	EventNotification EventKind = "notification"
)

type Event struct {
	Kind EventKind
	Data any
}

// State is a copy of everything currently on display.
type State struct {
	Clock         dashboard.ClockView      `json:"clock"`
	Current       *dashboard.CurrentView   `json:"current"`
	Daily         []dashboard.DayView      `json:"daily"`
	Chart         *dashboard.ChartView     `json:"chart"`
	Title         string                   `json:"title"`
	Loading       dashboard.LoadingState   `json:"loading"`
	Notifications []dashboard.Notification `json:"notifications"`
	LiveCharts    int                      `json:"live_charts"`
}

// Store is a dashboard.Presenter that keeps the latest view in memory and
// fans every update out to subscribers.
type Store struct {
	l *logger.Logger

	mu          sync.RWMutex
	state       State
	subscribers map[uint64]chan Event
	nextID      uint64
}

var _ dashboard.Presenter = (*Store)(nil)

func NewStore(l *logger.Logger) *Store {
	return &Store{
		l:           l,
		state:       State{Loading: dashboard.LoadingIdle},
		subscribers: make(map[uint64]chan Event),
	}
}

func (s *Store) ShowCurrent(v dashboard.CurrentView) {
	s.update(EventCurrent, v, func(st *State) { st.Current = &v })
}

func (s *Store) ShowDaily(days []dashboard.DayView) {
	days = append([]dashboard.DayView(nil), days...)
	s.update(EventDaily, days, func(st *State) { st.Daily = days })
}

func (s *Store) DrawChart(v dashboard.ChartView) dashboard.Chart {
	c := &chart{store: s}
	s.update(EventChart, v, func(st *State) {
		st.Chart = &v
		st.LiveCharts++
	})
	return c
}

func (s *Store) ShowClock(v dashboard.ClockView) {
	s.update(EventClock, v, func(st *State) { st.Clock = v })
}

func (s *Store) SetTitle(title string) {
	s.update(EventTitle, title, func(st *State) { st.Title = title })
}

func (s *Store) SetLoading(v dashboard.LoadingState) {
	s.update(EventLoading, v, func(st *State) { st.Loading = v })
}

func (s *Store) Notify(n dashboard.Notification) {
	s.update(EventNotification, n, func(st *State) {
		st.Notifications = append(st.Notifications, n)
		if over := len(st.Notifications) - NotificationHistory; over > 0 {
			st.Notifications = append([]dashboard.Notification(nil), st.Notifications[over:]...)
		}
	})
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	st.Daily = append([]dashboard.DayView(nil), s.state.Daily...)
	st.Notifications = append([]dashboard.Notification(nil), s.state.Notifications...)
	if s.state.Current != nil {
		current := *s.state.Current
		st.Current = &current
	}
	if s.state.Chart != nil {
		c := *s.state.Chart
		st.Chart = &c
	}
	return st
}

// Subscribe registers a listener. The returned function unsubscribes and
// closes the channel.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan Event, subscriberBuffer)
	s.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, id)
			close(ch)
		})
	}
}

func (s *Store) update(kind EventKind, data any, apply func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply(&s.state)

	for id, ch := range s.subscribers {
		select {
		case ch <- Event{Kind: kind, Data: data}:
		default:
			s.l.Debug("dropping event for slow subscriber", map[string]any{
				"subscriber": id,
				"event":      kind,
			})
		}
	}
}

type chart struct {
	store *Store
	once  sync.Once
}

func (c *chart) Destroy() {
	c.once.Do(func() {
		c.store.mu.Lock()
		defer c.store.mu.Unlock()
		c.store.state.LiveCharts--
	})
}
