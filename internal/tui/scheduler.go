package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerFiredMsg delivers a scheduled callback back onto the event loop
type timerFiredMsg struct {
	sched *loopScheduler
	id    int
}

// loopScheduler implements session.Scheduler with tea.Tick. Callbacks are
// queued as commands and run inside Update, never on the timer goroutine.
type loopScheduler struct {
	next    int
	fns     map[int]func()
	pending []tea.Cmd
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{fns: make(map[int]func())}
}

// After schedules fn to run on the event loop after d
func (s *loopScheduler) After(d time.Duration, fn func()) {
	s.next++
	id := s.next
	s.fns[id] = fn
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{sched: s, id: id}
	}))
}

// drain returns the commands queued since the last call
func (s *loopScheduler) drain() []tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return cmds
}

func (s *loopScheduler) fire(id int) {
	fn, ok := s.fns[id]
	if !ok {
		return
	}
	delete(s.fns, id)
	fn()
}
