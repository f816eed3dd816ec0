package trace

import (
	"context"
	"sync"
)

// Event is a single call or return record.
type Event struct {
	Depth  int      `json:"depth"`
	Name   string   `json:"name,omitempty"`
	Args   []string `json:"args,omitempty"`
	Result string   `json:"result,omitempty"`
	Return bool     `json:"return,omitempty"`
}

// Hub fans trace events out to any number of listeners.
// Events pushed while nobody listens are dropped; a listener only sees
// events pushed after it joined.
type Hub struct {
	lock sync.Mutex
	cond *sync.Cond

	head    int // count of all events ever pushed
	events  []Event
	subs    map[int]int // listener id -> index of its next event
	subHigh int
}

// Listener receives events from a Hub.
type Listener interface {
	// Next waits for and returns the next event.
	// It returns the zero Event and false once the listener's context ends.
	Next() (Event, bool)

	// Batch waits for and returns all pending events.
	// A zero-length result means the listener's context ended.
	Batch() []Event
}

// init must be called before any locked use.
func (h *Hub) init() {
	if h.cond == nil {
		h.cond = sync.NewCond(&h.lock)
		h.subs = map[int]int{}
	}
}

// Push delivers events to all current listeners.
// Returns true if anyone was listening.
func (h *Hub) Push(all ...Event) bool {
	if len(all) == 0 {
		return false
	}

	h.lock.Lock()
	defer h.lock.Unlock()
	h.init()

	h.head += len(all)
	if len(h.subs) == 0 {
		h.events = nil
		return false
	}

	h.events = append(h.events, all...)
	h.cond.Broadcast()
	return true
}

// Join returns a listener for all events pushed after this call.
// When the context ends the listener becomes invalid.
func (h *Hub) Join(ctx context.Context) Listener {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.init()

	who := h.subHigh
	h.subHigh++
	h.subs[who] = h.head

	go func() {
		<-ctx.Done()

		h.lock.Lock()
		defer h.lock.Unlock()

		delete(h.subs, who)
		h.trim()
		h.cond.Broadcast() // wake the listener so it notices eviction
	}()

	return &hubListener{h: h, who: who}
}

// trim drops events every listener has consumed. Must be called under lock.
func (h *Hub) trim() {
	m := h.head
	for _, next := range h.subs {
		m = min(m, next)
	}

	start := h.head - len(h.events)
	if strip := m - start; strip > 0 {
		h.events = h.events[strip:]
	}
}

type hubListener struct {
	h   *Hub
	who int
}

func (l *hubListener) Next() (out Event, ok bool) {
	h := l.h
	h.lock.Lock()
	defer h.lock.Unlock()

	for {
		next, live := h.subs[l.who]
		if !live {
			return out, false
		}
		if next < h.head {
			out = h.events[next-(h.head-len(h.events))]
			h.subs[l.who] = next + 1
			h.trim()
			return out, true
		}
		h.cond.Wait()
	}
}

func (l *hubListener) Batch() []Event {
	h := l.h
	h.lock.Lock()
	defer h.lock.Unlock()

	for {
		next, live := h.subs[l.who]
		if !live {
			return nil
		}
		if next < h.head {
			pending := h.events[next-(h.head-len(h.events)):]
			out := append([]Event(nil), pending...)
			h.subs[l.who] = h.head
			h.trim()
			return out
		}
		h.cond.Wait()
	}
}
