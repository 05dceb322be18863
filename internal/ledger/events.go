package ledger

// EventKind names a ledger change.
type EventKind string

const (
	ParticipantAdded   EventKind = "participant_added"
	ParticipantUpdated EventKind = "participant_updated"
	ParticipantRemoved EventKind = "participant_removed"
	BillAdded          EventKind = "bill_added"
	BillRemoved        EventKind = "bill_removed"
	Cleared            EventKind = "cleared"
	PersistFailed      EventKind = "persist_failed"
)

// Event describes a committed change. ID is the affected participant or
// bill; Err is set only for PersistFailed.
type Event struct {
	Kind EventKind
	ID   string
	Err  error
}

// Listener receives events after the change is committed and the ledger
// lock is released, so it may call back into the ledger.
type Listener func(Event)

type listenerEntry struct {
	id int
	fn Listener
}

// Subscribe registers fn for every subsequent event and returns a function
// that removes it.
func (l *Ledger) Subscribe(fn Listener) (unsubscribe func()) {
	l.listenersMu.Lock()
	defer l.listenersMu.Unlock()

	id := l.nextListener
	l.nextListener++
	l.listeners = append(l.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		l.listenersMu.Lock()
		defer l.listenersMu.Unlock()
		for i, entry := range l.listeners {
			if entry.id == id {
				l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

// publish delivers evt, followed by a PersistFailed event when persistErr is set.
func (l *Ledger) publish(evt Event, persistErr error) {
	events := []Event{evt}
	if persistErr != nil {
		events = append(events, Event{Kind: PersistFailed, ID: evt.ID, Err: persistErr})
	}

	l.listenersMu.Lock()
	listeners := make([]Listener, 0, len(l.listeners))
	for _, entry := range l.listeners {
		listeners = append(listeners, entry.fn)
	}
	l.listenersMu.Unlock()

	for _, e := range events {
		for _, fn := range listeners {
			fn(e)
		}
	}
}
