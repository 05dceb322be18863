package ledger

import (
	"context"
	"slices"
	"strings"

	"github.com/mmynk/sharesplitter/internal/models"
)

// AddParticipant appends a new participant to the roster.
func (l *Ledger) AddParticipant(ctx context.Context, in ParticipantInput) (models.Participant, error) {
	in.Name = strings.TrimSpace(in.Name)
	mode, err := l.participantMode(in)
	if err != nil {
		return models.Participant{}, err
	}

	l.mu.Lock()
	p := models.Participant{ID: l.newID(), Name: in.Name, Mode: mode}
	l.participants = append(l.participants, p)
	persistErr := l.saveParticipants(ctx)
	l.mu.Unlock()

	l.logger.Debug("Participant added", "participant_id", p.ID, "name", p.Name, "mode", p.Mode.String())
	l.publish(Event{Kind: ParticipantAdded, ID: p.ID}, persistErr)
	return p, nil
}

// UpdateParticipant replaces the name and allocation mode of participant id.
// The id and roster position are preserved.
func (l *Ledger) UpdateParticipant(ctx context.Context, id string, in ParticipantInput) (models.Participant, error) {
	in.Name = strings.TrimSpace(in.Name)
	mode, err := l.participantMode(in)
	if err != nil {
		return models.Participant{}, err
	}

	l.mu.Lock()
	i := l.participantIndex(id)
	if i < 0 {
		l.mu.Unlock()
		return models.Participant{}, &NotFoundError{Kind: "participant", ID: id}
	}
	l.participants[i].Name = in.Name
	l.participants[i].Mode = mode
	p := l.participants[i]
	persistErr := l.saveParticipants(ctx)
	l.mu.Unlock()

	l.logger.Debug("Participant updated", "participant_id", p.ID, "name", p.Name, "mode", p.Mode.String())
	l.publish(Event{Kind: ParticipantUpdated, ID: p.ID}, persistErr)
	return p, nil
}

// RemoveParticipant deletes participant id from the roster.
// An unknown id returns a NotFoundError and leaves the ledger untouched.
func (l *Ledger) RemoveParticipant(ctx context.Context, id string) error {
	l.mu.Lock()
	i := l.participantIndex(id)
	if i < 0 {
		l.mu.Unlock()
		return &NotFoundError{Kind: "participant", ID: id}
	}
	l.participants = slices.Delete(l.participants, i, i+1)
	persistErr := l.saveParticipants(ctx)
	l.mu.Unlock()

	l.logger.Debug("Participant removed", "participant_id", id)
	l.publish(Event{Kind: ParticipantRemoved, ID: id}, persistErr)
	return nil
}

// Participants returns a copy of the roster in insertion order.
func (l *Ledger) Participants() []models.Participant {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.participants)
}

// Participant returns participant id.
func (l *Ledger) Participant(id string) (models.Participant, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.participantIndex(id)
	if i < 0 {
		return models.Participant{}, &NotFoundError{Kind: "participant", ID: id}
	}
	return l.participants[i], nil
}

// participantIndex must be called with l.mu held.
func (l *Ledger) participantIndex(id string) int {
	return slices.IndexFunc(l.participants, func(p models.Participant) bool { return p.ID == id })
}
