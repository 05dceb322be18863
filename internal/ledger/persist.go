package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/sharesplitter/internal/models"
)

// storageKeys are the two independent records the ledger persists.
type storageKeys struct {
	participants string
	bills        string
}

func keysFor(prefix string) storageKeys {
	return storageKeys{
		participants: prefix + ":participants",
		bills:        prefix + ":bills",
	}
}

// participantRecord is the persisted form of a participant.
// The two flags mirror the mode.
type participantRecord struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Percentage           *float64 `json:"percentage,omitempty"`
	DollarAmount         *float64 `json:"dollarAmount,omitempty"`
	HasFixedPercentage   bool     `json:"hasFixedPercentage"`
	HasFixedDollarAmount bool     `json:"hasFixedDollarAmount"`
}

// billRecord is the persisted form of a bill. CreatedAt is an RFC 3339
// timestamp in UTC.
type billRecord struct {
	ID          string  `json:"id"`
	TotalAmount float64 `json:"totalAmount"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"createdAt"`
}

func toParticipantRecord(p models.Participant) participantRecord {
	rec := participantRecord{ID: p.ID, Name: p.Name}
	switch p.Mode.Kind {
	case models.FixedPercentage:
		v := p.Mode.Value
		rec.Percentage = &v
		rec.HasFixedPercentage = true
	case models.FixedDollar:
		v := p.Mode.Value
		rec.DollarAmount = &v
		rec.HasFixedDollarAmount = true
	}
	return rec
}

func (r participantRecord) toModel() (models.Participant, error) {
	if r.ID == "" {
		return models.Participant{}, errors.New("participant without id")
	}
	if r.Name == "" {
		return models.Participant{}, fmt.Errorf("participant %s without name", r.ID)
	}

	p := models.Participant{ID: r.ID, Name: r.Name, Mode: models.FlexibleShare()}
	switch {
	case r.HasFixedPercentage && r.HasFixedDollarAmount:
		return models.Participant{}, fmt.Errorf("participant %s has both a fixed percentage and a fixed dollar amount", r.ID)
	case r.HasFixedPercentage:
		if r.Percentage == nil {
			return models.Participant{}, fmt.Errorf("participant %s is missing its percentage", r.ID)
		}
		if !inRange(*r.Percentage, 100) {
			return models.Participant{}, fmt.Errorf("participant %s has percentage %v outside (0, 100]", r.ID, *r.Percentage)
		}
		p.Mode = models.Percentage(*r.Percentage)
	case r.HasFixedDollarAmount:
		if r.DollarAmount == nil {
			return models.Participant{}, fmt.Errorf("participant %s is missing its dollar amount", r.ID)
		}
		if !inRange(*r.DollarAmount, maxAmount) {
			return models.Participant{}, fmt.Errorf("participant %s has invalid dollar amount %v", r.ID, *r.DollarAmount)
		}
		p.Mode = models.Dollar(*r.DollarAmount)
	}
	return p, nil
}

func toBillRecord(b models.Bill) billRecord {
	return billRecord{
		ID:          b.ID,
		TotalAmount: b.TotalAmount,
		Description: b.Description,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (r billRecord) toModel() (models.Bill, error) {
	if r.ID == "" {
		return models.Bill{}, errors.New("bill without id")
	}
	if !inRange(r.TotalAmount, maxAmount) {
		return models.Bill{}, fmt.Errorf("bill %s has invalid totalAmount %v", r.ID, r.TotalAmount)
	}
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return models.Bill{}, fmt.Errorf("bill %s has invalid createdAt: %w", r.ID, err)
	}
	return models.Bill{
		ID:          r.ID,
		TotalAmount: r.TotalAmount,
		Description: r.Description,
		CreatedAt:   createdAt.UTC(),
	}, nil
}

// loadParticipants reads the participant roster. Any failure is logged and
// yields an empty roster.
func (l *Ledger) loadParticipants(ctx context.Context) []models.Participant {
	var records []participantRecord
	if !l.loadRecords(ctx, l.keys.participants, &records) {
		return nil
	}

	participants := make([]models.Participant, 0, len(records))
	for _, rec := range records {
		p, err := rec.toModel()
		if err != nil {
			l.logStorageError(&StorageError{Key: l.keys.participants, Op: "decode", Err: err})
			return nil
		}
		participants = append(participants, p)
	}
	return participants
}

// loadBills reads the bill roster. Any failure is logged and yields an
// empty roster.
func (l *Ledger) loadBills(ctx context.Context) []models.Bill {
	var records []billRecord
	if !l.loadRecords(ctx, l.keys.bills, &records) {
		return nil
	}

	bills := make([]models.Bill, 0, len(records))
	for _, rec := range records {
		b, err := rec.toModel()
		if err != nil {
			l.logStorageError(&StorageError{Key: l.keys.bills, Op: "decode", Err: err})
			return nil
		}
		bills = append(bills, b)
	}
	return bills
}

// loadRecords decodes the JSON array stored under key into dst.
// It reports false when the key is missing or unusable.
func (l *Ledger) loadRecords(ctx context.Context, key string, dst any) bool {
	data, ok, err := l.store.Get(ctx, key)
	if err != nil {
		l.logStorageError(&StorageError{Key: key, Op: "load", Err: err})
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		l.logStorageError(&StorageError{Key: key, Op: "decode", Err: err})
		return false
	}
	return true
}

// saveParticipants must be called with l.mu held.
func (l *Ledger) saveParticipants(ctx context.Context) error {
	records := make([]participantRecord, len(l.participants))
	for i, p := range l.participants {
		records[i] = toParticipantRecord(p)
	}
	return l.saveRecords(ctx, l.keys.participants, records)
}

// saveBills must be called with l.mu held.
func (l *Ledger) saveBills(ctx context.Context) error {
	records := make([]billRecord, len(l.bills))
	for i, b := range l.bills {
		records[i] = toBillRecord(b)
	}
	return l.saveRecords(ctx, l.keys.bills, records)
}

func (l *Ledger) saveRecords(ctx context.Context, key string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return l.logStorageError(&StorageError{Key: key, Op: "save", Err: err})
	}
	if err := l.store.Put(ctx, key, data); err != nil {
		return l.logStorageError(&StorageError{Key: key, Op: "save", Err: err})
	}
	return nil
}

// deleteAll must be called with l.mu held. Both keys are attempted even
// if the first delete fails.
func (l *Ledger) deleteAll(ctx context.Context) error {
	var errs []error
	for _, key := range []string{l.keys.participants, l.keys.bills} {
		if err := l.store.Delete(ctx, key); err != nil {
			errs = append(errs, l.logStorageError(&StorageError{Key: key, Op: "delete", Err: err}))
		}
	}
	return errors.Join(errs...)
}

func (l *Ledger) logStorageError(err *StorageError) error {
	l.logger.Warn("Ledger persistence failed", "key", err.Key, "op", err.Op, "error", err.Err)
	return err
}
