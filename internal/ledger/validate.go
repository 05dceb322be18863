package ledger

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/sharesplitter/internal/models"
)

// maxAmount bounds every money value so that sums over a roster stay finite.
// It matches the lte bounds on the input structs.
const maxAmount = 1e12

// ParticipantInput is the caller-supplied data for adding or updating a
// participant. At most one of Percentage and DollarAmount may be positive;
// a positive value selects the matching fixed mode, otherwise the
// participant is flexible.
type ParticipantInput struct {
	Name         string   `validate:"required,max=100"`
	Percentage   *float64 `validate:"omitempty,finite,gte=0,lte=100"`
	DollarAmount *float64 `validate:"omitempty,finite,gte=0,lte=1000000000000"`
}

// BillInput is the caller-supplied data for adding a bill.
// Amounts above maxAmount are rejected.
type BillInput struct {
	Amount      float64 `validate:"finite,gt=0,lte=1000000000000"`
	Description string  `validate:"max=500"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// check runs struct validation and converts failures to a ValidationError.
func (l *Ledger) check(input any) error {
	err := l.validate.Struct(input)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return &ValidationError{Reason: err.Error()}
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return &ValidationError{Field: fieldName(ve[0]), Reason: strings.Join(msgs, "; ")}
}

// participantMode validates in and classifies its allocation mode.
// in.Name must already be trimmed.
func (l *Ledger) participantMode(in ParticipantInput) (models.AllocationMode, error) {
	if err := l.check(in); err != nil {
		return models.AllocationMode{}, err
	}

	pct := valueOr(in.Percentage)
	dollar := valueOr(in.DollarAmount)

	switch {
	case pct > 0 && dollar > 0:
		return models.AllocationMode{}, &ValidationError{
			Reason: "a participant cannot have both a fixed percentage and a fixed dollar amount",
		}
	case pct > 0:
		return models.Percentage(pct), nil
	case dollar > 0:
		return models.Dollar(dollar), nil
	default:
		return models.FlexibleShare(), nil
	}
}

// inRange reports whether v is finite and within (0, limit].
func inRange(v, limit float64) bool {
	return !math.IsNaN(v) && v > 0 && v <= limit
}

func valueOr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "DollarAmount":
		return "dollar amount"
	default:
		return strings.ToLower(fe.Field())
	}
}

// fieldError converts a single validator.FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "finite":
		return field + " must be a finite number"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
