package review

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"vehireview/internal/models/db_models"
)

// Context selects which presence rules apply.
type Context int

const (
	ContextDefault Context = iota
	ContextPublish
)

// ContextFor maps a stored status to the validation context it is saved under.
func ContextFor(status db_models.ReviewStatus) Context {
	if status == db_models.ReviewStatusPublish {
		return ContextPublish
	}
	return ContextDefault
}

// Operation distinguishes creation, the only time the duplicate rule runs.
type Operation int

const (
	OnCreate Operation = iota
	OnUpdate
)

type Finder interface {
	FindByUserAndVehicle(ctx context.Context, userID, vehicleID uuid.UUID) (*db_models.Review, error)
}

type Validator struct {
	finder   Finder
	messages Messages
	location *time.Location
}

func NewValidator(finder Finder, messages Messages, location *time.Location) *Validator {
	if location == nil {
		location = time.UTC
	}
	return &Validator{finder: finder, messages: messages, location: location}
}

// CheckFields applies the presence, length and comma rules. It never touches storage.
func CheckFields(r *db_models.Review, vctx Context, m Messages) Errors {
	errs := Errors{}
	checkText(errs, FieldTitle, r.Title, TitleMaxLength, vctx, m)
	checkText(errs, FieldBody, r.Body, BodyMaxLength, vctx, m)
	return errs
}

func checkText(errs Errors, field, value string, max int, vctx Context, m Messages) {
	if value == "" {
		if vctx == ContextPublish {
			errs.Add(field, m.Presence)
		}
		return
	}
	if utf8.RuneCountInString(value) > max {
		errs.Add(field, m.tooLong(max))
	}
	if strings.Contains(value, ",") {
		errs.Add(field, m.IncludesComma)
	}
}

// Validate collects every violated rule. The error return is reserved for
// lookup failures; an invalid review yields a non-empty Errors and nil.
func (v *Validator) Validate(ctx context.Context, r *db_models.Review, vctx Context, op Operation) (Errors, error) {
	errs := CheckFields(r, vctx, v.messages)
	if op != OnCreate {
		return errs, nil
	}

	message, found, err := v.DuplicateMessage(ctx, r.UserID, r.VehicleID)
	if err != nil {
		return nil, err
	}
	if found {
		errs.Add(FieldBase, message)
	}
	return errs, nil
}

// DuplicateMessage reports whether userID already reviewed vehicleID and,
// if so, the message naming the date of that review.
func (v *Validator) DuplicateMessage(ctx context.Context, userID, vehicleID uuid.UUID) (string, bool, error) {
	existing, err := v.finder.FindByUserAndVehicle(ctx, userID, vehicleID)
	if err != nil {
		return "", false, err
	}
	if existing == nil {
		return "", false, nil
	}
	return v.FormatDuplicate(existing), true, nil
}

func (v *Validator) FormatDuplicate(existing *db_models.Review) string {
	return v.messages.Duplicate + existing.CreatedAt.In(v.location).Format(dateLayout)
}

func (v *Validator) Messages() Messages {
	return v.messages
}
