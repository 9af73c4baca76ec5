package review

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"vehireview/internal/models/db_models"
)

type stubFinder struct {
	review *db_models.Review
	err    error
	calls  int
}

func (s *stubFinder) FindByUserAndVehicle(ctx context.Context, userID, vehicleID uuid.UUID) (*db_models.Review, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.review != nil && s.review.UserID == userID && s.review.VehicleID == vehicleID {
		return s.review, nil
	}
	return nil, nil
}

var en = MessagesFor("en")

func validReview() *db_models.Review {
	return &db_models.Review{
		Title:     "Great for weekends",
		Body:      "Light and easy to handle",
		Status:    db_models.ReviewStatusPublish,
		UserID:    uuid.New(),
		VehicleID: uuid.New(),
	}
}

func TestCheckFields_Valid(t *testing.T) {
	if errs := CheckFields(validReview(), ContextPublish, en); errs.Any() {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestCheckFields_PresenceOnlyInPublish(t *testing.T) {
	cases := []struct {
		name  string
		title string
		body  string
		field string
	}{
		{"empty title", "", "body", FieldTitle},
		{"empty body", "title", "", FieldBody},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &db_models.Review{Title: tc.title, Body: tc.body}

			errs := CheckFields(r, ContextPublish, en)
			if !errs.Has(tc.field, en.Presence) {
				t.Errorf("publish: expected presence error on %s, got %v", tc.field, errs)
			}

			errs = CheckFields(r, ContextDefault, en)
			if errs.Has(tc.field, en.Presence) {
				t.Errorf("draft: unexpected presence error on %s", tc.field)
			}
			if errs.Any() {
				t.Errorf("draft: expected valid, got %v", errs)
			}
		})
	}
}

func TestCheckFields_EmptyDraftIsValid(t *testing.T) {
	r := &db_models.Review{Status: db_models.ReviewStatusDraft}
	if errs := CheckFields(r, ContextFor(r.Status), en); errs.Any() {
		t.Errorf("expected empty draft to be valid, got %v", errs)
	}
}

func TestCheckFields_TitleLength(t *testing.T) {
	for _, vctx := range []Context{ContextDefault, ContextPublish} {
		r := validReview()
		r.Title = strings.Repeat("a", TitleMaxLength)
		if errs := CheckFields(r, vctx, en); errs.Any() {
			t.Errorf("ctx %d: %d chars should be valid, got %v", vctx, TitleMaxLength, errs)
		}

		r.Title = strings.Repeat("a", TitleMaxLength+1)
		errs := CheckFields(r, vctx, en)
		if !errs.Has(FieldTitle, en.tooLong(TitleMaxLength)) {
			t.Errorf("ctx %d: expected length error on title, got %v", vctx, errs)
		}
	}
}

func TestCheckFields_LengthCountsCharactersNotBytes(t *testing.T) {
	r := validReview()
	r.Title = strings.Repeat("あ", TitleMaxLength)
	if errs := CheckFields(r, ContextPublish, en); errs.Any() {
		t.Errorf("30 multibyte characters should be valid, got %v", errs)
	}
}

func TestCheckFields_BodyLength(t *testing.T) {
	r := validReview()
	r.Status = db_models.ReviewStatusDraft
	r.Body = strings.Repeat("b", BodyMaxLength+1)
	errs := CheckFields(r, ContextDefault, en)
	if !errs.Has(FieldBody, en.tooLong(BodyMaxLength)) {
		t.Errorf("expected length error on body, got %v", errs)
	}
}

func TestCheckFields_Comma(t *testing.T) {
	r := validReview()
	r.Title = "fast, light"
	r.Body = "cheap, fun"
	errs := CheckFields(r, ContextDefault, en)
	if !errs.Has(FieldTitle, en.IncludesComma) {
		t.Errorf("expected format error on title, got %v", errs)
	}
	if !errs.Has(FieldBody, en.IncludesComma) {
		t.Errorf("expected format error on body, got %v", errs)
	}
}

func TestCheckFields_CollectsAllViolations(t *testing.T) {
	r := validReview()
	r.Title = strings.Repeat(",", TitleMaxLength+1)
	errs := CheckFields(r, ContextPublish, en)
	if len(errs[FieldTitle]) != 2 {
		t.Errorf("expected length and format errors on title, got %v", errs[FieldTitle])
	}
}

func TestValidate_DuplicateOnCreate(t *testing.T) {
	jst := time.FixedZone("JST", 9*3600)
	existing := validReview()
	existing.ID = uuid.New()
	existing.CreatedAt = time.Date(2019, 5, 17, 16, 0, 0, 0, time.UTC)

	finder := &stubFinder{review: existing}
	v := NewValidator(finder, en, jst)

	candidate := validReview()
	candidate.UserID = existing.UserID
	candidate.VehicleID = existing.VehicleID

	errs, err := v.Validate(context.Background(), candidate, ContextPublish, OnCreate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := en.Duplicate + "2019-05-18"
	if !errs.Has(FieldBase, want) {
		t.Errorf("expected base error %q, got %v", want, errs)
	}
}

func TestValidate_NoDuplicateCheckOnUpdate(t *testing.T) {
	existing := validReview()
	finder := &stubFinder{review: existing}
	v := NewValidator(finder, en, time.UTC)

	errs, err := v.Validate(context.Background(), existing, ContextPublish, OnUpdate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs.Any() {
		t.Errorf("expected valid update, got %v", errs)
	}
	if finder.calls != 0 {
		t.Errorf("finder should not be called on update, called %d times", finder.calls)
	}
}

func TestValidate_LookupFailure(t *testing.T) {
	boom := errors.New("boom")
	v := NewValidator(&stubFinder{err: boom}, en, time.UTC)
	if _, err := v.Validate(context.Background(), validReview(), ContextPublish, OnCreate); !errors.Is(err, boom) {
		t.Errorf("expected lookup error, got %v", err)
	}
}

func TestDuplicateMessage(t *testing.T) {
	ja := MessagesFor("ja")
	existing := validReview()
	existing.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	v := NewValidator(&stubFinder{review: existing}, ja, time.UTC)

	msg, found, err := v.DuplicateMessage(context.Background(), existing.UserID, existing.VehicleID)
	if err != nil || !found {
		t.Fatalf("expected duplicate, found=%v err=%v", found, err)
	}
	if msg != "すでに同一車種でレビューが投稿されています。投稿日:2024-01-02" {
		t.Errorf("unexpected message %q", msg)
	}

	_, found, err = v.DuplicateMessage(context.Background(), existing.UserID, uuid.New())
	if err != nil || found {
		t.Errorf("expected no duplicate for another vehicle, found=%v err=%v", found, err)
	}
}

func TestValidationError(t *testing.T) {
	errs := Errors{}
	if errs.Err() != nil {
		t.Fatal("empty Errors should produce nil error")
	}
	errs.Add(FieldTitle, en.Presence)
	err := errs.Err()
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || !ve.Errors.Has(FieldTitle, en.Presence) {
		t.Errorf("expected ValidationError carrying title error, got %v", err)
	}
}

func TestMessagesFor_Fallback(t *testing.T) {
	if MessagesFor("fr").Presence != en.Presence {
		t.Error("unknown locale should fall back to en")
	}
}
