package gormrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "loan-portal/internal/domain/enquiry"
	"loan-portal/internal/domain/filter"
	"loan-portal/pkg/id"
)

func makeEnquiry(subject, message string) *domain.Enquiry {
	return &domain.Enquiry{
		ID:        id.New(),
		Name:      "Ravi",
		Email:     "ravi@example.com",
		Phone:     "9123456789",
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

func TestEnquiry_CRUD(t *testing.T) {
	repo := NewEnquiryRepository(openTestDB(t))
	ctx := context.Background()

	e := makeEnquiry("Home loan", "Which documents are required?")
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_ = repo.Create(ctx, makeEnquiry("Branch timings", "When is the Pune branch open?"))

	rows, total, err := repo.List(ctx, filter.Query{Search: "documents"})
	if err != nil || total != 1 || rows[0].ID != e.ID {
		t.Fatalf("search in message: total=%d err=%v", total, err)
	}
	if _, total, _ = repo.List(ctx, filter.Query{Search: "branch"}); total != 1 {
		t.Fatalf("search in subject: total=%d", total)
	}

	if err := repo.MarkSeen(ctx, e.ID); err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	got, err := repo.GetByID(ctx, e.ID)
	if err != nil || !got.IsSeen {
		t.Fatalf("after MarkSeen: %+v err=%v", got, err)
	}

	if err := repo.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, e.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
