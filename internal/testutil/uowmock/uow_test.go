package uowmock

import (
	"context"
	"errors"
	"testing"

	"loan-portal/internal/domain/uow"
	"loan-portal/internal/testutil/adminmock"
	"loan-portal/internal/testutil/enquirymock"
	"loan-portal/internal/testutil/loanmock"
)

func TestPassthrough_ForwardsRepos(t *testing.T) {
	loans, enqs, admins := &loanmock.Repo{}, &enquirymock.Repo{}, &adminmock.Repo{}
	m := Passthrough(uow.Repos{Loans: loans, Enquiries: enqs, Admins: admins})

	called := false
	err := m.WithinTx(context.Background(), func(r uow.Repos) error {
		called = true
		if r.Loans != loans || r.Enquiries != enqs || r.Admins != admins {
			t.Fatalf("repos not forwarded")
		}
		return nil
	})
	if err != nil || !called {
		t.Fatalf("err=%v called=%v", err, called)
	}
}

func TestWithinTx_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	m := Passthrough(uow.Repos{})
	if err := m.WithinTx(context.Background(), func(uow.Repos) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}

func TestWithinTx_Unimplemented(t *testing.T) {
	if err := (&UoW{}).WithinTx(context.Background(), func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("want errUnimplemented, got %v", err)
	}
}
