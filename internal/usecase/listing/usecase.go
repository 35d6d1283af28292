package listing

import (
	"context"
	"log"

	"loan-portal/internal/apiclient"
	"loan-portal/internal/infrastructure/cache"
)

const (
	ResourceLoans     = "loans"
	ResourceEnquiries = "enquiries"
)

type API interface {
	ListLoans(ctx context.Context, q apiclient.ListQuery) (*apiclient.LoanPage, error)
	DeleteLoan(ctx context.Context, id string) error
	ListEnquiries(ctx context.Context, q apiclient.ListQuery) (*apiclient.EnquiryPage, error)
	DeleteEnquiry(ctx context.Context, id string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, resource string) error
}

type Usecase struct {
	api   API
	cache Cache
}

func NewUsecase(api API, c Cache) *Usecase { return &Usecase{api: api, cache: c} }

func cached[T any](ctx context.Context, c Cache, resource string, q apiclient.ListQuery, fetch func() (*T, error)) (*T, error) {
	key := cache.Key(resource, apiclient.TokenFrom(ctx), q.Key())
	var hit T
	if ok, err := c.Get(ctx, key, &hit); err != nil {
		log.Printf("listing: %v", err)
	} else if ok {
		return &hit, nil
	}

	out, err := fetch()
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, key, out); err != nil {
		log.Printf("listing: %v", err)
	}
	return out, nil
}

func (u *Usecase) Loans(ctx context.Context, q apiclient.ListQuery) (*apiclient.LoanPage, error) {
	return cached(ctx, u.cache, ResourceLoans, q, func() (*apiclient.LoanPage, error) {
		return u.api.ListLoans(ctx, q)
	})
}

func (u *Usecase) Enquiries(ctx context.Context, q apiclient.ListQuery) (*apiclient.EnquiryPage, error) {
	return cached(ctx, u.cache, ResourceEnquiries, q, func() (*apiclient.EnquiryPage, error) {
		return u.api.ListEnquiries(ctx, q)
	})
}

// Invalidate drops cached pages of resource, e.g. after a detail view flips isSeen.
func (u *Usecase) Invalidate(ctx context.Context, resource string) {
	if err := u.cache.Invalidate(ctx, resource); err != nil {
		log.Printf("listing: %v", err)
	}
}

func (u *Usecase) DeleteLoan(ctx context.Context, id string) error {
	if err := u.api.DeleteLoan(ctx, id); err != nil {
		return err
	}
	u.Invalidate(ctx, ResourceLoans)
	return nil
}

func (u *Usecase) DeleteEnquiry(ctx context.Context, id string) error {
	if err := u.api.DeleteEnquiry(ctx, id); err != nil {
		return err
	}
	u.Invalidate(ctx, ResourceEnquiries)
	return nil
}
