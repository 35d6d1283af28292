package apiclient

import "context"

type tokenKey struct{}

// WithToken returns a context whose api calls carry tok as bearer token.
func WithToken(ctx context.Context, tok string) context.Context {
	return context.WithValue(ctx, tokenKey{}, tok)
}

func TokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}
