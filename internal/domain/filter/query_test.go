package filter

import "testing"

func TestNormalize(t *testing.T) {
	q := Query{Page: -3, Limit: 0}.Normalize()
	if q.Page != 1 || q.Limit != DefaultLimit {
		t.Fatalf("got %+v", q)
	}
	if q := (Query{Limit: 10_000}).Normalize(); q.Limit != MaxLimit {
		t.Fatalf("limit = %d", q.Limit)
	}
}

func TestOffset(t *testing.T) {
	if got := (Query{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Fatalf("offset = %d", got)
	}
	if got := (Query{}).Offset(); got != 0 {
		t.Fatalf("zero query offset = %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count int64
		limit int
		want  int
	}{
		{0, 10, 0}, {1, 10, 1}, {10, 10, 1}, {11, 10, 2}, {25, 10, 3}, {5, 0, 0},
	}
	for _, c := range cases {
		if got := TotalPages(c.count, c.limit); got != c.want {
			t.Errorf("TotalPages(%d,%d) = %d, want %d", c.count, c.limit, got, c.want)
		}
	}
}
