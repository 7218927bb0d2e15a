package drivefolder

import (
	"context"
	"fmt"
	"iter"

	"github.com/okineko/go-drivefolder/errors"
)

const (
	defaultPageSize       = 100
	defaultMaxPageFetches = 1000
)

// pager drives repeated gateway List calls for one query.
type pager struct {
	gw       Gateway
	query    string
	pageSize int64
	maxPages int
}

// records returns a lazy sequence over every record matched by the
// query. Each call opens a fresh enumeration from an empty page token;
// consuming the sequence issues one List call per page, so the consumer
// drives pacing. Records are yielded in gateway order with pages
// concatenated in fetch order.
//
// The gateway may return an empty page together with a non-empty token;
// fetching continues until the token runs out, bounded by maxPages. A
// sequence that fails yields a single non-nil error and stops: the
// records seen before the failure must not be mistaken for the complete
// result.
func (p *pager) records(ctx context.Context) iter.Seq2[FileRecord, error] {
	return func(yield func(FileRecord, error) bool) {
		token := ""
		for fetched := 0; ; fetched++ {
			if err := ctx.Err(); err != nil {
				yield(FileRecord{}, err)
				return
			}
			if fetched >= p.maxPages {
				yield(FileRecord{}, errors.New(
					errors.ErrExhaustedRetries,
					fmt.Sprintf("page-fetch budget of %d exceeded", p.maxPages),
					nil,
				))
				return
			}
			page, err := p.gw.List(ctx, p.query, token, p.pageSize)
			if err != nil {
				yield(FileRecord{}, err)
				return
			}
			for _, rec := range page.Records {
				if !yield(rec, nil) {
					return
				}
			}
			if page.NextToken == "" {
				return
			}
			token = page.NextToken
		}
	}
}
