// Package repo provides clickhouse access to the order fact table
package repo

import (
	"context"

	perr "reparto/internal/platform/errors"
	"reparto/internal/platform/store"
)

// DayRow is one day bucket of order volume
type DayRow struct {
	Day      string
	Orders   uint64
	GrossEur float64
}

// StoreRow is one per-portal store id's order totals. Store ids are the raw
// per-channel identifiers the portals emit; folding them into restaurants
// happens in the service layer
type StoreRow struct {
	StoreID  string
	Orders   uint64
	GrossEur float64
}

// Repo is the read surface over fact_orders. A nil storeIDs slice means no
// id restriction; callers never pass an empty non-nil slice (they short
// circuit to an empty result instead)
type Repo interface {
	OrdersByDay(ctx context.Context, start, end string, storeIDs []string) ([]DayRow, error)
	StoreTotals(ctx context.Context, start, end string, storeIDs []string) ([]StoreRow, error)
}

type queries struct{ ch store.Clickhouse }

// NewCH wires the clickhouse seam to the repo
func NewCH(ch store.Clickhouse) Repo {
	if ch == nil {
		panic("insights repo requires a non nil clickhouse seam")
	}
	return &queries{ch: ch}
}

func (r *queries) OrdersByDay(ctx context.Context, start, end string, storeIDs []string) ([]DayRow, error) {
	sql := `
select toString(order_date) as day, count() as orders, sum(amount_eur) as gross
from fact_orders
where order_date between ? and ?
`
	args := []any{start, end}
	if storeIDs != nil {
		sql += "and store_id in (?)\n"
		args = append(args, storeIDs)
	}
	sql += "group by day\norder by day asc"

	rows, err := r.ch.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "orders by day query failed")
	}
	defer rows.Close()

	var out []DayRow
	for rows.Next() {
		var d DayRow
		if err := rows.Scan(&d.Day, &d.Orders, &d.GrossEur); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDB, "orders by day scan failed")
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *queries) StoreTotals(ctx context.Context, start, end string, storeIDs []string) ([]StoreRow, error) {
	sql := `
select store_id, count() as orders, sum(amount_eur) as gross
from fact_orders
where order_date between ? and ?
`
	args := []any{start, end}
	if storeIDs != nil {
		sql += "and store_id in (?)\n"
		args = append(args, storeIDs)
	}
	sql += "group by store_id\norder by orders desc"

	rows, err := r.ch.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "store totals query failed")
	}
	defer rows.Close()

	var out []StoreRow
	for rows.Next() {
		var s StoreRow
		if err := rows.Scan(&s.StoreID, &s.Orders, &s.GrossEur); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDB, "store totals scan failed")
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
