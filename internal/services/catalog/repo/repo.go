// Package repo provides postgres access to the raw dimension snapshot tables
package repo

import (
	"context"
	"strconv"

	"reparto/internal/modkit/repokit"
	perr "reparto/internal/platform/errors"
	"reparto/internal/platform/store"
)

// SnapshotRow is one raw dimension row as stored in a monthly snapshot.
// Rows are immutable facts; the warehouse appends a full copy of every table
// each month and flags withdrawn rows instead of deleting them
type SnapshotRow struct {
	ID      int64
	Name    string
	Address string
	Lat     *float64
	Lng     *float64
	Deleted bool
	Month   string // snapshot month as "YYYY-MM-01", lexically sortable

	// parent foreign keys, nil when the portal never linked them
	CompanyID *int64
	BrandID   *int64
	AreaID    *int64
}

// RowKey implements dimres.Row
func (r SnapshotRow) RowKey() string { return strconv.FormatInt(r.ID, 10) }

// RowPeriod implements dimres.Row
func (r SnapshotRow) RowPeriod() string { return r.Month }

// RowDeleted implements dimres.Row
func (r SnapshotRow) RowDeleted() bool { return r.Deleted }

// Repo is the read surface over the snapshot tables. Every query returns the
// snapshot history for its table; resolution happens in memory so that the
// soft-delete flag is applied only after latest-per-key selection
type Repo interface {
	Companies(ctx context.Context) ([]SnapshotRow, error)
	Brands(ctx context.Context) ([]SnapshotRow, error)
	Areas(ctx context.Context) ([]SnapshotRow, error)
	Restaurants(ctx context.Context) ([]SnapshotRow, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// snapshotWindow honors a pinned as-of month on the context; an unpinned
// context scans the full history
func snapshotWindow(ctx context.Context, sel string) (string, []any) {
	if m, ok := store.AsOfMonth(ctx); ok {
		return sel + "where snapshot_month <= $1\norder by snapshot_month, id", []any{m}
	}
	return sel + "order by snapshot_month, id", nil
}

// classify maps driver failures onto service error codes so transient
// connection or serialization faults surface as retryable
func classify(err error, table string) error {
	if err == nil {
		return nil
	}
	if perr.IsConnectionUnavailable(err) || perr.IsSerializationFailure(err) {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s query failed", table)
	}
	return perr.Wrapf(err, perr.ErrorCodeDB, "%s query failed", table)
}

func (r *queries) Companies(ctx context.Context) ([]SnapshotRow, error) {
	sql, args := snapshotWindow(ctx, `
select id, name, coalesce(deleted, false), snapshot_month::text
from dim_companies
`)
	out, err := store.Many(ctx, r.q, func(row store.Row) (SnapshotRow, error) {
		var sr SnapshotRow
		err := row.Scan(&sr.ID, &sr.Name, &sr.Deleted, &sr.Month)
		return sr, err
	}, sql, args...)
	return out, classify(err, "dim_companies")
}

func (r *queries) Brands(ctx context.Context) ([]SnapshotRow, error) {
	sql, args := snapshotWindow(ctx, `
select id, name, company_id, coalesce(deleted, false), snapshot_month::text
from dim_brands
`)
	out, err := store.Many(ctx, r.q, func(row store.Row) (SnapshotRow, error) {
		var sr SnapshotRow
		err := row.Scan(&sr.ID, &sr.Name, &sr.CompanyID, &sr.Deleted, &sr.Month)
		return sr, err
	}, sql, args...)
	return out, classify(err, "dim_brands")
}

func (r *queries) Areas(ctx context.Context) ([]SnapshotRow, error) {
	sql, args := snapshotWindow(ctx, `
select id, name, coalesce(deleted, false), snapshot_month::text
from dim_areas
`)
	out, err := store.Many(ctx, r.q, func(row store.Row) (SnapshotRow, error) {
		var sr SnapshotRow
		err := row.Scan(&sr.ID, &sr.Name, &sr.Deleted, &sr.Month)
		return sr, err
	}, sql, args...)
	return out, classify(err, "dim_areas")
}

func (r *queries) Restaurants(ctx context.Context) ([]SnapshotRow, error) {
	sql, args := snapshotWindow(ctx, `
select id, coalesce(address, ''), latitude, longitude, brand_id, area_id,
       coalesce(deleted, false), snapshot_month::text
from dim_restaurants
`)
	out, err := store.Many(ctx, r.q, func(row store.Row) (SnapshotRow, error) {
		var sr SnapshotRow
		err := row.Scan(
			&sr.ID, &sr.Address, &sr.Lat, &sr.Lng,
			&sr.BrandID, &sr.AreaID, &sr.Deleted, &sr.Month,
		)
		return sr, err
	}, sql, args...)
	return out, classify(err, "dim_restaurants")
}
