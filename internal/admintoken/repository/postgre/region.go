package postgres

import (
	"context"
	"fmt"

	"admin-auth-srv/internal/admintoken/repository"

	"github.com/aarondl/sqlboiler/v4/queries"
)

func (r *implRepository) ListRegions(ctx context.Context, opts repository.ListRegionsOptions) ([]int64, error) {
	if r.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.queryTimeout)
		defer cancel()
	}

	var rows []regionRow
	if err := queries.Raw(regionsByUserQuery, opts.UserID).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.admintoken.repository.postgres.ListRegions.Bind: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrStore, err)
	}

	regions := make([]int64, len(rows))
	for i, row := range rows {
		regions[i] = row.Region
	}

	return regions, nil
}
