package postgres

import (
	"context"
	"fmt"

	"earlyaccess/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	signupsTable = "signups"
)

// StoreSignup inserts signup unless its email is already registered, in which
// case it returns nil.
func (p *PgSQL) StoreSignup(ctx context.Context, signup domain.Signup) (*domain.Signup, error) {
	var row PgSignup
	row.FromDomain(signup)

	var result []PgSignup
	if err := p.Builder.Insert(signupsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(goqu.Star()).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store signup into pg: %w", err)
	}
	if len(result) == 0 {
		return nil, nil
	}

	return result[0].ToDomain(), nil
}

// SignupByEmail returns the signup for email, or nil when none exists.
func (p *PgSQL) SignupByEmail(ctx context.Context, email domain.EmailAddress) (*domain.Signup, error) {
	var row PgSignup
	found, err := p.Builder.From(signupsTable).
		Where(goqu.I("email").Eq(string(email))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get signup by email from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// CountSignups returns the number of rows in the signups table.
func (p *PgSQL) CountSignups(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(signupsTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count signups in pg: %w", err)
	}

	return n, nil
}
