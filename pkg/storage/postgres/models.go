package postgres

import (
	"database/sql"
	"time"

	"earlyaccess/pkg/domain"

	"github.com/google/uuid"
)

// PgSignup is the row layout of the signups table.
type PgSignup struct {
	ID        uuid.UUID      `db:"id"         goqu:"skipinsert"`
	Email     string         `db:"email"`
	UserAgent sql.NullString `db:"user_agent"`
	ClientIP  sql.NullString `db:"client_ip"`
	CreatedAt time.Time      `db:"created_at" goqu:"skipinsert"`
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToDomain converts the row into a domain.Signup.
func (p *PgSignup) ToDomain() *domain.Signup {
	return &domain.Signup{
		ID:        domain.SignupID(p.ID),
		Email:     domain.EmailAddress(p.Email),
		UserAgent: p.UserAgent.String,
		ClientIP:  p.ClientIP.String,
		CreatedAt: p.CreatedAt,
	}
}

// FromDomain fills the insertable columns from signup.
func (p *PgSignup) FromDomain(signup domain.Signup) {
	*p = PgSignup{
		ID:        uuid.UUID(signup.ID),
		Email:     string(signup.Email),
		UserAgent: nullString(signup.UserAgent),
		ClientIP:  nullString(signup.ClientIP),
	}
}
