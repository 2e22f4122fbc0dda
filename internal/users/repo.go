package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const profileColumns = `id, username, fullname, email, weight, height, dob, created_at`

type Repo struct {
	db *db.Pool
}

func NewRepo(db *db.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetCredentials(ctx context.Context, username string) (_ *auth.Credentials, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.credentials")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var creds auth.Credentials
	if err := conn.QueryRow(
		ctx,
		`SELECT id, username, password FROM users WHERE username = $1;`,
		username,
	).Scan(&creds.UserID, &creds.Username, &creds.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, db.ErrNotFoundOrForbidden
		}
		return nil, err
	}

	return &creds, nil
}

func (r *Repo) CreateUser(ctx context.Context, user NewUser) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var dob *time.Time
	if user.DOB != nil {
		t := user.DOB.Time
		dob = &t
	}

	profile, err := scanProfile(conn.QueryRow(
		ctx,
		`INSERT INTO users (username, fullname, email, password, weight, height, dob)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+profileColumns+`;`,
		user.Username, user.Fullname, user.Email, user.PasswordHash, user.Weight, user.Height, dob,
	))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(attribute.Int("user_id", profile.ID))
	return profile, nil
}

func (r *Repo) UpdatePasswordHash(ctx context.Context, username, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.password")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, `UPDATE users SET password = $1 WHERE username = $2;`, passwordHash, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFoundOrForbidden
	}
	return nil
}

func (r *Repo) GetProfile(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return scanProfile(conn.QueryRow(
		ctx,
		`SELECT `+profileColumns+` FROM users WHERE id = $1;`,
		userID,
	))
}

func (r *Repo) UpdateProfile(ctx context.Context, userID int, patch ProfilePatch) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var dob *time.Time
	if patch.DOB.HasValue() {
		t := patch.DOB.Value.Time
		dob = &t
	}

	return scanProfile(conn.QueryRow(
		ctx,
		`UPDATE users SET
				fullname = CASE WHEN $2::boolean THEN $3::varchar ELSE fullname END,
				email = CASE WHEN $4::boolean THEN $5::varchar ELSE email END,
				weight = CASE WHEN $6::boolean THEN $7::float8 ELSE weight END,
				height = CASE WHEN $8::boolean THEN $9::float8 ELSE height END,
				dob = CASE WHEN $10::boolean THEN $11::date ELSE dob END
			WHERE id = $1
			RETURNING `+profileColumns+`;`,
		userID,
		patch.Fullname.Set, patch.Fullname.Ptr(),
		patch.Email.Set, patch.Email.Ptr(),
		patch.Weight.Set, patch.Weight.Ptr(),
		patch.Height.Set, patch.Height.Ptr(),
		patch.DOB.Set, dob,
	))
}

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	var dob *time.Time
	var createdAt time.Time
	if err := row.Scan(&p.ID, &p.Username, &p.Fullname, &p.Email, &p.Weight, &p.Height, &dob, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, db.ErrNotFoundOrForbidden
		}
		return nil, err
	}
	if dob != nil {
		d := pkg.DateOf(*dob)
		p.DOB = &d
	}
	p.CreatedAt = pkg.DateTime{Time: createdAt}
	return &p, nil
}
