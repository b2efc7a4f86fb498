// Package postgres implements the store contracts over relational tables.
// It is the optional backend, selected when DATABASE_URL is set; record
// shapes and observable behavior match the document backend exactly. The
// seq columns reproduce the document's array order: every list reads in
// insertion order.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            text PRIMARY KEY,
	name          text NOT NULL DEFAULT '',
	email         text NOT NULL,
	password_hash text NOT NULL DEFAULT '',
	role          text NOT NULL DEFAULT 'member',
	seq           bigserial
);

CREATE TABLE IF NOT EXISTS teams (
	id        text PRIMARY KEY,
	name      text NOT NULL DEFAULT '',
	leader_id text NOT NULL DEFAULT '',
	members   text[] NOT NULL DEFAULT '{}',
	seq       bigserial
);

CREATE TABLE IF NOT EXISTS tasks (
	id          text PRIMARY KEY,
	team_id     text NOT NULL DEFAULT '',
	title       text NOT NULL DEFAULT '',
	description text NOT NULL DEFAULT '',
	assigned_to text NOT NULL DEFAULT '',
	assigned_by text NOT NULL DEFAULT '',
	deadline    text NOT NULL DEFAULT '',
	status      text NOT NULL DEFAULT 'pending',
	created_at  timestamptz NOT NULL DEFAULT now(),
	updates     jsonb NOT NULL DEFAULT '[]',
	seq         bigserial
);

CREATE TABLE IF NOT EXISTS messages (
	id           text PRIMARY KEY,
	sender_id    text NOT NULL DEFAULT '',
	content      text NOT NULL DEFAULT '',
	sent_at      timestamptz NOT NULL DEFAULT now(),
	chat_type    text NOT NULL DEFAULT 'project',
	recipient_id text NOT NULL DEFAULT '',
	seq          bigserial
);
`

// Migrate applies the schema on startup. Everything is IF NOT EXISTS, so
// running it against an existing database is a no-op.
//
// Note there is no UNIQUE constraint on users.email: duplicate detection
// belongs to the register handler only, and other code paths may insert
// whatever they like. That mirrors the document backend.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
