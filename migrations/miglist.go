package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var miglist = []migrator{
	{
		name: "create_users",
		fn: func(ctx context.Context, pool *pgxpool.Pool) {
			if tableExists(ctx, pool, "users") {
				fmt.Println("Nothing to do")
				return
			}

			_, err := pool.Exec(ctx, `CREATE TABLE users (
				itag uuid NOT NULL UNIQUE DEFAULT gen_random_uuid(),
				user_id text PRIMARY KEY,
				api_token text NOT NULL UNIQUE,
				username text NOT NULL,
				avatar text NOT NULL DEFAULT '',
				about text NOT NULL DEFAULT 'I am a very mysterious person',
				roles text[] NOT NULL DEFAULT '{user}',
				extra_links jsonb NOT NULL DEFAULT '[]',
				banned boolean NOT NULL DEFAULT false,
				vote_banned boolean NOT NULL DEFAULT false,
				created_at timestamptz NOT NULL DEFAULT NOW()
			)`)

			if err != nil {
				panic(err)
			}
		},
	},
	{
		name: "create_bots",
		fn: func(ctx context.Context, pool *pgxpool.Pool) {
			if tableExists(ctx, pool, "bots") {
				fmt.Println("Nothing to do")
				return
			}

			_, err := pool.Exec(ctx, `CREATE TABLE bots (
				itag uuid NOT NULL UNIQUE DEFAULT gen_random_uuid(),
				bot_id text PRIMARY KEY,
				owner text NOT NULL REFERENCES users (user_id),
				api_token text NOT NULL UNIQUE,
				name text NOT NULL,
				avatar text NOT NULL DEFAULT '',
				short text NOT NULL,
				long text NOT NULL,
				tags text[] NOT NULL DEFAULT '{}',
				extra_links jsonb NOT NULL DEFAULT '[]',
				type text NOT NULL DEFAULT 'pending',
				votes integer NOT NULL DEFAULT 0,
				servers integer NOT NULL DEFAULT 0,
				featured boolean NOT NULL DEFAULT false,
				vote_banned boolean NOT NULL DEFAULT false,
				deny_reason text,
				created_at timestamptz NOT NULL DEFAULT NOW()
			)`)

			if err != nil {
				panic(err)
			}

			_, err = pool.Exec(ctx, "CREATE INDEX bots_type_votes_idx ON bots (type, votes DESC)")

			if err != nil {
				panic(err)
			}
		},
	},
	{
		name: "create_votes",
		fn: func(ctx context.Context, pool *pgxpool.Pool) {
			if tableExists(ctx, pool, "votes") {
				fmt.Println("Nothing to do")
				return
			}

			// window_bucket collapses every timestamp in the same 12 hour
			// window to one value, so the unique index makes concurrent
			// double-votes impossible at the storage layer
			_, err := pool.Exec(ctx, `CREATE TABLE votes (
				itag uuid PRIMARY KEY DEFAULT gen_random_uuid(),
				bot_id text NOT NULL REFERENCES bots (bot_id) ON DELETE CASCADE,
				user_id text NOT NULL REFERENCES users (user_id),
				created_at timestamptz NOT NULL DEFAULT NOW(),
				window_bucket bigint GENERATED ALWAYS AS (floor(extract(epoch FROM created_at) / 43200)) STORED
			)`)

			if err != nil {
				panic(err)
			}

			_, err = pool.Exec(ctx, "CREATE UNIQUE INDEX votes_one_per_window_idx ON votes (bot_id, user_id, window_bucket)")

			if err != nil {
				panic(err)
			}

			_, err = pool.Exec(ctx, "CREATE INDEX votes_bot_user_created_idx ON votes (bot_id, user_id, created_at DESC)")

			if err != nil {
				panic(err)
			}
		},
	},
	{
		name: "create_partners",
		fn: func(ctx context.Context, pool *pgxpool.Pool) {
			if tableExists(ctx, pool, "partners") {
				fmt.Println("Nothing to do")
				return
			}

			_, err := pool.Exec(ctx, `CREATE TABLE partners (
				id text PRIMARY KEY,
				name text NOT NULL,
				image text NOT NULL,
				short text NOT NULL,
				links jsonb NOT NULL DEFAULT '[]',
				user_id text NOT NULL REFERENCES users (user_id),
				created_at timestamptz NOT NULL DEFAULT NOW()
			)`)

			if err != nil {
				panic(err)
			}
		},
	},
	{
		name: "add_webhook_cols",
		fn: func(ctx context.Context, pool *pgxpool.Pool) {
			if colExists(ctx, pool, "bots", "webhook") {
				fmt.Println("Nothing to do")
				return
			}

			_, err := pool.Exec(ctx, "ALTER TABLE bots ADD COLUMN webhook text, ADD COLUMN web_auth text, ADD COLUMN hmac boolean NOT NULL DEFAULT false")

			if err != nil {
				panic(err)
			}
		},
	},
	{
		name: "repair_vote_tallies",
		fn: func(ctx context.Context, pool *pgxpool.Pool) {
			// Older data may have drifted, recount everything from the ledger
			_, err := pool.Exec(ctx, "UPDATE bots SET votes = (SELECT COUNT(*) FROM votes WHERE votes.bot_id = bots.bot_id)")

			if err != nil {
				panic(err)
			}
		},
	},
}
