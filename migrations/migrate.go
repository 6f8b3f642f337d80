package migrations

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

func HasMigrated(ctx context.Context, pool *pgxpool.Pool) bool {
	for _, table := range []string{"users", "bots", "votes", "partners"} {
		if !tableExists(ctx, pool, table) {
			return false
		}
	}

	if !colExists(ctx, pool, "bots", "webhook") {
		return false
	}

	// Without this index the cooldown is only enforced in application code
	return indexExists(ctx, pool, "votes_one_per_window_idx")
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) {
	if HasMigrated(ctx, pool) {
		fmt.Println("Nothing to do")
		return
	}

	for i, m := range miglist {
		fmt.Println("Running migration ["+strconv.Itoa(i)+"/"+strconv.Itoa(len(miglist))+"]", m.name)
		m.fn(ctx, pool)
	}
}
