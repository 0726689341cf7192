package seeder

import (
	"context"
	"fmt"
	"strings"

	"skill-swap/internal/database"
)

// requireColumns fails with every missing column listed when table does not
// have the shape a seeder writes to.
func requireColumns(ctx context.Context, q database.Querier, table string, columns ...string) error {
	if table == "" || len(columns) == 0 {
		return fmt.Errorf("empty table or column list")
	}

	rows, err := q.Query(ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: %s is missing %s", table, strings.Join(missing, ", "))
	}
	return nil
}
