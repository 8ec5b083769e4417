package store

// Schema introspection queries. Table and column names coming out of these
// queries are the only identifiers ever interpolated into generated SQL;
// values always travel as bound parameters.
const (
	sqliteListTables = `SELECT name
	FROM sqlite_master
	WHERE type = 'table'
	  AND name NOT LIKE 'sqlite_%'
	  AND name NOT LIKE 'goose_%'
	ORDER BY name;`

	postgresListTables = `SELECT table_name
	FROM information_schema.tables
	WHERE table_schema = 'public'
	  AND table_name NOT LIKE 'goose_%'
	ORDER BY table_name;`

	postgresListColumns = `SELECT column_name
	FROM information_schema.columns
	WHERE table_schema = 'public' AND table_name = $1
	ORDER BY ordinal_position;`

	deleteAllUsers = `DELETE FROM users;`
)
