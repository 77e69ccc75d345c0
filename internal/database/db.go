package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// maxProbeTables caps how many table names a probe reports.
const maxProbeTables = 10

// ProbeResult describes the outcome of a connectivity probe. PingErr
// is set when the server is unreachable; TablesErr when the ping
// succeeded but introspection failed.
type ProbeResult struct {
	PingErr   error
	Tables    []string
	TablesErr error
}

// Probe checks that the database answers a ping and lists up to ten
// table names of the connected schema. It never returns an error
// itself: degradation is reported through the result so the
// diagnostic endpoint can describe partial failures.
func Probe(ctx context.Context, db *sql.DB) ProbeResult {
	var res ProbeResult

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		res.PingErr = err
		return res
	}

	rows, err := db.QueryContext(ctx, `SHOW TABLES`)
	if err != nil {
		res.TablesErr = err
		return res
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			res.TablesErr = err
			return res
		}
		res.Tables = append(res.Tables, name)
		if len(res.Tables) == maxProbeTables {
			break
		}
	}
	if err := rows.Err(); err != nil {
		res.TablesErr = err
	}
	return res
}
