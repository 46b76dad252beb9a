package main

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"sensory-map-api/internal/config"
	"sensory-map-api/internal/repository"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	kind := flag.String("kind", "", "What the file contains: places, addresses or reports")
	flag.Parse()

	if *file == "" || *kind == "" {
		fmt.Println("Error: --file and --kind flags are required")
		os.Exit(1)
	}

	table, ok := tables[*kind]
	if !ok {
		fmt.Printf("Error: unknown --kind %q\n", *kind)
		os.Exit(1)
	}

	log.Info().Str("file", *file).Str("kind", *kind).Msg("starting import")

	rows, err := parseCSV(*file, table.parse)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing CSV")
	}
	log.Info().Int("records", len(rows)).Msg("parsed records")

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	db, err := sql.Open("postgres", cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	// Ensure tables exist
	if _, err := db.Exec(repository.Schema); err != nil {
		log.Fatal().Err(err).Msg("error creating tables")
	}

	before, err := countRows(db, table.name)
	if err != nil {
		log.Fatal().Err(err).Msg("error counting rows")
	}

	if err := copyRows(db, table, rows); err != nil {
		log.Fatal().Err(err).Msg("error inserting records")
	}

	after, err := countRows(db, table.name)
	if err != nil {
		log.Fatal().Err(err).Msg("error counting rows")
	}
	if after-before != len(rows) {
		log.Fatal().Int("expected", len(rows)).Int("inserted", after-before).Msg("record count mismatch")
	}

	log.Info().Int("records", len(rows)).Str("table", table.name).Msg("import finished")
}

func parseCSV(filePath string, parse rowParser) ([][]interface{}, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows [][]interface{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		row, err := parse(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func copyRows(db *sql.DB, table tableSpec, rows [][]interface{}) error {
	txn, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer txn.Rollback()

	stmt, err := txn.Prepare(pq.CopyIn(table.name, table.columns...))
	if err != nil {
		return fmt.Errorf("failed to prepare copy: %w", err)
	}

	for _, row := range rows {
		if _, err := stmt.Exec(row...); err != nil {
			stmt.Close()
			return fmt.Errorf("failed to queue row: %w", err)
		}
	}

	// Flush buffered rows
	if _, err := stmt.Exec(); err != nil {
		stmt.Close()
		return fmt.Errorf("failed to flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("failed to close copy: %w", err)
	}

	return txn.Commit()
}

func countRows(db *sql.DB, table string) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM " + pq.QuoteIdentifier(table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}
