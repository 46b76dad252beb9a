package repository

// Schema creates the tables read by the repository. It is idempotent.
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS places (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(64) NOT NULL DEFAULT '',
		relevance DOUBLE PRECISION NOT NULL DEFAULT 0,
		geom GEOGRAPHY(POINT, 4326) NOT NULL
	);
	CREATE INDEX IF NOT EXISTS places_geom_idx ON places USING GIST (geom);

	CREATE TABLE IF NOT EXISTS addresses (
		id BIGSERIAL PRIMARY KEY,
		region VARCHAR(255) NOT NULL DEFAULT '',
		locality VARCHAR(255) NOT NULL DEFAULT '',
		street VARCHAR(255) NOT NULL DEFAULT '',
		number VARCHAR(64) NOT NULL DEFAULT '',
		geom GEOGRAPHY(POINT, 4326) NOT NULL
	);
	CREATE INDEX IF NOT EXISTS addresses_geom_idx ON addresses USING GIST (geom);

	CREATE TABLE IF NOT EXISTS reports (
		id UUID PRIMARY KEY,
		geom GEOGRAPHY(POINT, 4326) NOT NULL,
		noise DOUBLE PRECISION NOT NULL,
		crowds DOUBLE PRECISION NOT NULL,
		lighting DOUBLE PRECISION NOT NULL,
		quiet_score INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		submitter VARCHAR(255),
		display_name VARCHAR(255),
		display_tier VARCHAR(16),
		confidence DOUBLE PRECISION
	);
	CREATE INDEX IF NOT EXISTS reports_created_at_idx ON reports (created_at);
`
