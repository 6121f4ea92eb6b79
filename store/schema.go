package store

const schema = `
CREATE TABLE IF NOT EXISTS financial_data (
	date TEXT NOT NULL,
	source_identifier TEXT NOT NULL,
	name TEXT NOT NULL,
	identifier TEXT,
	sedol TEXT,
	weight REAL,
	coupon TEXT,
	par_value REAL NOT NULL,
	market_value REAL NOT NULL,
	local_currency TEXT,
	maturity TEXT,
	asset_breakdown TEXT
);

CREATE INDEX IF NOT EXISTS idx_financial_data_fund_date
	ON financial_data(source_identifier, date);

CREATE TABLE IF NOT EXISTS ingest_runs (
	run_id TEXT PRIMARY KEY,
	source_file TEXT NOT NULL,
	fund TEXT NOT NULL,
	snapshot_date TEXT NOT NULL,
	rows INTEGER NOT NULL,
	ingested_at DATETIME NOT NULL
);
`
