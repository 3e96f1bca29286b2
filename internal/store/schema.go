package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS income_sources (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    amount          REAL NOT NULL DEFAULT 0,
    frequency       TEXT NOT NULL,
    active          INTEGER NOT NULL DEFAULT 1,
    rank            INTEGER NOT NULL DEFAULT 0,
    next_pay_date   TEXT
);

CREATE TABLE IF NOT EXISTS envelopes (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    target_amount   REAL NOT NULL DEFAULT 0,
    frequency       TEXT NOT NULL,
    priority        TEXT NOT NULL,
    subtype         TEXT NOT NULL,
    due_date        TEXT,
    tracking_only   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS allocations (
    envelope_id         TEXT NOT NULL REFERENCES envelopes(id) ON DELETE CASCADE,
    income_source_id    TEXT NOT NULL,
    amount              REAL NOT NULL DEFAULT 0,
    PRIMARY KEY (envelope_id, income_source_id)
);

CREATE INDEX IF NOT EXISTS idx_income_rank ON income_sources(rank);
CREATE INDEX IF NOT EXISTS idx_alloc_source ON allocations(income_source_id);
`
