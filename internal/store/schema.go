package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS projects (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    client        TEXT,
    description   TEXT,
    client_email  TEXT,
    client_phone  TEXT,
    status        TEXT,
    budget        REAL NOT NULL DEFAULT 0,
    start_date    TEXT,
    started_on    TEXT,
    deadline      TEXT,
    end_date      TEXT
);

CREATE TABLE IF NOT EXISTS requirements (
    id            TEXT PRIMARY KEY,
    project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
    seq           INTEGER NOT NULL DEFAULT 0,
    title         TEXT NOT NULL,
    description   TEXT,
    status        TEXT,
    priority      TEXT,
    created_at    TEXT
);

CREATE INDEX IF NOT EXISTS idx_requirements_project ON requirements(project_id, seq);
`
