package database

const schema = `
CREATE TABLE IF NOT EXISTS document (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  filename TEXT NOT NULL UNIQUE,
  body TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS token (
  id TEXT PRIMARY KEY,
  term TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS inverted_index (
  token_id TEXT PRIMARY KEY REFERENCES token(id),
  posting_list BLOB NOT NULL
);
`
