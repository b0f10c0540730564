package journal

const schemaSQL = `
CREATE TABLE IF NOT EXISTS events (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    kind         TEXT NOT NULL,
    friend_id    TEXT NOT NULL,
    friend_name  TEXT NOT NULL,
    amount       TEXT NOT NULL,
    balance      TEXT NOT NULL,
    at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_friend ON events(friend_id, kind);
`
