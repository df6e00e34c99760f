package audit

import (
	"database/sql"
	"encoding/json"
	"os"
	"time"
)

// Store persists audit messages to a dedicated audit database.
type Store struct {
	db *sql.DB
}

// Message is the row shape written to the audit database, mirroring the
// RFC5424 fields emitted by the Logger.
type Message struct {
	Facility  int                          `json:"facility"`
	Severity  int                          `json:"severity"`
	Timestamp time.Time                    `json:"timestamp"`
	Hostname  string                       `json:"hostname"`
	Appname   string                       `json:"appname"`
	Procid    int                          `json:"procid"`
	Msgid     string                       `json:"msgid"`
	Sdata     map[string]map[string]string `json:"sdata"`
	Message   string                       `json:"message"`
}

// NewStore opens the audit database named by AUDIT_DATABASE_URL. A nil
// store (and nil error) means auditing to the database is disabled.
func NewStore() (*Store, error) {
	dbURL := os.Getenv("AUDIT_DATABASE_URL")
	if dbURL == "" {
		return nil, nil
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an existing connection, used by tests with sqlmock.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save writes one audit event as a message row. Saving on a nil or
// disabled store is a no-op.
func (s *Store) Save(event Event) error {
	if s == nil || s.db == nil {
		return nil
	}

	hostname, _ := os.Hostname()
	msg := Message{
		Facility:  event.Facility(),
		Severity:  int(event.Severity()),
		Timestamp: time.Now().UTC(),
		Hostname:  hostname,
		Appname:   "pam",
		Procid:    os.Getpid(),
		Msgid:     event.MessageID(),
		Sdata:     event.StructuredData(),
		Message:   event.Message(),
	}

	sdataJSON, err := json.Marshal(msg.Sdata)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO messages (facility, severity, timestamp, hostname, appname, procid, msgid, sdata, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		msg.Facility,
		msg.Severity,
		msg.Timestamp,
		msg.Hostname,
		msg.Appname,
		msg.Procid,
		msg.Msgid,
		sdataJSON,
		msg.Message,
	)

	return err
}

// DB returns the underlying database connection (for testing)
func (s *Store) DB() *sql.DB {
	return s.db
}
