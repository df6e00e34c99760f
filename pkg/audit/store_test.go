package audit

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := AccessEvent{
		Requester:  "spadmin",
		IdentityID: "alice",
		Container:  "Finance-Safe",
		Operation:  "add",
		Rights:     []string{"Use Accounts"},
	}

	mock.ExpectExec(`INSERT INTO messages`).
		WithArgs(
			FacilityAuthPriv,   // facility
			int(SeverityInfo),  // severity
			sqlmock.AnyArg(),   // timestamp
			sqlmock.AnyArg(),   // hostname
			"pam",              // appname
			sqlmock.AnyArg(),   // procid
			"container-access", // msgid
			sqlmock.AnyArg(),   // sdata (JSON)
			sqlmock.AnyArg(),   // message
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(event)
	if err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveContainerEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := ContainerEvent{
		Requester:   "spadmin",
		Container:   "Finance-Safe",
		Application: "CyberArk PAM",
		Operation:   "create",
	}

	mock.ExpectExec(`INSERT INTO messages`).
		WithArgs(
			FacilityAuthPriv,
			int(SeverityInfo),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			"pam",
			sqlmock.AnyArg(),
			"container",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(event)
	if err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreNilDB(t *testing.T) {
	store := &Store{db: nil}

	event := PrivilegedDataEvent{
		Requester: "spadmin",
		Container: "Finance-Safe",
		Operation: "attach",
		Values:    []string{"root@db01"},
	}

	// Should not error when db is nil
	err := store.Save(event)
	if err != nil {
		t.Errorf("Save() with nil db should not error, got: %v", err)
	}
}

func TestStoreClose(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	store := NewStoreWithDB(db)

	mock.ExpectClose()

	err = store.Close()
	if err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreCloseNilDB(t *testing.T) {
	store := &Store{db: nil}

	err := store.Close()
	if err != nil {
		t.Errorf("Close() with nil db should not error, got: %v", err)
	}
}

func TestMessage(t *testing.T) {
	msg := Message{
		Facility:  FacilityAuthPriv,
		Severity:  int(SeverityInfo),
		Timestamp: time.Now(),
		Hostname:  "localhost",
		Appname:   "pam",
		Procid:    12345,
		Msgid:     "container-access",
		Sdata:     map[string]map[string]string{SDIDAuth: {"user": "spadmin"}},
		Message:   "spadmin requested Use Accounts access on container Finance-Safe for identity alice",
	}

	if msg.Facility != FacilityAuthPriv {
		t.Errorf("Message.Facility = %v, want %v", msg.Facility, FacilityAuthPriv)
	}
	if msg.Msgid != "container-access" {
		t.Errorf("Message.Msgid = %v, want 'container-access'", msg.Msgid)
	}
}
