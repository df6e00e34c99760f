package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := AccessEvent{
		Requester:  "spadmin",
		IdentityID: "alice",
		Container:  "Finance-Safe",
		Operation:  "add",
		Rights:     []string{"View Safe Members", "Use Accounts"},
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.Contains(output, "pam") {
		t.Error("Expected app name 'pam' in output")
	}
	if !strings.Contains(output, "container-access") {
		t.Error("Expected message ID 'container-access' in output")
	}
	if !strings.Contains(output, "spadmin") {
		t.Error("Expected requester in output")
	}
	if !strings.Contains(output, "Finance-Safe") {
		t.Error("Expected container name in output")
	}
}

func TestAccessEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     AccessEvent
		wantMsg   string
		wantSev   Severity
		wantFac   int
		wantMsgID string
	}{
		{
			name: "add identity",
			event: AccessEvent{
				Requester:  "spadmin",
				IdentityID: "alice",
				Container:  "Finance-Safe",
				Operation:  "add",
				Rights:     []string{"Use Accounts"},
			},
			wantMsg:   "requested Use Accounts access on container Finance-Safe",
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "container-access",
		},
		{
			name: "remove identity",
			event: AccessEvent{
				Requester:  "spadmin",
				IdentityID: "alice",
				Container:  "Finance-Safe",
				Operation:  "remove",
			},
			wantMsg:   "requested removal of identity alice",
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "container-access",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.Facility() != tt.wantFac {
				t.Errorf("Facility() = %v, want %v", tt.event.Facility(), tt.wantFac)
			}
			if tt.event.MessageID() != tt.wantMsgID {
				t.Errorf("MessageID() = %v, want %v", tt.event.MessageID(), tt.wantMsgID)
			}
		})
	}
}

func TestPrivilegedDataEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   PrivilegedDataEvent
		wantMsg string
	}{
		{
			name: "attach",
			event: PrivilegedDataEvent{
				Requester: "spadmin",
				Container: "Finance-Safe",
				Operation: "attach",
				Values:    []string{"root@db01"},
			},
			wantMsg: "attached privileged data [root@db01]",
		},
		{
			name: "detach",
			event: PrivilegedDataEvent{
				Requester: "spadmin",
				Container: "Finance-Safe",
				Operation: "detach",
				Values:    []string{"root@db01"},
			},
			wantMsg: "detached privileged data [root@db01]",
		},
		{
			name: "detach all",
			event: PrivilegedDataEvent{
				Requester: "spadmin",
				Container: "Finance-Safe",
				Operation: "detach",
			},
			wantMsg: "detached all privileged data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.MessageID() != "privileged-data" {
				t.Errorf("MessageID() = %v, want 'privileged-data'", tt.event.MessageID())
			}
		})
	}
}

func TestContainerEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   ContainerEvent
		wantMsg string
	}{
		{
			name: "create",
			event: ContainerEvent{
				Requester:   "spadmin",
				Container:   "Finance-Safe",
				Application: "CyberArk PAM",
				Operation:   "create",
			},
			wantMsg: "requested creation of container Finance-Safe",
		},
		{
			name: "update",
			event: ContainerEvent{
				Requester:   "spadmin",
				Container:   "Finance-Safe",
				Application: "CyberArk PAM",
				Operation:   "update",
			},
			wantMsg: "requested update of container Finance-Safe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.MessageID() != "container" {
				t.Errorf("MessageID() = %v, want 'container'", tt.event.MessageID())
			}
		})
	}
}

func TestStructuredData(t *testing.T) {
	event := AccessEvent{
		Requester:  "spadmin",
		IdentityID: "alice",
		Container:  "Finance-Safe",
		Operation:  "add",
		Rights:     []string{"Use Accounts"},
	}

	sd := event.StructuredData()

	if sd[SDIDAuth]["user"] != "spadmin" {
		t.Errorf("StructuredData auth.user = %v, want 'spadmin'", sd[SDIDAuth]["user"])
	}
	if sd[SDIDSubject]["container"] != "Finance-Safe" {
		t.Errorf("StructuredData subject.container = %v, want 'Finance-Safe'", sd[SDIDSubject]["container"])
	}
	if sd[SDIDSubject]["rights"] != "Use Accounts" {
		t.Errorf("StructuredData subject.rights = %v, want 'Use Accounts'", sd[SDIDSubject]["rights"])
	}
	if sd[SDIDAction]["operation"] != "add" {
		t.Errorf("StructuredData action.operation = %v, want 'add'", sd[SDIDAction]["operation"])
	}
}

func TestAuditToggle(t *testing.T) {
	// Save original state
	originalEnabled := auditEnabled
	defer func() {
		auditEnabled = originalEnabled
	}()

	// Test with audit disabled
	SetEnabled(false)
	if IsEnabled() {
		t.Error("Expected audit to be disabled")
	}

	// Test with audit enabled
	SetEnabled(true)
	if !IsEnabled() {
		t.Error("Expected audit to be enabled")
	}
}

func TestFormatStructuredDataStableOrder(t *testing.T) {
	sd := map[string]map[string]string{
		SDIDSubject: {"container": "Finance-Safe", "application": "CyberArk PAM"},
		SDIDAuth:    {"user": "spadmin"},
	}

	got := formatStructuredData(sd)
	expected := `[auth@43868 user="spadmin"][subject@43868 application="CyberArk PAM" container="Finance-Safe"]`
	if got != expected {
		t.Errorf("formatStructuredData() = %q, want %q", got, expected)
	}

	// Repeated formatting must not depend on map iteration order.
	for i := 0; i < 10; i++ {
		if again := formatStructuredData(sd); again != got {
			t.Fatalf("formatStructuredData() unstable: %q vs %q", again, got)
		}
	}
}

func TestEscapeSDValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", `"simple"`},
		{`with"quote`, `"with\"quote"`},
		{`with\backslash`, `"with\\backslash"`},
		{`with]bracket`, `"with\]bracket"`},
		{`all"special\chars]`, `"all\"special\\chars\]"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeSDValue(tt.input)
			if got != tt.want {
				t.Errorf("escapeSDValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
