package audit

import (
	"fmt"
	"strings"
)

// AccessEvent records a request to add or remove an identity's access to
// a container.
type AccessEvent struct {
	Requester   string
	IdentityID  string
	Container   string
	Operation   string // "add", "remove"
	Rights      []string
	RequestName string
}

func (e AccessEvent) MessageID() string {
	return "container-access"
}

func (e AccessEvent) Message() string {
	switch e.Operation {
	case "add":
		return fmt.Sprintf("%s requested %s access on container %s for identity %s",
			e.Requester, strings.Join(e.Rights, ","), e.Container, e.IdentityID)
	default:
		return fmt.Sprintf("%s requested removal of identity %s from container %s",
			e.Requester, e.IdentityID, e.Container)
	}
}

func (e AccessEvent) Severity() Severity {
	return SeverityInfo
}

func (e AccessEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AccessEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.Requester,
		},
		SDIDSubject: {
			"container": e.Container,
			"identity":  e.IdentityID,
		},
		SDIDAction: {
			"operation": e.Operation,
		},
	}
	if len(e.Rights) > 0 {
		sd[SDIDSubject]["rights"] = strings.Join(e.Rights, ",")
	}
	if e.RequestName != "" {
		sd[SDIDAction]["request"] = e.RequestName
	}
	return sd
}

// PrivilegedDataEvent records attaching or detaching privileged-data
// items on a container.
type PrivilegedDataEvent struct {
	Requester string
	Container string
	Operation string // "attach", "detach"
	Values    []string
}

func (e PrivilegedDataEvent) MessageID() string {
	return "privileged-data"
}

func (e PrivilegedDataEvent) Message() string {
	if e.Operation == "attach" {
		return fmt.Sprintf("%s attached privileged data [%s] to container %s",
			e.Requester, strings.Join(e.Values, ","), e.Container)
	}
	if len(e.Values) == 0 {
		return fmt.Sprintf("%s detached all privileged data from container %s",
			e.Requester, e.Container)
	}
	return fmt.Sprintf("%s detached privileged data [%s] from container %s",
		e.Requester, strings.Join(e.Values, ","), e.Container)
}

func (e PrivilegedDataEvent) Severity() Severity {
	return SeverityInfo
}

func (e PrivilegedDataEvent) Facility() int {
	return FacilityAuthPriv
}

func (e PrivilegedDataEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Requester,
		},
		SDIDSubject: {
			"container": e.Container,
			"values":    strings.Join(e.Values, ","),
		},
		SDIDAction: {
			"operation": e.Operation,
		},
	}
}

// ContainerEvent records creating or updating a container.
type ContainerEvent struct {
	Requester   string
	Container   string
	Application string
	Operation   string // "create", "update"
}

func (e ContainerEvent) MessageID() string {
	return "container"
}

func (e ContainerEvent) Message() string {
	if e.Operation == "create" {
		return fmt.Sprintf("%s requested creation of container %s on application %s",
			e.Requester, e.Container, e.Application)
	}
	return fmt.Sprintf("%s requested update of container %s on application %s",
		e.Requester, e.Container, e.Application)
}

func (e ContainerEvent) Severity() Severity {
	return SeverityInfo
}

func (e ContainerEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ContainerEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Requester,
		},
		SDIDSubject: {
			"container":   e.Container,
			"application": e.Application,
		},
		SDIDAction: {
			"operation": e.Operation,
		},
	}
}
