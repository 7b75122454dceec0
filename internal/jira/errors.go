package jira

import (
	"fmt"
	"strings"
)

// MissingArgumentError reports a required argument that was absent from
// a call. It is raised locally, before any network round trip.
type MissingArgumentError struct {
	Field string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// ProjectNotFoundError reports a project key the tracker did not
// recognize (or would not show to the configured principal).
type ProjectNotFoundError struct {
	Key string
	Err error
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %q not found or not accessible", e.Key)
}

func (e *ProjectNotFoundError) Unwrap() error { return e.Err }

// IssueTypeNotFoundError reports a requested issue type name that is
// not creatable in the project, along with every name that is.
type IssueTypeNotFoundError struct {
	Requested string
	Project   string
	Available []string
}

func (e *IssueTypeNotFoundError) Error() string {
	return fmt.Sprintf(
		"issue type %q not found in project %s. Available types: %s",
		e.Requested, e.Project, strings.Join(e.Available, ", "),
	)
}

// TransitionNotAvailableError reports a target status that no currently
// available transition leads to, along with the statuses that are
// reachable right now.
type TransitionNotAvailableError struct {
	Requested string
	IssueKey  string
	Available []string
}

func (e *TransitionNotAvailableError) Error() string {
	return fmt.Sprintf(
		"cannot transition %s to %q. Available statuses: %s",
		e.IssueKey, e.Requested, strings.Join(e.Available, ", "),
	)
}

// RequestError reports a network-level failure: a non-2xx response from
// the tracker, carrying its status and message verbatim.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf(
			"jira API error (%d) on %s %s",
			e.StatusCode, e.Method, e.Path,
		)
	}
	return fmt.Sprintf(
		"jira API error (%d) on %s %s: %s",
		e.StatusCode, e.Method, e.Path, e.Message,
	)
}
