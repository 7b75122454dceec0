package jira

import "encoding/json"

// SearchResponse is the response from GET /rest/api/3/search.
type SearchResponse struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// Issue represents a single Jira issue from the REST API.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self"`
	Fields IssueFields `json:"fields"`
}

// IssueFields contains the standard fields of a Jira issue. Description
// is kept raw because the API returns a plain string on v2 instances and
// an ADF document on v3; the codec in adf.go turns either into text.
type IssueFields struct {
	Summary     string          `json:"summary"`
	Status      *Status         `json:"status,omitempty"`
	Priority    *Priority       `json:"priority,omitempty"`
	IssueType   *IssueType      `json:"issuetype,omitempty"`
	Assignee    *User           `json:"assignee,omitempty"`
	Reporter    *User           `json:"reporter,omitempty"`
	Created     string          `json:"created,omitempty"`
	Updated     string          `json:"updated,omitempty"`
	Labels      []string        `json:"labels,omitempty"`
	Description json.RawMessage `json:"description,omitempty"`
	Comment     *CommentPage    `json:"comment,omitempty"`
}

// Status represents the status of a Jira issue.
type Status struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Priority represents the priority level of a Jira issue.
type Priority struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IssueType represents the type of a Jira issue (Bug, Story, etc.).
type IssueType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User represents a Jira user.
type User struct {
	Name         string `json:"name,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

// Project is the project record from GET /rest/api/3/project/{key}.
type Project struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Lead        *User  `json:"lead,omitempty"`
	ProjectType string `json:"projectTypeKey,omitempty"`
}

// Transition represents a possible status transition for a Jira issue.
type Transition struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	To   TransitionTo `json:"to"`
}

// TransitionTo describes the target status of a transition.
type TransitionTo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TransitionsResponse wraps the list of transitions returned by the API.
type TransitionsResponse struct {
	Transitions []Transition `json:"transitions"`
}

// Comment represents a single comment on a Jira issue.
type Comment struct {
	ID      string          `json:"id"`
	Body    json.RawMessage `json:"body,omitempty"`
	Author  User            `json:"author"`
	Created string          `json:"created,omitempty"`
}

// CommentPage holds a paginated list of comments.
type CommentPage struct {
	Comments   []Comment `json:"comments"`
	MaxResults int       `json:"maxResults"`
	Total      int       `json:"total"`
	StartAt    int       `json:"startAt"`
}

// Myself is the response from GET /rest/api/3/myself.
type Myself struct {
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
	Active       bool   `json:"active"`
}

// ErrorResponse is the standard Jira error response format.
type ErrorResponse struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

// CreateMetaResponse is the response from
// GET /rest/api/3/issue/createmeta?projectKeys=...&expand=projects.issuetypes.fields.
type CreateMetaResponse struct {
	Projects []CreateMetaProject `json:"projects"`
}

// CreateMetaProject holds the issue types creatable in one project.
type CreateMetaProject struct {
	ID         string               `json:"id"`
	Key        string               `json:"key"`
	IssueTypes []CreateMetaIssueType `json:"issuetypes"`
}

// CreateMetaIssueType is one creatable issue type with its field
// definitions. Fields is keyed by field ID ("priority", "summary", ...).
type CreateMetaIssueType struct {
	ID     string                     `json:"id"`
	Name   string                     `json:"name"`
	Fields map[string]CreateMetaField `json:"fields"`
}

// CreateMetaField describes one settable field of an issue type.
type CreateMetaField struct {
	Name          string         `json:"name"`
	Required      bool           `json:"required"`
	AllowedValues []AllowedValue `json:"allowedValues,omitempty"`
}

// AllowedValue is one legal value of a constrained field.
type AllowedValue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectRef identifies a project in an outgoing payload.
type ProjectRef struct {
	Key string `json:"key"`
}

// IssueTypeRef identifies an issue type in an outgoing payload.
type IssueTypeRef struct {
	ID string `json:"id"`
}

// PriorityRef identifies a priority in an outgoing payload, by resolved
// ID on the create path or by caller-supplied name on the update path.
type PriorityRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// UserRef identifies a user in an outgoing payload. The value is passed
// through as given (email or username); the remote side validates it.
type UserRef struct {
	Name string `json:"name"`
}

// FieldsPayload is the fields object sent on issue create and update.
// Only non-zero members are serialized, so a partial update carries
// exactly the fields the caller supplied.
type FieldsPayload struct {
	Project     *ProjectRef   `json:"project,omitempty"`
	Summary     string        `json:"summary,omitempty"`
	IssueType   *IssueTypeRef `json:"issuetype,omitempty"`
	Description *Document     `json:"description,omitempty"`
	Priority    *PriorityRef  `json:"priority,omitempty"`
	Assignee    *UserRef      `json:"assignee,omitempty"`
	Labels      []string      `json:"labels,omitempty"`
}

// CreatedIssue is the response from POST /rest/api/3/issue.
type CreatedIssue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}
