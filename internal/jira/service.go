package jira

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// searchFields are the Jira fields requested during list/search queries.
var searchFields = []string{
	"summary", "status", "assignee", "priority", "created", "updated",
}

// detailFields are requested when fetching a single issue.
var detailFields = []string{
	"summary", "status", "assignee", "priority", "created", "updated",
	"description", "labels", "comment",
}

// Service exposes the tracker operations behind the MCP tools. It is
// stateless apart from the injected client and safe for concurrent use;
// concurrent calls may still race on the remote resource itself.
type Service struct {
	client *Client
}

// NewService creates a Service on top of a configured client.
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// IssueSummary is the projection of a remote issue used by search
// results. Absent assignee and priority are already resolved to their
// display fallbacks here, so renderers never probe optional fields.
type IssueSummary struct {
	Key      string
	Summary  string
	Status   string
	Assignee string
	Priority string
	Created  string
	Updated  string
	URL      string
}

// IssueDetail extends IssueSummary with the long-form fields fetched
// for a single issue.
type IssueDetail struct {
	IssueSummary
	Description string
	Labels      []string
	Comments    []CommentView
}

// CommentView is one comment projected for display.
type CommentView struct {
	Author  string
	Body    string
	Created string
}

// ProjectInfo is the projection of a project record.
type ProjectInfo struct {
	Key         string
	Name        string
	Description string
	Lead        string
	Type        string
	URL         string
}

// CreatedIssueRef identifies a newly created issue.
type CreatedIssueRef struct {
	Key string
	URL string
}

// TransitionOption is one currently available transition projected for
// display.
type TransitionOption struct {
	ID   string
	Name string
	To   string
}

// CreateIssueParams are the caller-supplied inputs of CreateIssue.
// IssueType and Priority default to "Task" and "Medium" when empty.
type CreateIssueParams struct {
	Project     string
	Summary     string
	Description string
	IssueType   string
	Priority    string
	Assignee    string
	Labels      []string
}

// CreateIssue resolves the issue type (and, best-effort, the priority)
// against the project's creation metadata, assembles the payload from
// the supplied fields only, and creates the issue. The returned URL is
// the browse link of the new issue.
func (s *Service) CreateIssue(
	ctx context.Context,
	params CreateIssueParams,
) (*CreatedIssueRef, error) {
	if params.Project == "" {
		return nil, &MissingArgumentError{Field: "project"}
	}
	if params.Summary == "" {
		return nil, &MissingArgumentError{Field: "summary"}
	}

	issueType := params.IssueType
	if issueType == "" {
		issueType = "Task"
	}
	priority := params.Priority
	if priority == "" {
		priority = "Medium"
	}

	meta, err := s.ResolveIssueType(ctx, params.Project, issueType)
	if err != nil {
		return nil, err
	}

	fields := FieldsPayload{
		Project:     &ProjectRef{Key: params.Project},
		Summary:     params.Summary,
		IssueType:   &IssueTypeRef{ID: meta.ID},
		Description: DocumentFromText(params.Description),
	}
	if id, ok := ResolvePriority(meta.AllowedPriorities, priority); ok {
		fields.Priority = &PriorityRef{ID: id}
	}
	if params.Assignee != "" {
		fields.Assignee = &UserRef{Name: params.Assignee}
	}
	if len(params.Labels) > 0 {
		fields.Labels = params.Labels
	}

	var created CreatedIssue
	err = s.client.Post(
		ctx, "/rest/api/3/issue",
		struct {
			Fields FieldsPayload `json:"fields"`
		}{fields},
		&created,
	)
	if err != nil {
		return nil, err
	}

	return &CreatedIssueRef{
		Key: created.Key,
		URL: s.browseURL(created.Key),
	}, nil
}

// UpdateIssueParams are the caller-supplied inputs of UpdateIssue. Nil
// members were not supplied and stay untouched remotely. Priority is
// attached by name as given, without the metadata resolution the create
// path performs; the remote side validates it.
type UpdateIssueParams struct {
	Summary     *string
	Description *string
	Assignee    *string
	Priority    *string
	Labels      []string
}

// UpdateIssue patches only the supplied fields of an issue. When no
// field was supplied at all, no remote call is made and the update
// succeeds as a no-op.
func (s *Service) UpdateIssue(
	ctx context.Context,
	issueKey string,
	params UpdateIssueParams,
) error {
	if issueKey == "" {
		return &MissingArgumentError{Field: "issueKey"}
	}

	var fields FieldsPayload
	supplied := false

	if params.Summary != nil {
		fields.Summary = *params.Summary
		supplied = true
	}
	if params.Description != nil {
		fields.Description = DocumentFromText(*params.Description)
		supplied = fields.Description != nil || supplied
	}
	if params.Assignee != nil {
		fields.Assignee = &UserRef{Name: *params.Assignee}
		supplied = true
	}
	if params.Priority != nil {
		fields.Priority = &PriorityRef{Name: *params.Priority}
		supplied = true
	}
	if params.Labels != nil {
		fields.Labels = params.Labels
		supplied = true
	}

	if !supplied {
		return nil
	}

	return s.client.Put(
		ctx, "/rest/api/3/issue/"+url.PathEscape(issueKey),
		struct {
			Fields FieldsPayload `json:"fields"`
		}{fields},
		nil,
	)
}

// TransitionIssue resolves the target status against the transitions
// currently available for the issue and applies the matching one. The
// two remote calls are not atomic: if the workflow moves between them,
// the second call's error is surfaced as-is.
func (s *Service) TransitionIssue(
	ctx context.Context,
	issueKey string,
	status string,
) error {
	if issueKey == "" {
		return &MissingArgumentError{Field: "issueKey"}
	}
	if status == "" {
		return &MissingArgumentError{Field: "status"}
	}

	transitionID, err := s.ResolveTransition(ctx, issueKey, status)
	if err != nil {
		return err
	}

	path := fmt.Sprintf(
		"/rest/api/3/issue/%s/transitions", url.PathEscape(issueKey),
	)
	payload := struct {
		Transition struct {
			ID string `json:"id"`
		} `json:"transition"`
	}{}
	payload.Transition.ID = transitionID

	return s.client.Post(ctx, path, payload, nil)
}

// AddComment appends a comment to an issue.
func (s *Service) AddComment(
	ctx context.Context,
	issueKey string,
	comment string,
) error {
	if issueKey == "" {
		return &MissingArgumentError{Field: "issueKey"}
	}
	doc := DocumentFromText(comment)
	if doc == nil {
		return &MissingArgumentError{Field: "comment"}
	}

	path := fmt.Sprintf(
		"/rest/api/3/issue/%s/comment", url.PathEscape(issueKey),
	)
	payload := struct {
		Body *Document `json:"body"`
	}{Body: doc}

	var result Comment
	return s.client.Post(ctx, path, payload, &result)
}

// SearchIssues runs a JQL query verbatim, capped at maxResults
// (default 50), and projects each issue into a summary view in the
// order the remote system returned them.
func (s *Service) SearchIssues(
	ctx context.Context,
	jql string,
	maxResults int,
) ([]IssueSummary, error) {
	if jql == "" {
		return nil, &MissingArgumentError{Field: "jql"}
	}
	if maxResults <= 0 {
		maxResults = 50
	}

	query := url.Values{}
	query.Set("jql", jql)
	query.Set("maxResults", fmt.Sprintf("%d", maxResults))
	query.Set("fields", strings.Join(searchFields, ","))

	var resp SearchResponse
	err := s.client.Get(ctx, "/rest/api/3/search?"+query.Encode(), &resp)
	if err != nil {
		return nil, fmt.Errorf("searching issues: %w", err)
	}

	summaries := make([]IssueSummary, 0, len(resp.Issues))
	for _, issue := range resp.Issues {
		summaries = append(summaries, s.issueSummary(issue))
	}
	return summaries, nil
}

// GetIssue fetches a single issue and projects it, decoding the
// description through the ADF codec and defaulting labels to an empty
// list.
func (s *Service) GetIssue(
	ctx context.Context,
	issueKey string,
) (*IssueDetail, error) {
	if issueKey == "" {
		return nil, &MissingArgumentError{Field: "issueKey"}
	}

	path := fmt.Sprintf(
		"/rest/api/3/issue/%s?fields=%s",
		url.PathEscape(issueKey),
		url.QueryEscape(strings.Join(detailFields, ",")),
	)
	var issue Issue
	if err := s.client.Get(ctx, path, &issue); err != nil {
		return nil, fmt.Errorf("fetching issue %s: %w", issueKey, err)
	}

	detail := &IssueDetail{
		IssueSummary: s.issueSummary(issue),
		Description:  PlainText(issue.Fields.Description),
		Labels:       issue.Fields.Labels,
	}
	if detail.Labels == nil {
		detail.Labels = []string{}
	}
	if issue.Fields.Comment != nil {
		for _, c := range issue.Fields.Comment.Comments {
			detail.Comments = append(detail.Comments, CommentView{
				Author:  c.Author.DisplayName,
				Body:    PlainText(c.Body),
				Created: c.Created,
			})
		}
	}
	return detail, nil
}

// GetProjectInfo fetches a project record and projects it with display
// fallbacks for absent description and lead.
func (s *Service) GetProjectInfo(
	ctx context.Context,
	projectKey string,
) (*ProjectInfo, error) {
	if projectKey == "" {
		return nil, &MissingArgumentError{Field: "projectKey"}
	}

	var project Project
	err := s.client.Get(
		ctx, "/rest/api/3/project/"+url.PathEscape(projectKey), &project,
	)
	if err != nil {
		return nil, &ProjectNotFoundError{Key: projectKey, Err: err}
	}

	info := &ProjectInfo{
		Key:         project.Key,
		Name:        project.Name,
		Description: project.Description,
		Type:        project.ProjectType,
		URL:         s.browseURL(project.Key),
	}
	if info.Description == "" {
		info.Description = NoDescription
	}
	if project.Lead != nil && project.Lead.DisplayName != "" {
		info.Lead = project.Lead.DisplayName
	} else {
		info.Lead = "No lead assigned"
	}
	return info, nil
}

// GetProjectIssues synthesizes a JQL query for the project, optionally
// narrowed to one status, newest first, and delegates to SearchIssues.
// The status value is interpolated as-is; JQL quoting is left to the
// caller.
func (s *Service) GetProjectIssues(
	ctx context.Context,
	projectKey string,
	maxResults int,
	status string,
) ([]IssueSummary, error) {
	if projectKey == "" {
		return nil, &MissingArgumentError{Field: "projectKey"}
	}

	jql := "project = " + projectKey
	if status != "" {
		jql += ` AND status = "` + status + `"`
	}
	jql += " ORDER BY created DESC"

	return s.SearchIssues(ctx, jql, maxResults)
}

// GetTransitions lists the transitions currently available for an
// issue, in remote order.
func (s *Service) GetTransitions(
	ctx context.Context,
	issueKey string,
) ([]TransitionOption, error) {
	if issueKey == "" {
		return nil, &MissingArgumentError{Field: "issueKey"}
	}

	transitions, err := s.Transitions(ctx, issueKey)
	if err != nil {
		return nil, err
	}

	options := make([]TransitionOption, 0, len(transitions))
	for _, t := range transitions {
		options = append(options, TransitionOption{
			ID:   t.ID,
			Name: t.Name,
			To:   t.To.Name,
		})
	}
	return options, nil
}

// Myself verifies the configured credentials by fetching the principal's
// own user record.
func (s *Service) Myself(ctx context.Context) (*Myself, error) {
	var me Myself
	if err := s.client.Get(ctx, "/rest/api/3/myself", &me); err != nil {
		return nil, fmt.Errorf("validating connection: %w", err)
	}
	return &me, nil
}

// issueSummary projects a remote issue into the summary view, resolving
// absent assignee and priority to their display fallbacks.
func (s *Service) issueSummary(issue Issue) IssueSummary {
	summary := IssueSummary{
		Key:      issue.Key,
		Summary:  issue.Fields.Summary,
		Assignee: "Unassigned",
		Priority: "None",
		Created:  issue.Fields.Created,
		Updated:  issue.Fields.Updated,
		URL:      s.browseURL(issue.Key),
	}
	if issue.Fields.Status != nil {
		summary.Status = issue.Fields.Status.Name
	}
	if issue.Fields.Assignee != nil && issue.Fields.Assignee.DisplayName != "" {
		summary.Assignee = issue.Fields.Assignee.DisplayName
	}
	if issue.Fields.Priority != nil && issue.Fields.Priority.Name != "" {
		summary.Priority = issue.Fields.Priority.Name
	}
	return summary
}

func (s *Service) browseURL(key string) string {
	return s.client.BaseURL() + "/browse/" + key
}
