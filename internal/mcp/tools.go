package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/SunWooBang/jira-mcp-server/internal/jira"
)

// toolHandlers holds the dependencies shared by all tool handlers.
type toolHandlers struct {
	svc            *jira.Service
	defaultProject string
}

// register adds every tool to the server. The tool set is closed: each
// known name is registered here with its own handler, and the framework
// rejects anything else.
func (h *toolHandlers) register(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("search_issues",
		mcp.WithDescription("Search Jira issues with a JQL query"),
		mcp.WithString("jql",
			mcp.Required(),
			mcp.Description("JQL query string, passed through verbatim"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results (default: 50)"),
		),
	), h.handleSearchIssues)

	s.AddTool(mcp.NewTool("get_issue",
		mcp.WithDescription("Get details of a Jira issue by key"),
		mcp.WithString("issueKey",
			mcp.Required(),
			mcp.Description("Issue key (e.g., PROJ-123)"),
		),
	), h.handleGetIssue)

	s.AddTool(mcp.NewTool("create_issue",
		mcp.WithDescription("Create a new Jira issue"),
		mcp.WithString("project",
			mcp.Description("Project key (falls back to the configured default project)"),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Issue summary/title"),
		),
		mcp.WithString("description",
			mcp.Description("Issue description (plain text)"),
		),
		mcp.WithString("issueType",
			mcp.Description("Issue type name (default: Task)"),
		),
		mcp.WithString("priority",
			mcp.Description("Priority name (default: Medium); skipped if the issue type does not allow it"),
		),
		mcp.WithString("assignee",
			mcp.Description("Assignee email or username"),
		),
		mcp.WithArray("labels",
			mcp.Description("Labels to attach"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	), h.handleCreateIssue)

	s.AddTool(mcp.NewTool("update_issue",
		mcp.WithDescription("Update fields of an existing Jira issue; only supplied fields are changed"),
		mcp.WithString("issueKey",
			mcp.Required(),
			mcp.Description("Issue key (e.g., PROJ-123)"),
		),
		mcp.WithString("summary",
			mcp.Description("New summary"),
		),
		mcp.WithString("description",
			mcp.Description("New description (plain text)"),
		),
		mcp.WithString("assignee",
			mcp.Description("New assignee email or username"),
		),
		mcp.WithString("priority",
			mcp.Description("New priority name"),
		),
		mcp.WithArray("labels",
			mcp.Description("Replacement label list"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	), h.handleUpdateIssue)

	s.AddTool(mcp.NewTool("transition_issue",
		mcp.WithDescription("Move a Jira issue to a new status"),
		mcp.WithString("issueKey",
			mcp.Required(),
			mcp.Description("Issue key (e.g., PROJ-123)"),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("Target status name (must be reachable from the current status)"),
		),
	), h.handleTransitionIssue)

	s.AddTool(mcp.NewTool("add_comment",
		mcp.WithDescription("Add a comment to a Jira issue"),
		mcp.WithString("issueKey",
			mcp.Required(),
			mcp.Description("Issue key (e.g., PROJ-123)"),
		),
		mcp.WithString("comment",
			mcp.Required(),
			mcp.Description("Comment text"),
		),
	), h.handleAddComment)

	s.AddTool(mcp.NewTool("get_project_info",
		mcp.WithDescription("Get information about a Jira project"),
		mcp.WithString("projectKey",
			mcp.Description("Project key (falls back to the configured default project)"),
		),
	), h.handleGetProjectInfo)

	s.AddTool(mcp.NewTool("get_project_issues",
		mcp.WithDescription("List issues of a project, newest first"),
		mcp.WithString("projectKey",
			mcp.Description("Project key (falls back to the configured default project)"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results (default: 50)"),
		),
		mcp.WithString("status",
			mcp.Description("Narrow to issues in this status"),
		),
	), h.handleGetProjectIssues)

	s.AddTool(mcp.NewTool("get_transitions",
		mcp.WithDescription("List the transitions currently available for a Jira issue"),
		mcp.WithString("issueKey",
			mcp.Required(),
			mcp.Description("Issue key (e.g., PROJ-123)"),
		),
	), h.handleGetTransitions)
}

func (h *toolHandlers) handleSearchIssues(
	ctx context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	jql, err := req.RequireString("jql")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	maxResults := req.GetInt("maxResults", 50)

	issues, err := h.svc.SearchIssues(ctx, jql, maxResults)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSearchResults(issues)), nil
}

func (h *toolHandlers) handleGetIssue(
	ctx context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	issueKey, err := req.RequireString("issueKey")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	detail, err := h.svc.GetIssue(ctx, issueKey)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatIssueDetail(detail)), nil
}

func (h *toolHandlers) handleCreateIssue(
	ctx context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	summary, err := req.RequireString("summary")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := jira.CreateIssueParams{
		Project:     h.projectArg(req, "project"),
		Summary:     summary,
		Description: req.GetString("description", ""),
		IssueType:   req.GetString("issueType", ""),
		Priority:    req.GetString("priority", ""),
		Assignee:    req.GetString("assignee", ""),
		Labels:      stringSliceArg(req, "labels"),
	}

	created, err := h.svc.CreateIssue(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCreatedIssue(created, params)), nil
}

func (h *toolHandlers) handleUpdateIssue(
	ctx context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	issueKey, err := req.RequireString("issueKey")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := req.GetArguments()
	var params jira.UpdateIssueParams
	if v, ok := args["summary"].(string); ok {
		params.Summary = &v
	}
	if v, ok := args["description"].(string); ok {
		params.Description = &v
	}
	if v, ok := args["assignee"].(string); ok {
		params.Assignee = &v
	}
	if v, ok := args["priority"].(string); ok {
		params.Priority = &v
	}
	if labels := stringSliceArg(req, "labels"); labels != nil {
		params.Labels = labels
	}

	if err := h.svc.UpdateIssue(ctx, issueKey, params); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatUpdatedIssue(issueKey, params)), nil
}

func (h *toolHandlers) handleTransitionIssue(
	ctx context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	issueKey, err := req.RequireString("issueKey")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	status, err := req.RequireString("status")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := h.svc.TransitionIssue(ctx, issueKey, status); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatTransitionedIssue(issueKey, status)), nil
}

func (h *toolHandlers) handleAddComment(
	ctx context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	issueKey, err := req.RequireString("issueKey")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	comment, err := req.RequireString("comment")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := h.svc.AddComment(ctx, issueKey, comment); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatAddedComment(issueKey)), nil
}

func (h *toolHandlers) handleGetProjectInfo(
	ctx context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	projectKey := h.projectArg(req, "projectKey")

	info, err := h.svc.GetProjectInfo(ctx, projectKey)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatProjectInfo(info)), nil
}

func (h *toolHandlers) handleGetProjectIssues(
	ctx context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	projectKey := h.projectArg(req, "projectKey")
	maxResults := req.GetInt("maxResults", 50)
	status := req.GetString("status", "")

	issues, err := h.svc.GetProjectIssues(ctx, projectKey, maxResults, status)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSearchResults(issues)), nil
}

func (h *toolHandlers) handleGetTransitions(
	ctx context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	issueKey, err := req.RequireString("issueKey")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	transitions, err := h.svc.GetTransitions(ctx, issueKey)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatTransitions(issueKey, transitions)), nil
}

// projectArg reads a project key argument, falling back to the
// configured default project when the caller omitted it.
func (h *toolHandlers) projectArg(req mcp.CallToolRequest, name string) string {
	if v := req.GetString(name, ""); v != "" {
		return v
	}
	return h.defaultProject
}

// stringSliceArg reads an array argument as a string slice. A missing
// argument or one that is not a sequence yields nil.
func stringSliceArg(req mcp.CallToolRequest, name string) []string {
	raw, ok := req.GetArguments()[name]
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
