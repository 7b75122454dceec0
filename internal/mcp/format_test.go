package mcp

import (
	"strings"
	"testing"

	"github.com/SunWooBang/jira-mcp-server/internal/jira"
)

func TestFormatSearchResults(t *testing.T) {
	issues := []jira.IssueSummary{
		{
			Key:      "PROJ-1",
			Summary:  "First",
			Status:   "To Do",
			Assignee: "Unassigned",
			Priority: "None",
			URL:      "https://example.atlassian.net/browse/PROJ-1",
		},
	}

	got := formatSearchResults(issues)
	if !strings.HasPrefix(got, "Found 1 issue(s):") {
		t.Fatalf("unexpected header: %q", got)
	}
	if !strings.Contains(got, "**PROJ-1**: First") {
		t.Fatalf("issue line missing: %q", got)
	}
	if !strings.Contains(got, "- Assignee: Unassigned") {
		t.Fatalf("assignee fallback missing: %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("trailing newline not trimmed: %q", got)
	}
}

func TestFormatSearchResultsEmpty(t *testing.T) {
	if got := formatSearchResults(nil); got != "No issues found." {
		t.Fatalf("unexpected empty rendering: %q", got)
	}
}

func TestFormatIssueDetail(t *testing.T) {
	detail := &jira.IssueDetail{
		IssueSummary: jira.IssueSummary{
			Key: "PROJ-1", Summary: "First", Status: "To Do",
			Assignee: "Jane", Priority: "High",
		},
		Description: "Broken on mobile",
		Labels:      []string{},
		Comments: []jira.CommentView{
			{Author: "Jane", Body: "on it", Created: "2026-08-03"},
		},
	}

	got := formatIssueDetail(detail)
	if !strings.Contains(got, "- Labels: None") {
		t.Fatalf("empty labels must render as None: %q", got)
	}
	if !strings.Contains(got, "**Description**:\nBroken on mobile") {
		t.Fatalf("description section missing: %q", got)
	}
	if !strings.Contains(got, "**Comments** (1):") {
		t.Fatalf("comments section missing: %q", got)
	}
}

func TestFormatIssueDetailNoComments(t *testing.T) {
	detail := &jira.IssueDetail{
		IssueSummary: jira.IssueSummary{Key: "PROJ-1", Summary: "First"},
		Description:  jira.NoDescription,
	}
	if got := formatIssueDetail(detail); strings.Contains(got, "Comments") {
		t.Fatalf("comment section must be omitted when empty: %q", got)
	}
}

func TestFormatTransitionsEmpty(t *testing.T) {
	got := formatTransitions("PROJ-1", nil)
	if got != "No transitions available for **PROJ-1**." {
		t.Fatalf("unexpected rendering: %q", got)
	}
}
