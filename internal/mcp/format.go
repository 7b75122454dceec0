package mcp

import (
	"fmt"
	"strings"

	"github.com/SunWooBang/jira-mcp-server/internal/jira"
)

// The formatters below turn projected views into the single text block
// a tool call returns. Output is for humans: markdown-ish bolding and
// bullet lists, not structured data.

func formatSearchResults(issues []jira.IssueSummary) string {
	if len(issues) == 0 {
		return "No issues found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d issue(s):\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(&b, "\n**%s**: %s\n", issue.Key, issue.Summary)
		fmt.Fprintf(&b, "- Status: %s\n", issue.Status)
		fmt.Fprintf(&b, "- Assignee: %s\n", issue.Assignee)
		fmt.Fprintf(&b, "- Priority: %s\n", issue.Priority)
		fmt.Fprintf(&b, "- Created: %s\n", issue.Created)
		fmt.Fprintf(&b, "- Updated: %s\n", issue.Updated)
		fmt.Fprintf(&b, "- URL: %s\n", issue.URL)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatIssueDetail(detail *jira.IssueDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**: %s\n", detail.Key, detail.Summary)
	fmt.Fprintf(&b, "- Status: %s\n", detail.Status)
	fmt.Fprintf(&b, "- Assignee: %s\n", detail.Assignee)
	fmt.Fprintf(&b, "- Priority: %s\n", detail.Priority)
	fmt.Fprintf(&b, "- Created: %s\n", detail.Created)
	fmt.Fprintf(&b, "- Updated: %s\n", detail.Updated)
	fmt.Fprintf(&b, "- Labels: %s\n", formatLabels(detail.Labels))
	fmt.Fprintf(&b, "- URL: %s\n", detail.URL)
	fmt.Fprintf(&b, "\n**Description**:\n%s\n", detail.Description)

	if len(detail.Comments) > 0 {
		fmt.Fprintf(&b, "\n**Comments** (%d):\n", len(detail.Comments))
		for _, c := range detail.Comments {
			fmt.Fprintf(&b, "\n- %s (%s):\n  %s\n", c.Author, c.Created, c.Body)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatLabels(labels []string) string {
	if len(labels) == 0 {
		return "None"
	}
	return strings.Join(labels, ", ")
}

func formatCreatedIssue(created *jira.CreatedIssueRef, params jira.CreateIssueParams) string {
	var b strings.Builder
	b.WriteString("Issue created successfully!\n")
	fmt.Fprintf(&b, "- Key: **%s**\n", created.Key)
	fmt.Fprintf(&b, "- Summary: %s\n", params.Summary)
	fmt.Fprintf(&b, "- URL: %s", created.URL)
	return b.String()
}

func formatUpdatedIssue(issueKey string, params jira.UpdateIssueParams) string {
	var updated []string
	if params.Summary != nil {
		updated = append(updated, "summary")
	}
	if params.Description != nil {
		updated = append(updated, "description")
	}
	if params.Assignee != nil {
		updated = append(updated, "assignee")
	}
	if params.Priority != nil {
		updated = append(updated, "priority")
	}
	if params.Labels != nil {
		updated = append(updated, "labels")
	}

	if len(updated) == 0 {
		return fmt.Sprintf(
			"No fields supplied; issue **%s** left unchanged.", issueKey,
		)
	}
	return fmt.Sprintf(
		"Issue **%s** updated (%s).", issueKey, strings.Join(updated, ", "),
	)
}

func formatTransitionedIssue(issueKey, status string) string {
	return fmt.Sprintf("Issue **%s** transitioned to %q.", issueKey, status)
}

func formatAddedComment(issueKey string) string {
	return fmt.Sprintf("Comment added to **%s**.", issueKey)
}

func formatProjectInfo(info *jira.ProjectInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s)\n", info.Name, info.Key)
	fmt.Fprintf(&b, "- Description: %s\n", info.Description)
	fmt.Fprintf(&b, "- Lead: %s\n", info.Lead)
	fmt.Fprintf(&b, "- Type: %s\n", info.Type)
	fmt.Fprintf(&b, "- URL: %s", info.URL)
	return b.String()
}

func formatTransitions(issueKey string, transitions []jira.TransitionOption) string {
	if len(transitions) == 0 {
		return fmt.Sprintf("No transitions available for **%s**.", issueKey)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Available transitions for **%s**:\n", issueKey)
	for _, t := range transitions {
		fmt.Fprintf(&b, "- %s (id %s) -> %s\n", t.Name, t.ID, t.To)
	}
	return strings.TrimRight(b.String(), "\n")
}
