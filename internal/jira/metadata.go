package jira

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// IssueTypeMeta is the result of resolving a human-readable issue type
// name against a project's creation metadata. AllowedPriorities is nil
// when the type declares no priority field, meaning priority cannot be
// set on issues of this type.
type IssueTypeMeta struct {
	ID                string
	Name              string
	AllowedPriorities []AllowedValue
}

// ResolveIssueType verifies the project exists, fetches its issue
// creation metadata, and matches requestedType case-insensitively
// against the creatable issue type names. The metadata is fetched fresh
// on every call; staleness is traded for a round trip.
func (s *Service) ResolveIssueType(
	ctx context.Context,
	projectKey string,
	requestedType string,
) (*IssueTypeMeta, error) {
	var project Project
	err := s.client.Get(
		ctx, "/rest/api/3/project/"+url.PathEscape(projectKey), &project,
	)
	if err != nil {
		return nil, &ProjectNotFoundError{Key: projectKey, Err: err}
	}

	path := fmt.Sprintf(
		"/rest/api/3/issue/createmeta?projectKeys=%s&expand=projects.issuetypes.fields",
		url.QueryEscape(projectKey),
	)
	var meta CreateMetaResponse
	if err := s.client.Get(ctx, path, &meta); err != nil {
		return nil, fmt.Errorf(
			"fetching creation metadata for %s: %w", projectKey, err,
		)
	}

	var issueTypes []CreateMetaIssueType
	for _, p := range meta.Projects {
		if strings.EqualFold(p.Key, projectKey) {
			issueTypes = p.IssueTypes
			break
		}
	}

	available := make([]string, 0, len(issueTypes))
	for _, it := range issueTypes {
		if strings.EqualFold(it.Name, requestedType) {
			return &IssueTypeMeta{
				ID:                it.ID,
				Name:              it.Name,
				AllowedPriorities: it.Fields["priority"].AllowedValues,
			}, nil
		}
		available = append(available, it.Name)
	}

	return nil, &IssueTypeNotFoundError{
		Requested: requestedType,
		Project:   projectKey,
		Available: available,
	}
}

// ResolvePriority matches requestedPriority case-insensitively against
// the allowed set and returns the matching ID. A miss or an empty
// allowed set returns ok=false, never an error: priority is best-effort
// and silently omitted when it cannot be resolved.
func ResolvePriority(
	allowed []AllowedValue,
	requestedPriority string,
) (id string, ok bool) {
	for _, v := range allowed {
		if strings.EqualFold(v.Name, requestedPriority) {
			return v.ID, true
		}
	}
	return "", false
}
