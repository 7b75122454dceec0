package jira

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Transitions fetches the transitions currently available for an issue.
// Legality of a workflow step is computed remotely from the issue's
// present state; no workflow model is held locally.
func (s *Service) Transitions(
	ctx context.Context,
	issueKey string,
) ([]Transition, error) {
	path := fmt.Sprintf(
		"/rest/api/3/issue/%s/transitions", url.PathEscape(issueKey),
	)
	var resp TransitionsResponse
	if err := s.client.Get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf(
			"fetching transitions for %s: %w", issueKey, err,
		)
	}
	return resp.Transitions, nil
}

// ResolveTransition matches requestedStatus case-insensitively against
// the destination status of each currently available transition and
// returns the transition ID to apply.
func (s *Service) ResolveTransition(
	ctx context.Context,
	issueKey string,
	requestedStatus string,
) (string, error) {
	transitions, err := s.Transitions(ctx, issueKey)
	if err != nil {
		return "", err
	}

	available := make([]string, 0, len(transitions))
	for _, t := range transitions {
		if strings.EqualFold(t.To.Name, requestedStatus) {
			return t.ID, nil
		}
		available = append(available, t.To.Name)
	}

	return "", &TransitionNotAvailableError{
		Requested: requestedStatus,
		IssueKey:  issueKey,
		Available: available,
	}
}
