package jira

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

const createMetaBody = `{
	"projects": [{
		"id": "10000",
		"key": "PROJ",
		"issuetypes": [
			{
				"id": "10004",
				"name": "Bug",
				"fields": {
					"summary": {"name": "Summary", "required": true}
				}
			},
			{
				"id": "10001",
				"name": "Task",
				"fields": {
					"priority": {
						"name": "Priority",
						"allowedValues": [
							{"id": "2", "name": "High"},
							{"id": "3", "name": "Medium"}
						]
					}
				}
			}
		]
	}]
}`

func metadataTransport(t *testing.T) roundTripFunc {
	return func(req *http.Request) *http.Response {
		switch {
		case strings.HasSuffix(req.URL.Path, "/project/PROJ"):
			return jsonResponse(http.StatusOK, `{"id":"10000","key":"PROJ","name":"Project"}`)
		case strings.HasSuffix(req.URL.Path, "/issue/createmeta"):
			return jsonResponse(http.StatusOK, createMetaBody)
		default:
			t.Fatalf("unexpected request: %s %s", req.Method, req.URL.Path)
			return nil
		}
	}
}

func TestResolveIssueType(t *testing.T) {
	svc := newTestService(metadataTransport(t))

	meta, err := svc.ResolveIssueType(context.Background(), "PROJ", "Bug")
	if err != nil {
		t.Fatalf("ResolveIssueType failed: %v", err)
	}
	if meta.ID != "10004" {
		t.Fatalf("unexpected id: %q", meta.ID)
	}
	if meta.AllowedPriorities != nil {
		t.Fatalf("Bug declares no priority field, got %v", meta.AllowedPriorities)
	}
}

func TestResolveIssueTypeCaseInsensitive(t *testing.T) {
	svc := newTestService(metadataTransport(t))

	meta, err := svc.ResolveIssueType(context.Background(), "PROJ", "tAsK")
	if err != nil {
		t.Fatalf("ResolveIssueType failed: %v", err)
	}
	if meta.ID != "10001" {
		t.Fatalf("unexpected id: %q", meta.ID)
	}
	if len(meta.AllowedPriorities) != 2 {
		t.Fatalf("expected allowed priorities, got %v", meta.AllowedPriorities)
	}
}

func TestResolveIssueTypeNotFound(t *testing.T) {
	svc := newTestService(metadataTransport(t))

	_, err := svc.ResolveIssueType(context.Background(), "PROJ", "Epic")
	var notFound *IssueTypeNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected IssueTypeNotFoundError, got %v", err)
	}
	if notFound.Requested != "Epic" {
		t.Fatalf("unexpected requested name: %q", notFound.Requested)
	}
	want := []string{"Bug", "Task"}
	if len(notFound.Available) != len(want) {
		t.Fatalf("unexpected available types: %v", notFound.Available)
	}
	for i, name := range want {
		if notFound.Available[i] != name {
			t.Fatalf("unexpected available types: %v", notFound.Available)
		}
	}
	for _, name := range want {
		if !strings.Contains(notFound.Error(), name) {
			t.Fatalf("error message must list %q: %s", name, notFound.Error())
		}
	}
}

func TestResolveIssueTypeProjectNotFound(t *testing.T) {
	svc := newTestService(func(req *http.Request) *http.Response {
		return jsonResponse(http.StatusNotFound, `{"errorMessages":["No project could be found"]}`)
	})

	_, err := svc.ResolveIssueType(context.Background(), "NOPE", "Bug")
	var notFound *ProjectNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ProjectNotFoundError, got %v", err)
	}
	if notFound.Key != "NOPE" {
		t.Fatalf("unexpected key: %q", notFound.Key)
	}
}

func TestResolvePriority(t *testing.T) {
	allowed := []AllowedValue{
		{ID: "2", Name: "High"},
		{ID: "3", Name: "Medium"},
	}

	id, ok := ResolvePriority(allowed, "hIgH")
	if !ok || id != "2" {
		t.Fatalf("expected id 2, got %q ok=%v", id, ok)
	}

	if _, ok := ResolvePriority(allowed, "Blocker"); ok {
		t.Fatal("unknown priority must resolve to absent, not error")
	}
	if _, ok := ResolvePriority(nil, "High"); ok {
		t.Fatal("empty allowed set must resolve to absent")
	}
}
