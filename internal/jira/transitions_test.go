package jira

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

const transitionsBody = `{
	"transitions": [
		{"id": "11", "name": "Start Progress", "to": {"id": "3", "name": "In Progress"}},
		{"id": "31", "name": "Close", "to": {"id": "6", "name": "Done"}}
	]
}`

func TestResolveTransition(t *testing.T) {
	svc := newTestService(func(req *http.Request) *http.Response {
		if req.Method != http.MethodGet || !strings.HasSuffix(req.URL.Path, "/transitions") {
			t.Fatalf("unexpected request: %s %s", req.Method, req.URL.Path)
		}
		return jsonResponse(http.StatusOK, transitionsBody)
	})

	id, err := svc.ResolveTransition(context.Background(), "PROJ-1", "done")
	if err != nil {
		t.Fatalf("ResolveTransition failed: %v", err)
	}
	if id != "31" {
		t.Fatalf("unexpected transition id: %q", id)
	}
}

func TestResolveTransitionNotAvailable(t *testing.T) {
	svc := newTestService(func(req *http.Request) *http.Response {
		return jsonResponse(http.StatusOK, transitionsBody)
	})

	_, err := svc.ResolveTransition(context.Background(), "PROJ-1", "Blocked")
	var notAvail *TransitionNotAvailableError
	if !errors.As(err, &notAvail) {
		t.Fatalf("expected TransitionNotAvailableError, got %v", err)
	}
	if notAvail.Requested != "Blocked" {
		t.Fatalf("unexpected requested status: %q", notAvail.Requested)
	}
	want := []string{"In Progress", "Done"}
	if len(notAvail.Available) != len(want) {
		t.Fatalf("unexpected available statuses: %v", notAvail.Available)
	}
	for i, name := range want {
		if notAvail.Available[i] != name {
			t.Fatalf("unexpected available statuses: %v", notAvail.Available)
		}
		if !strings.Contains(notAvail.Error(), name) {
			t.Fatalf("error message must list %q: %s", name, notAvail.Error())
		}
	}
}

func TestGetTransitionsProjection(t *testing.T) {
	svc := newTestService(func(req *http.Request) *http.Response {
		return jsonResponse(http.StatusOK, transitionsBody)
	})

	options, err := svc.GetTransitions(context.Background(), "PROJ-1")
	if err != nil {
		t.Fatalf("GetTransitions failed: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("unexpected count: %d", len(options))
	}
	if options[0].ID != "11" || options[0].Name != "Start Progress" || options[0].To != "In Progress" {
		t.Fatalf("unexpected first option: %+v", options[0])
	}
	if options[1].To != "Done" {
		t.Fatalf("remote order not preserved: %+v", options)
	}
}
