package jira

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) *http.Response

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(rt roundTripFunc) *Service {
	c := NewClient(
		"https://example.atlassian.net", "user@example.com", "token",
		testLogger(),
	)
	c.httpClient.Transport = rt
	return NewService(c)
}

func TestClientBasicAuth(t *testing.T) {
	c := NewClient("https://example.atlassian.net/", "user@example.com", "secret", testLogger())
	c.httpClient.Transport = roundTripFunc(func(req *http.Request) *http.Response {
		want := "Basic " + base64.StdEncoding.EncodeToString(
			[]byte("user@example.com:secret"),
		)
		if got := req.Header.Get("Authorization"); got != want {
			t.Fatalf("unexpected auth header: %q", got)
		}
		return jsonResponse(http.StatusOK, `{}`)
	})

	var out struct{}
	if err := c.Get(context.Background(), "/rest/api/3/myself", &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
}

func TestClientBearerAuthWithoutEmail(t *testing.T) {
	c := NewClient("https://jira.corp.example.com", "", "pat-token", testLogger())
	c.httpClient.Transport = roundTripFunc(func(req *http.Request) *http.Response {
		if got := req.Header.Get("Authorization"); got != "Bearer pat-token" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		return jsonResponse(http.StatusOK, `{}`)
	})

	var out struct{}
	if err := c.Get(context.Background(), "/rest/api/3/myself", &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
}

func TestClientNonSuccessStatus(t *testing.T) {
	c := NewClient("https://example.atlassian.net", "user@example.com", "token", testLogger())
	c.httpClient.Transport = roundTripFunc(func(req *http.Request) *http.Response {
		return jsonResponse(
			http.StatusBadRequest,
			`{"errorMessages":["Field 'summary' is required"],"errors":{}}`,
		)
	})

	err := c.Post(context.Background(), "/rest/api/3/issue", map[string]string{}, nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", reqErr.StatusCode)
	}
	if !strings.Contains(reqErr.Message, "Field 'summary' is required") {
		t.Fatalf("remote message not carried: %q", reqErr.Message)
	}
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	c := NewClient("https://example.atlassian.net///", "", "t", testLogger())
	if c.BaseURL() != "https://example.atlassian.net" {
		t.Fatalf("unexpected base URL: %q", c.BaseURL())
	}
}
