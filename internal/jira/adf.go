package jira

import (
	"encoding/json"
	"strings"
)

// NoDescription is the fallback text used when an issue carries no
// readable description or comment body.
const NoDescription = "No description"

// Node is one node of an Atlassian Document Format tree. Text is set on
// "text" leaves; Content on "doc" and "paragraph" containers.
type Node struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Content []Node `json:"content,omitempty"`
}

// Document is the ADF body Jira Cloud expects for long-form fields.
// This codec is a conservative producer: every document it emits is one
// paragraph holding one text node with the literal input.
type Document struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
	Content []Node `json:"content"`
}

// DocumentFromText wraps plain text in a minimal ADF document. Empty or
// whitespace-only input yields nil so callers can leave the field unset
// rather than sending an empty document.
func DocumentFromText(text string) *Document {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return &Document{
		Type:    "doc",
		Version: 1,
		Content: []Node{{
			Type: "paragraph",
			Content: []Node{{
				Type: "text",
				Text: text,
			}},
		}},
	}
}

// PlainText extracts readable text from a raw description or comment
// body, which the API returns either as a bare JSON string (API v2) or
// as an ADF document (API v3). Text nodes inside each top-level
// paragraph are concatenated, paragraphs are joined with a newline, and
// trailing whitespace is trimmed. Malformed or empty input degrades to
// NoDescription; this function never fails.
func PlainText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return NoDescription
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return NoDescription
		}
		return s
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return NoDescription
	}

	var paragraphs []string
	for _, node := range doc.Content {
		if node.Type != "paragraph" {
			continue
		}
		var b strings.Builder
		for _, child := range node.Content {
			if child.Type == "text" {
				b.WriteString(child.Text)
			}
		}
		paragraphs = append(paragraphs, b.String())
	}

	text := strings.TrimRight(strings.Join(paragraphs, "\n"), " \t\n")
	if text == "" {
		return NoDescription
	}
	return text
}
