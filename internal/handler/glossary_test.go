package handler_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestIntegration_GlossaryLiveSearch(t *testing.T) {
	srv, client, _ := newTestServer(t)

	postForm(t, client, srv.URL+"/signup", url.Values{
		"name":     {"Carol"},
		"email":    {"carol@example.com"},
		"password": {"password123"},
		"confirm":  {"password123"},
	})
	postForm(t, client, srv.URL+"/login", url.Values{
		"email":    {"carol@example.com"},
		"password": {"password123"},
	})

	// The full glossary page lists the built-in terms.
	code, body := getBody(t, client, srv.URL+"/glossary")
	if code != http.StatusOK {
		t.Fatalf("glossary: expected 200, got %d", code)
	}
	if !strings.Contains(body, "Liability") || !strings.Contains(body, "Confidentiality") {
		t.Fatal("expected built-in terms on glossary page")
	}

	// Live search streams a patched result list for the typed query.
	searchURL := srv.URL + "/glossary/search?datastar=" + url.QueryEscape(`{"query":"liab"}`)
	resp, err := client.Get(searchURL)
	if err != nil {
		t.Fatalf("GET /glossary/search: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search: expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
		t.Fatalf("search: expected SSE response, got Content-Type %q", ct)
	}
	stream, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if !strings.Contains(string(stream), "Legal responsibility") {
		t.Fatal("expected liability definition in patched results")
	}
	if strings.Contains(string(stream), "Keeping sensitive information secret") {
		t.Fatal("expected non-matching terms to be filtered out")
	}
}

func TestIntegration_GlossaryRequiresLogin(t *testing.T) {
	srv, client, _ := newTestServer(t)

	resp, err := client.Get(srv.URL + "/glossary")
	if err != nil {
		t.Fatalf("GET /glossary: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 redirect for anonymous visitor, got %d", resp.StatusCode)
	}
}
