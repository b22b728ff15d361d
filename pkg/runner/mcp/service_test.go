package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/auth"
	"tableflip.dev/plannow/pkg/store"
)

func newTestService() *Service {
	return NewService(app.New(store.NewMemory(), auth.Static{UserID: "u1", Email: "u1@example.com"}))
}

func TestServiceAddEntryDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.AddEntry(ctx, AddEntryOptions{Title: "Test item", Text: "with #tag"})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if dto.Type != "entry" {
		t.Fatalf("expected entry type, got %s", dto.Type)
	}
	if dto.ID == "" {
		t.Fatalf("expected generated id")
	}
	if dto.Position != 0 {
		t.Fatalf("expected position 0, got %d", dto.Position)
	}
	if len(dto.Hashtags) != 1 || dto.Hashtags[0] != "#tag" {
		t.Fatalf("unexpected hashtags %v", dto.Hashtags)
	}
}

func TestServiceAddEntryRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	if _, err := svc.AddEntry(ctx, AddEntryOptions{Title: "x", Date: "tomorrow"}); err == nil {
		t.Fatal("expected invalid date error")
	}
	if _, err := svc.AddEntry(ctx, AddEntryOptions{Title: "x", Type: "event"}); err == nil {
		t.Fatal("expected invalid type error")
	}
	if _, err := svc.AddEntry(ctx, AddEntryOptions{Title: strings.Repeat("x", 31)}); err == nil {
		t.Fatal("expected title length error")
	}
}

func TestServiceToggleTask(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.AddEntry(ctx, AddEntryOptions{Title: "Finish report", Type: "task", Date: "2024-03-01"})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	toggled, err := svc.ToggleTask(ctx, dto.ID)
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if !toggled.Completed {
		t.Fatalf("expected task to be completed")
	}
	if toggled.BulletSymbol != "✘" {
		t.Fatalf("expected completed bullet, got %s", toggled.BulletSymbol)
	}

	note, _ := svc.AddEntry(ctx, AddEntryOptions{Title: "note", Date: "2024-03-01"})
	if _, err := svc.ToggleTask(ctx, note.ID); !errors.Is(err, app.ErrNotTask) {
		t.Fatalf("expected ErrNotTask, got %v", err)
	}
}

func TestServiceDeleteAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	a, _ := svc.AddEntry(ctx, AddEntryOptions{Title: "A", Date: "2024-03-01"})
	_, _ = svc.AddEntry(ctx, AddEntryOptions{Title: "B", Date: "2024-03-01", Text: "#x"})
	c, _ := svc.AddEntry(ctx, AddEntryOptions{Title: "C", Date: "2024-03-01"})

	removed, err := svc.DeleteEntry(ctx, "", "2024-03-01", 1)
	if err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if removed.Title != "B" {
		t.Fatalf("expected B removed, got %s", removed.Title)
	}
	if _, err := svc.DeleteEntry(ctx, a.ID, "", 0); err != nil {
		t.Fatalf("DeleteEntry by id failed: %v", err)
	}
	if _, err := svc.DeleteEntry(ctx, "", "", 0); err == nil {
		t.Fatal("expected error without id or date")
	}

	summary, err := svc.ListEntries(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if summary.Count != 1 || summary.Entries[0].ID != c.ID {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if len(summary.Hashtags) != 0 {
		t.Fatalf("expected no hashtags left, got %v", summary.Hashtags)
	}
}

func TestServiceHashtags(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	_, _ = svc.AddEntry(ctx, AddEntryOptions{Title: "one", Date: "2024-03-01", Text: "#a #b"})
	_, _ = svc.AddEntry(ctx, AddEntryOptions{Title: "two", Date: "2024-03-02", Text: "#a"})

	counts, err := svc.Hashtags(ctx, "")
	if err != nil {
		t.Fatalf("Hashtags failed: %v", err)
	}
	b, _ := json.Marshal(counts)
	if string(b) != `{"#a":2,"#b":1}` {
		t.Fatalf("unexpected counts %s", b)
	}

	day, _ := svc.Hashtags(ctx, "2024-03-02")
	if day.Get("#a") != 1 || day.Get("#b") != 0 {
		t.Fatalf("unexpected day counts %v", day)
	}

	tagged, err := svc.EntriesByHashtag(ctx, "a")
	if err != nil {
		t.Fatalf("EntriesByHashtag failed: %v", err)
	}
	if len(tagged) != 2 || tagged[1].Title != "two" || tagged[1].Position != 0 {
		t.Fatalf("unexpected tagged %+v", tagged)
	}
}

func TestServiceSearch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	_, _ = svc.AddEntry(ctx, AddEntryOptions{Title: "Groceries", Text: "milk"})
	_, _ = svc.AddEntry(ctx, AddEntryOptions{Title: "Call mom", Text: "about MILK"})
	_, _ = svc.AddEntry(ctx, AddEntryOptions{Title: "Run"})

	results, err := svc.SearchEntries(ctx, "milk", 10)
	if err != nil {
		t.Fatalf("SearchEntries failed: %v", err)
	}
	if len(results) != 2 || results[0].Title != "Call mom" {
		t.Fatalf("unexpected results %+v", results)
	}
	if _, err := svc.SearchEntries(ctx, " ", 10); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content %T", res.Content[0])
	}
	return tc.Text
}

func TestToolHandlers(t *testing.T) {
	svc := newTestService()

	res := callTool(t, createEntryHandler(svc), map[string]any{
		"title": "Buy milk",
		"text":  "need #groceries",
		"type":  "task",
		"date":  "2024-03-01",
	})
	if res.IsError {
		t.Fatalf("create_entry failed: %s", resultText(t, res))
	}
	var created EntryDTO
	if err := json.Unmarshal([]byte(resultText(t, res)), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	res = callTool(t, toggleTaskHandler(svc), map[string]any{"id": created.ID})
	if res.IsError || !strings.Contains(resultText(t, res), `"completed":true`) {
		t.Fatalf("toggle_task: %s", resultText(t, res))
	}

	res = callTool(t, editEntryHandler(svc), map[string]any{"id": created.ID, "text": "now #errands"})
	if res.IsError || !strings.Contains(resultText(t, res), "#errands") {
		t.Fatalf("edit_entry: %s", resultText(t, res))
	}

	res = callTool(t, getEntryHandler(svc), map[string]any{})
	if !res.IsError {
		t.Fatal("get_entry without id should fail")
	}

	res = callTool(t, createEntryHandler(svc), map[string]any{"title": ""})
	if !res.IsError {
		t.Fatal("create_entry without title should fail")
	}

	res = callTool(t, entriesByHashtagHandler(svc), map[string]any{"hashtag": "#errands"})
	if res.IsError || !strings.Contains(resultText(t, res), `"count":1`) {
		t.Fatalf("entries_by_hashtag: %s", resultText(t, res))
	}

	res = callTool(t, deleteEntryHandler(svc), map[string]any{"date": "2024-03-01", "position": 0})
	if res.IsError {
		t.Fatalf("delete_entry: %s", resultText(t, res))
	}
	res = callTool(t, listEntriesHandler(svc), map[string]any{"date": "2024-03-01"})
	if res.IsError || !strings.Contains(resultText(t, res), `"count":0`) {
		t.Fatalf("list_entries: %s", resultText(t, res))
	}
}

func TestNewServerRegistersTools(t *testing.T) {
	srv := NewServer("plannow", "test", app.New(store.NewMemory(), auth.Static{UserID: "u1"}))
	if srv == nil {
		t.Fatal("expected server")
	}
}

func TestRunnerRequiresSession(t *testing.T) {
	r := Runner{Service: app.New(store.NewMemory(), auth.Static{})}
	if err := r.Do(context.Background()); !errors.Is(err, auth.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
