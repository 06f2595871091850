package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/calbot/noteful/internal/noteservice"
	"github.com/calbot/noteful/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	svc := noteservice.NewService(testutil.TestDB(t), nil)
	return New(svc)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we call
	// the handler functions directly.
	var result *mcp.CallToolResult
	var err error
	switch name {
	case "list_folders":
		result, err = srv.listFolders(ctx, req)
	case "create_folder":
		result, err = srv.createFolder(ctx, req)
	case "list_notes":
		result, err = srv.listNotes(ctx, req)
	case "read_note":
		result, err = srv.readNote(ctx, req)
	case "create_note":
		result, err = srv.createNote(ctx, req)
	case "delete_note":
		result, err = srv.deleteNote(ctx, req)
	default:
		t.Fatalf("unknown tool %q", name)
	}
	if err != nil {
		t.Fatalf("%s returned error: %v", name, err)
	}
	return result
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) > 0 {
		if tc, ok := res.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestCreateFolderAndNoteTools(t *testing.T) {
	srv := testServer(t)

	res := callTool(t, srv, "create_folder", map[string]interface{}{"name": "Work"})
	if res.IsError {
		t.Fatalf("create_folder errored: %s", textOf(t, res))
	}
	if !strings.Contains(textOf(t, res), `"name": "Work"`) {
		t.Errorf("unexpected folder payload: %s", textOf(t, res))
	}

	res = callTool(t, srv, "create_note", map[string]interface{}{
		"name":     "n1",
		"modified": "2019-01-03T00:00:00.000Z",
		"folderId": 1,
		"content":  "<script>alert(1)</script>hi",
	})
	if res.IsError {
		t.Fatalf("create_note errored: %s", textOf(t, res))
	}
	text := textOf(t, res)
	if strings.Contains(text, "<script") {
		t.Errorf("tool leaked unsanitized content: %s", text)
	}
	if !strings.Contains(text, `"folderId": 1`) {
		t.Errorf("missing folder reference: %s", text)
	}

	res = callTool(t, srv, "read_note", map[string]interface{}{"id": 1})
	if res.IsError {
		t.Fatalf("read_note errored: %s", textOf(t, res))
	}
}

func TestCreateNoteToolNonexistentFolder(t *testing.T) {
	srv := testServer(t)

	res := callTool(t, srv, "create_note", map[string]interface{}{
		"name":     "n1",
		"modified": "2019-01-03T00:00:00.000Z",
		"folderId": 999,
		"content":  "x",
	})
	if !res.IsError {
		t.Fatalf("expected error result, got %s", textOf(t, res))
	}
	if !strings.Contains(textOf(t, res), "folder not found") {
		t.Errorf("unexpected message: %s", textOf(t, res))
	}
}

func TestReadNoteToolNotFound(t *testing.T) {
	srv := testServer(t)

	res := callTool(t, srv, "read_note", map[string]interface{}{"id": 42})
	if !res.IsError {
		t.Fatal("expected error result")
	}
}

func TestDeleteNoteTool(t *testing.T) {
	srv := testServer(t)

	callTool(t, srv, "create_folder", map[string]interface{}{"name": "Work"})
	callTool(t, srv, "create_note", map[string]interface{}{
		"name":     "n1",
		"modified": "2019-01-03T00:00:00.000Z",
		"folderId": 1,
		"content":  "x",
	})

	res := callTool(t, srv, "delete_note", map[string]interface{}{"id": 1})
	if res.IsError {
		t.Fatalf("delete errored: %s", textOf(t, res))
	}
	res = callTool(t, srv, "delete_note", map[string]interface{}{"id": 1})
	if !res.IsError {
		t.Error("second delete should report not found")
	}
}
