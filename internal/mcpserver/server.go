// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Noteful tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/calbot/noteful/internal/apperr"
	"github.com/calbot/noteful/internal/noteservice"
)

// Server wraps the MCP server with Noteful tools.
type Server struct {
	mcp *server.MCPServer
	svc *noteservice.Service
}

// New creates a new MCP server with all Noteful tools registered.
func New(svc *noteservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Noteful",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("list_folders",
		mcp.WithDescription("List all folders."),
	), s.listFolders)

	s.mcp.AddTool(mcp.NewTool("create_folder",
		mcp.WithDescription("Create a new folder."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Folder name")),
	), s.createFolder)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List all notes with their folder references."),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read a single note by id."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Note id")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a new note inside an existing folder."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Note name")),
		mcp.WithString("modified", mcp.Required(), mcp.Description("Last-modified timestamp, e.g. 2019-01-03T00:00:00.000Z")),
		mcp.WithNumber("folderId", mcp.Required(), mcp.Description("Id of the folder the note belongs to")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Note content")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("delete_note",
		mcp.WithDescription("Delete a note by id."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Note id")),
	), s.deleteNote)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listFolders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folders, err := s.svc.ListFolders(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(folders, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	folder, err := s.svc.CreateFolder(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(folder, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes, err := s.svc.ListNotes(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(notes, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note, err := s.svc.GetNote(ctx, int64(id))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("note not found: %d", id)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(note, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	modified, err := req.RequireString("modified")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	folderID, err := req.RequireInt("folderId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	note, err := s.svc.CreateNote(ctx, name, modified, int64(folderID), content)
	if err != nil {
		if errors.Is(err, apperr.ErrFolderNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("folder not found: %d", folderID)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(note, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) deleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.svc.DeleteNote(ctx, int64(id)); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("note not found: %d", id)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted: %d", id)), nil
}
