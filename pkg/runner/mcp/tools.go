package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	srv.AddTool(createEntryTool(), createEntryHandler(svc))
	srv.AddTool(listEntriesTool(), listEntriesHandler(svc))
	srv.AddTool(getEntryTool(), getEntryHandler(svc))
	srv.AddTool(editEntryTool(), editEntryHandler(svc))
	srv.AddTool(toggleTaskTool(), toggleTaskHandler(svc))
	srv.AddTool(deleteEntryTool(), deleteEntryHandler(svc))
	srv.AddTool(listHashtagsTool(), listHashtagsHandler(svc))
	srv.AddTool(entriesByHashtagTool(), entriesByHashtagHandler(svc))
	srv.AddTool(searchEntriesTool(), searchEntriesHandler(svc))
}

func createEntryTool() mcp.Tool {
	return mcp.NewTool(
		"create_entry",
		mcp.WithDescription("Create a journal entry or task on a day. Hashtags are taken from the text."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title, at most 30 characters."),
		),
		mcp.WithString("text",
			mcp.Description("Free text; #hashtags inside it are indexed."),
		),
		mcp.WithString("date",
			mcp.Description("Day in YYYY-MM-DD form, defaults to today."),
		),
		mcp.WithString("type",
			mcp.Description("entry for a note, task for a checkbox item."),
			mcp.Enum("entry", "task"),
		),
		mcp.WithString("imageUri",
			mcp.Description("Optional reference to an attached image."),
		),
	)
}

func createEntryHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title    string `json:"title"`
			Text     string `json:"text"`
			Date     string `json:"date"`
			Type     string `json:"type"`
			ImageURI string `json:"imageUri"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddEntry(ctx, AddEntryOptions{
			Date:     args.Date,
			Title:    args.Title,
			Text:     args.Text,
			Type:     args.Type,
			ImageURI: args.ImageURI,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func listEntriesTool() mcp.Tool {
	return mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List the entries of one day in stored order, with each entry's position in that day."),
		mcp.WithString("date",
			mcp.Description("Day in YYYY-MM-DD form, defaults to today."),
		),
	)
}

func listEntriesHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, err := svc.ListEntries(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summary)
	}
}

func getEntryTool() mcp.Tool {
	return mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single entry by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to fetch."),
		),
	)
}

func getEntryHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func editEntryTool() mcp.Tool {
	return mcp.NewTool(
		"edit_entry",
		mcp.WithDescription("Replace the title, text or image of an entry. Omitted fields are kept; changing the text recomputes hashtags."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to modify."),
		),
		mcp.WithString("title",
			mcp.Description("New title, at most 30 characters."),
		),
		mcp.WithString("text",
			mcp.Description("New text."),
		),
		mcp.WithString("imageUri",
			mcp.Description("New image reference, empty to remove it."),
		),
	)
}

func editEntryHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID       string  `json:"id"`
			Title    *string `json:"title"`
			Text     *string `json:"text"`
			ImageURI *string `json:"imageUri"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ID == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		dto, err := svc.EditEntry(ctx, EditEntryOptions{
			ID:       args.ID,
			Title:    args.Title,
			Text:     args.Text,
			ImageURI: args.ImageURI,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func toggleTaskTool() mcp.Tool {
	return mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Flip a task between open and completed. Notes cannot be toggled."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
	)
}

func toggleTaskHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ToggleTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func deleteEntryTool() mcp.Tool {
	return mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete an entry by id, or by date and position within that day. Deleting by position moves the day's remaining entries to the end of the journal."),
		mcp.WithString("id",
			mcp.Description("Entry identifier to delete."),
		),
		mcp.WithString("date",
			mcp.Description("Day in YYYY-MM-DD form, used with position when id is not given."),
		),
		mcp.WithNumber("position",
			mcp.Description("Zero-based position within the day, as reported by list_entries."),
			mcp.Min(0),
		),
	)
}

func deleteEntryHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		removed, err := svc.DeleteEntry(ctx,
			request.GetString("id", ""),
			request.GetString("date", ""),
			request.GetInt("position", 0),
		)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": removed,
		})
	}
}

func listHashtagsTool() mcp.Tool {
	return mcp.NewTool(
		"list_hashtags",
		mcp.WithDescription("Count how many entries use each hashtag, in order of first use."),
		mcp.WithString("date",
			mcp.Description("Optional day in YYYY-MM-DD form to restrict the counts to."),
		),
	)
}

func listHashtagsHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		counts, err := svc.Hashtags(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"hashtags": counts,
			"count":    len(counts),
		})
	}
}

func entriesByHashtagTool() mcp.Tool {
	return mcp.NewTool(
		"entries_by_hashtag",
		mcp.WithDescription("List every entry whose text carries a hashtag. Matching is case sensitive."),
		mcp.WithString("hashtag",
			mcp.Required(),
			mcp.Description("Hashtag, with or without the leading #."),
		),
	)
}

func entriesByHashtagHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tag, err := request.RequireString("hashtag")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		results, err := svc.EntriesByHashtag(ctx, tag)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"hashtag": tag,
			"entries": results,
			"count":   len(results),
		})
	}
}

func searchEntriesTool() mcp.Tool {
	return mcp.NewTool(
		"search_entries",
		mcp.WithDescription("Search entry titles and text by substring, most recent first."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive search text."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)
}

func searchEntriesHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)

		results, err := svc.SearchEntries(ctx, query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	}
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
