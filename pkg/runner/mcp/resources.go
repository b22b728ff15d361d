package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerHashtagsResource(srv, svc)
	registerDatesResource(srv, svc)
	registerDayTemplate(srv, svc)
	registerEntryTemplate(srv, svc)
}

func registerHashtagsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"plannow://hashtags",
		"Hashtags",
		mcp.WithResourceDescription("Every hashtag in the journal with the number of entries using it."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		counts, err := svc.Hashtags(ctx, "")
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"hashtags": counts,
			"count":    len(counts),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerDatesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"plannow://days",
		"Days",
		mcp.WithResourceDescription("Days that have at least one entry, oldest first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dates, err := svc.Dates(ctx)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"days":  dates,
			"count": len(dates),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"plannow://days/{date}",
		"Day Entries",
		mcp.WithTemplateDescription("Entries of one day (YYYY-MM-DD) and the hashtags used that day."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		date := templateArg(request, "date")
		if date == "" {
			return nil, fmt.Errorf("date is required")
		}

		summary, err := svc.ListEntries(ctx, date)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, summary)
	})
}

func registerEntryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"plannow://entries/{id}",
		"Entry Details",
		mcp.WithTemplateDescription("Detailed information about a single entry."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request, "id")
		if id == "" {
			return nil, fmt.Errorf("entry id is required")
		}

		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"entry": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// templateArg reads a URI template variable. Depending on the matcher the
// value arrives as a string or a one-element slice.
func templateArg(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
