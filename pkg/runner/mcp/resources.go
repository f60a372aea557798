package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerPagesResource(srv, svc)
	registerPageTemplate(srv, svc)
	registerLayoutTemplate(srv, svc)
}

func registerPagesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"timetable://pages",
		"Pages",
		mcp.WithResourceDescription("All saved timetable pages with their size."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		pages, err := svc.ListPages(ctx)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"pages": pages,
			"count": len(pages),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerPageTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"timetable://pages/{key}",
		"Page",
		mcp.WithTemplateDescription("Lectures, time slots and links of a page."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		key := templateArg(request, "key")
		if key == "" {
			return nil, fmt.Errorf("page key is required")
		}
		dto, err := svc.GetPage(key)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func registerLayoutTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"timetable://pages/{key}/layout",
		"Page Layout",
		mcp.WithTemplateDescription("Weekday grid geometry of a page at the current time."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		key := templateArg(request, "key")
		if key == "" {
			return nil, fmt.Errorf("page key is required")
		}
		dto, err := svc.RenderPage(key, time.Time{})
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

// templateArg reads a URI template variable, which the server may deliver as
// a string or a single-element list.
func templateArg(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	case []any:
		if len(v) > 0 {
			s, _ := v[0].(string)
			return s
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
