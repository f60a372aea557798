package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/lecture"
)

type handlers struct {
	svc *Service
}

func registerTools(srv *server.MCPServer, svc *Service) {
	h := &handlers{svc: svc}
	page := func() mcp.ToolOption {
		return mcp.WithString("page", mcp.Required(), mcp.Description("Page key (the page title)."))
	}
	lectureID := func() mcp.ToolOption {
		return mcp.WithString("lecture", mcp.Required(), mcp.Description("Lecture id."))
	}
	slotOpts := []mcp.ToolOption{
		mcp.WithString("weekday",
			mcp.Description("Weekday code or name."),
			mcp.Enum("SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"),
		),
		mcp.WithString("begin", mcp.Description("Begin time, HH:MM.")),
		mcp.WithString("end", mcp.Description("End time, HH:MM.")),
	}
	linkOpts := []mcp.ToolOption{
		mcp.WithString("label", mcp.Description("Link label.")),
		mcp.WithString("url", mcp.Description("Link URL.")),
	}
	with := func(opts []mcp.ToolOption, more ...mcp.ToolOption) []mcp.ToolOption {
		return append(append([]mcp.ToolOption{}, more...), opts...)
	}

	srv.AddTool(mcp.NewTool("list_pages",
		mcp.WithDescription("List saved timetable pages with their size."),
	), h.listPages)

	srv.AddTool(mcp.NewTool("get_page",
		mcp.WithDescription("Fetch a page's lectures, time slots and links. A page that was never saved is returned fresh with saved=false."),
		page(),
	), h.getPage)

	srv.AddTool(mcp.NewTool("render_page",
		mcp.WithDescription("Compute the weekday grid of a page: visible weekdays, vertical bounds, slot positions and which slots are current."),
		page(),
		mcp.WithString("at", mcp.Description("Optional RFC3339 reference time; defaults to now.")),
	), h.renderPage)

	srv.AddTool(mcp.NewTool("add_lecture",
		mcp.WithDescription("Append a lecture with one default Monday 09:00-10:00 slot."),
		page(),
		mcp.WithString("title", mcp.Required(), mcp.Description("Lecture title.")),
	), h.addLecture)

	srv.AddTool(mcp.NewTool("set_lecture_title",
		mcp.WithDescription("Replace a lecture's title."),
		page(), lectureID(),
		mcp.WithString("title", mcp.Required(), mcp.Description("New title.")),
	), h.setLectureTitle)

	srv.AddTool(mcp.NewTool("remove_lecture",
		mcp.WithDescription("Remove a lecture and all its slots and links."),
		page(), lectureID(),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), h.removeLecture)

	srv.AddTool(mcp.NewTool("add_time", with(slotOpts,
		mcp.WithDescription("Append a time slot to a lecture, copied from its last slot, then apply any given fields."),
		page(), lectureID(),
	)...), h.addTime)

	srv.AddTool(mcp.NewTool("update_time", with(slotOpts,
		mcp.WithDescription("Change the weekday, begin or end of a time slot."),
		page(), lectureID(),
		mcp.WithString("time", mcp.Required(), mcp.Description("Time slot id.")),
	)...), h.updateTime)

	srv.AddTool(mcp.NewTool("remove_time",
		mcp.WithDescription("Remove a time slot. The last slot of a lecture cannot be removed."),
		page(), lectureID(),
		mcp.WithString("time", mcp.Required(), mcp.Description("Time slot id.")),
	), h.removeTime)

	srv.AddTool(mcp.NewTool("add_link", with(linkOpts,
		mcp.WithDescription("Append a link to a lecture."),
		page(), lectureID(),
	)...), h.addLink)

	srv.AddTool(mcp.NewTool("update_link", with(linkOpts,
		mcp.WithDescription("Change the label or URL of a link."),
		page(), lectureID(),
		mcp.WithString("link", mcp.Required(), mcp.Description("Link id.")),
	)...), h.updateLink)

	srv.AddTool(mcp.NewTool("remove_link",
		mcp.WithDescription("Remove a link from a lecture."),
		page(), lectureID(),
		mcp.WithString("link", mcp.Required(), mcp.Description("Link id.")),
	), h.removeLink)

	srv.AddTool(mcp.NewTool("validate_page",
		mcp.WithDescription("List every problem that would block saving a page."),
		page(),
	), h.validatePage)

	srv.AddTool(mcp.NewTool("delete_page",
		mcp.WithDescription("Delete a saved page."),
		page(),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), h.deletePage)
}

func boolPtr(v bool) *bool { return &v }

func (h *handlers) listPages(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pages, err := h.svc.ListPages(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(map[string]any{
		"pages": pages,
		"count": len(pages),
	})
}

func (h *handlers) getPage(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("page")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dto, err := h.svc.GetPage(key)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(dto)
}

func (h *handlers) renderPage(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("page")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var at time.Time
	if raw := strings.TrimSpace(request.GetString("at", "")); raw != "" {
		at, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid at value: %v", err)), nil
		}
	}
	dto, err := h.svc.RenderPage(key, at)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(dto)
}

// edit runs fn in a session on the page argument and reports the saved page.
func (h *handlers) edit(request mcp.CallToolRequest, fn func(*app.Session) (string, error)) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("page")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := h.svc.Edit(key, fn)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(res)
}

func (h *handlers) addLecture(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.edit(request, func(s *app.Session) (string, error) {
		l, err := s.AddLecture(title)
		if err != nil {
			return "", err
		}
		return l.ID, nil
	})
}

func (h *handlers) setLectureTitle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Lecture string `json:"lecture"`
		Title   string `json:"title"`
	}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	return h.edit(request, func(s *app.Session) (string, error) {
		return "", s.SetLectureTitle(args.Lecture, args.Title)
	})
}

func (h *handlers) removeLecture(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("lecture")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.edit(request, func(s *app.Session) (string, error) {
		return "", s.RemoveLecture(id)
	})
}

func slotFields(request mcp.CallToolRequest) (app.SlotFields, error) {
	f := app.SlotFields{
		BeginTime: strings.TrimSpace(request.GetString("begin", "")),
		EndTime:   strings.TrimSpace(request.GetString("end", "")),
	}
	if raw := strings.TrimSpace(request.GetString("weekday", "")); raw != "" {
		w, err := lecture.ParseWeekday(raw)
		if err != nil {
			return f, err
		}
		f.Weekday = w
	}
	return f, nil
}

func linkFields(request mcp.CallToolRequest) app.LinkFields {
	var f app.LinkFields
	args := request.GetArguments()
	if v, ok := args["label"].(string); ok {
		f.Label = &v
	}
	if v, ok := args["url"].(string); ok {
		f.URL = &v
	}
	return f
}

func (h *handlers) addTime(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("lecture")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f, err := slotFields(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.edit(request, func(s *app.Session) (string, error) {
		slot, err := s.AddTime(id, f)
		if err != nil {
			return "", err
		}
		return slot.ID, nil
	})
}

func (h *handlers) updateTime(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("lecture")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	timeID, err := request.RequireString("time")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f, err := slotFields(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.edit(request, func(s *app.Session) (string, error) {
		return "", s.UpdateTime(id, timeID, f)
	})
}

func (h *handlers) removeTime(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("lecture")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	timeID, err := request.RequireString("time")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.edit(request, func(s *app.Session) (string, error) {
		return "", s.RemoveTime(id, timeID)
	})
}

func (h *handlers) addLink(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("lecture")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f := linkFields(request)
	return h.edit(request, func(s *app.Session) (string, error) {
		link, err := s.AddLink(id, f)
		if err != nil {
			return "", err
		}
		return link.ID, nil
	})
}

func (h *handlers) updateLink(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("lecture")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	linkID, err := request.RequireString("link")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f := linkFields(request)
	return h.edit(request, func(s *app.Session) (string, error) {
		return "", s.UpdateLink(id, linkID, f)
	})
}

func (h *handlers) removeLink(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("lecture")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	linkID, err := request.RequireString("link")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.edit(request, func(s *app.Session) (string, error) {
		return "", s.RemoveLink(id, linkID)
	})
}

func (h *handlers) validatePage(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("page")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dto, err := h.svc.Validate(key)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(dto)
}

func (h *handlers) deletePage(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("page")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.svc.DeletePage(key); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("page %q deleted", key)), nil
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
