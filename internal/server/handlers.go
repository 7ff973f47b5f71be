package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/pinwin/internal/model"
	"github.com/mj1618/pinwin/internal/output"
	"github.com/mj1618/pinwin/internal/platform"
	"github.com/mj1618/pinwin/internal/session"
	"gopkg.in/yaml.v3"
)

// toText serializes v to YAML for MCP responses.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// Agents sometimes send handles as numbers.
		if f, ok := v.(float64); ok {
			return fmt.Sprintf("%.0f", f)
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	view := model.View{Selection: model.NoSelection}
	if sel := stringParam(params, "selected", ""); sel != "" {
		h, err := platform.ParseHandle(sel)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		view.Selection = model.Selected(h)
	}

	var (
		rec model.Reconciliation
		err error
	)
	if boolParam(params, "refresh", false) {
		rec, err = s.sess.Refresh(ctx, view)
	} else {
		rec, _, err = s.cache.List(ctx, view)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	at := s.sess.Current().UpdatedAt
	if at.IsZero() {
		at = time.Now()
	}
	return mcp.NewToolResultText(toText(output.NewListResult(s.backend, rec, at))), nil
}

type commandFunc func(ctx context.Context, h model.Handle, view model.View) (model.Reconciliation, error)

// commandHandler parses the handle argument, runs fn and reports the
// window's state after the follow-up pass.
func (s *Server) commandHandler(ctx context.Context, request mcp.CallToolRequest, action session.Action, fn commandFunc) (*mcp.CallToolResult, error) {
	raw := stringParam(request.GetArguments(), "handle", "")
	h, err := platform.ParseHandle(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec, err := fn(ctx, h, model.View{Selection: model.Selected(h)})
	result := output.NewCommandResult(string(action), h, rec)
	if err != nil {
		result.OK = false
		return mcp.NewToolResultError(toText(struct {
			output.CommandResult `yaml:",inline"`
			Error                string `yaml:"error"`
		}{result, err.Error()})), nil
	}
	return mcp.NewToolResultText(toText(result)), nil
}

func (s *Server) handleFocus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.commandHandler(ctx, request, session.ActionFocus, s.sess.Focus)
}

func (s *Server) handlePin(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.commandHandler(ctx, request, session.ActionPin, s.sess.Pin)
}

func (s *Server) handleUnpin(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.commandHandler(ctx, request, session.ActionUnpin, s.sess.Unpin)
}

func (s *Server) handleIsTopmost(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, err := platform.ParseHandle(stringParam(request.GetArguments(), "handle", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	topmost, listed := s.sess.IsTopmost(h)
	return mcp.NewToolResultText(toText(struct {
		Handle  model.Handle `yaml:"handle"`
		Listed  bool         `yaml:"listed"`
		Topmost bool         `yaml:"topmost"`
	}{h, listed, topmost})), nil
}
