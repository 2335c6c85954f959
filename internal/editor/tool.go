package editor

import (
	"fmt"
	"strings"
)

// Tool is the active tool on the toolbar.
type Tool int

const (
	ToolSelect Tool = iota
	ToolLine
	ToolRectangle
	ToolCircle
	ToolText
	ToolFree
	ToolImage
)

var toolNames = [...]string{
	ToolSelect:    "select",
	ToolLine:      "line",
	ToolRectangle: "rectangle",
	ToolCircle:    "circle",
	ToolText:      "text",
	ToolFree:      "free",
	ToolImage:     "image",
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// Tools lists every tool in toolbar order.
func Tools() []Tool {
	return []Tool{ToolSelect, ToolLine, ToolRectangle, ToolCircle, ToolText, ToolFree, ToolImage}
}

// ParseTool is the inverse of Tool.String, ignoring case.
func ParseTool(name string) (Tool, error) {
	for i, n := range toolNames {
		if strings.EqualFold(n, name) {
			return Tool(i), nil
		}
	}
	return ToolLine, fmt.Errorf("unknown tool %q", name)
}

// Mode is the gesture the editor is in the middle of.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
	ModeMoving
	ModeResizing
	ModePanning
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDrawing:
		return "drawing"
	case ModeMoving:
		return "moving"
	case ModeResizing:
		return "resizing"
	case ModePanning:
		return "panning"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
