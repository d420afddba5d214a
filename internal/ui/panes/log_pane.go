package panes

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/memlog"
	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/ui"
	"github.com/ja-he/lunadash/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader   memlog.Reader
	titleString func() string
}

// Draw draws the log over top of all previously drawn contents.
func (p *LogPane) Draw() {
	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)
	title := p.titleString()
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
	p.Renderer.DrawText(x+(w-utf8.RuneCountInString(title))/2, y, w, 1, p.Stylesheet.LogTitleBox, title)

	const levelLen = len(" error ")
	indent := x + levelLen + 1

	row := y + 2
	entries := p.logReader.Get()
	for i := len(entries) - 1; i >= 0 && row < y+h; i-- {
		entry := entries[i]
		level := str(entry["level"])
		p.Renderer.DrawText(x, row, levelLen, 1, p.levelStyle(level), util.PadCenter(level, levelLen))

		col := indent
		for _, part := range []struct {
			text  string
			style styling.DrawStyling
		}{
			{str(entry["message"]), p.Stylesheet.LogDefault},
			{str(entry["caller"]), p.Stylesheet.LogEntryLocation},
			{str(entry["time"]), p.Stylesheet.LogEntryTime},
		} {
			if part.text == "" {
				continue
			}
			p.Renderer.DrawText(col, row, x+w-col, 1, part.style, part.text)
			col += utf8.RuneCountInString(part.text) + 1
		}
		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			switch k {
			case "level", "message", "caller", "time":
			default:
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if row >= y+h {
				return
			}
			p.Renderer.DrawText(indent, row, len(k), 1, p.Stylesheet.LogEntryTime, k)
			p.Renderer.DrawText(indent+len(k)+2, row, x+w-indent-len(k)-2, 1, p.Stylesheet.LogEntryLocation, str(entry[k]))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error", "fatal", "panic":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

func str(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	inputProcessor input.ModalInputProcessor,
	titleString func() string,
	logReader memlog.Reader,
) *LogPane {
	return &LogPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				Visible:        condition,
				InputProcessor: inputProcessor,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		titleString: titleString,
		logReader:   logReader,
	}
}
