package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, slog.Time(slog.TimeKey, r.Time))
	}

	h.writeAttr(buf, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, slog.String(
				slog.SourceKey,
				fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	h.writeAttr(buf, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{
		opts:  h.opts,
		mu:    h.mu,
		w:     h.w,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *prettyTextHandler) WithGroup(string) slog.Handler {
	// Groups are flattened; attribute keys keep their own names.
	return h
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	// Run the configured ReplaceAttr (time formatting, level naming).
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
		if a.Equal(slog.Attr{}) {
			return
		}
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(colorGray)
	buf.WriteString(a.Key)
	buf.WriteString(colorReset)
	buf.WriteByte('=')

	h.writeValue(buf, a.Value.Resolve())
}

func (h *prettyTextHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(colorCyan)
		buf.WriteString(v.String())
		buf.WriteString(colorReset)

	case slog.KindInt64:
		buf.WriteString(colorYellow)
		buf.WriteString(strconv.FormatInt(v.Int64(), 10))
		buf.WriteString(colorReset)

	case slog.KindUint64:
		buf.WriteString(colorYellow)
		buf.WriteString(strconv.FormatUint(v.Uint64(), 10))
		buf.WriteString(colorReset)

	case slog.KindFloat64:
		buf.WriteString(colorYellow)
		buf.WriteString(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
		buf.WriteString(colorReset)

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(colorGreen)
			buf.WriteString("true")
		} else {
			buf.WriteString(colorRed)
			buf.WriteString("false")
		}

		buf.WriteString(colorReset)

	case slog.KindDuration:
		buf.WriteString(colorMagenta)
		buf.WriteString(v.Duration().String())
		buf.WriteString(colorReset)

	case slog.KindTime:
		buf.WriteString(colorBlue)
		buf.WriteString(v.Time().String())
		buf.WriteString(colorReset)

	default:
		buf.WriteString(colorCyan)
		buf.WriteString(v.String())
		buf.WriteString(colorReset)
	}
}
