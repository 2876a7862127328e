package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// queueSize bounds the alerts waiting for delivery; records past it are dropped.
const queueSize = 64

// Notifier delivers a plain text alert, the Telegram admin chat in production.
type Notifier interface {
	SendMessage(msg string)
}

type TelegramHandler struct {
	next   slog.Handler
	queue  chan<- string
	level  slog.Level
	attrs  []slog.Attr
	prefix string
}

// SetupTelegramHandler keeps the existing output and additionally forwards records
// at or above level to the notifier. Delivery runs on its own goroutine so a slow
// notifier never blocks the logging caller.
func SetupTelegramHandler(log *slog.Logger, notifier Notifier, level slog.Level) *slog.Logger {
	if notifier == nil {
		return log
	}
	queue := make(chan string, queueSize)
	go func() {
		for msg := range queue {
			notifier.SendMessage(msg)
		}
	}()
	return slog.New(&TelegramHandler{
		next:  log.Handler(),
		queue: queue,
		level: level,
	})
}

func (h *TelegramHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level || h.next.Enabled(ctx, level)
}

func (h *TelegramHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level {
		select {
		case h.queue <- h.format(r):
		default:
		}
	}
	if h.next.Enabled(ctx, r.Level) {
		return h.next.Handle(ctx, r)
	}
	return nil
}

func (h *TelegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return &TelegramHandler{
		next:   h.next.WithAttrs(attrs),
		queue:  h.queue,
		level:  h.level,
		attrs:  merged,
		prefix: h.prefix,
	}
}

func (h *TelegramHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &TelegramHandler{
		next:   h.next.WithGroup(name),
		queue:  h.queue,
		level:  h.level,
		attrs:  h.attrs,
		prefix: h.prefix + name + ".",
	}
}

func (h *TelegramHandler) format(r slog.Record) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s", r.Level.String(), r.Message))
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.prefix, a)
		return true
	})
	return b.String()
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, prefix, ga)
		}
		return
	}
	b.WriteString(fmt.Sprintf("\n%s%s: %s", prefix, a.Key, a.Value.String()))
}
