package bot

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v3"
)

// Trace assigns each update a trace id and logs its outcome and
// duration. Only the command verb is logged, never full message text.
func Trace(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		traceID := uuid.NewString()
		start := time.Now()

		err := next(c)

		attrs := []any{
			"trace_id", traceID,
			"command", commandVerb(c.Text()),
			"duration", time.Since(start),
		}
		if sender := c.Sender(); sender != nil {
			attrs = append(attrs, "user_id", sender.ID)
		}
		if err != nil {
			attrs = append(attrs, "error", err)
			slog.Error("Update failed", attrs...)
		} else {
			slog.Info("Update handled", attrs...)
		}
		return err
	}
}

func commandVerb(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	verb, _, _ := strings.Cut(text, " ")
	return verb
}
