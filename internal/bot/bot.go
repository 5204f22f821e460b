// Package bot routes inbound Telegram commands to the ledger store,
// aggregation engine and import reconciler, and renders replies through
// the localization catalog.
package bot

import (
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v3"

	"finledger/internal/importer"
	"finledger/internal/ledger"
	"finledger/internal/storage"
)

// fallbackReply is the single catch-all for unanticipated failures.
// Everything classified (validation, format, storage) gets a localized
// message before reaching this.
const fallbackReply = "❌ An unexpected error occurred. Please try again or contact support if the problem persists."

type Bot struct {
	bot     *tele.Bot
	handler *Handler
}

// New builds the Telegram bot, wiring the full command set and the
// document-upload import path.
func New(token string, pollTimeout time.Duration, repo *storage.Repository, svc *ledger.Service, rec *importer.Reconciler) (*Bot, error) {
	b, err := tele.NewBot(tele.Settings{
		Token:     token,
		Poller:    &tele.LongPoller{Timeout: pollTimeout},
		ParseMode: tele.ModeMarkdown,
		OnError: func(err error, c tele.Context) {
			slog.Error("Unhandled update error", "error", err)
			if c != nil {
				if sendErr := c.Send(fallbackReply); sendErr != nil {
					slog.Error("Failed to send fallback reply", "error", sendErr)
				}
			}
		},
	})
	if err != nil {
		return nil, err
	}

	h := &Handler{
		store:    repo,
		ledger:   svc,
		importer: rec,
		now:      time.Now,
	}

	b.Use(Trace)

	b.Handle("/start", h.Start)
	b.Handle("/help", h.Help)
	b.Handle("/add", h.Add)
	b.Handle("/balance", h.Balance)
	b.Handle("/history", h.History)
	b.Handle("/report", h.Report)
	b.Handle("/export", h.Export)
	b.Handle("/setlang", h.SetLanguage)
	b.Handle("/categories", h.Categories)
	b.Handle("/clear", h.Clear)
	b.Handle(tele.OnDocument, h.ImportFile)

	return &Bot{bot: b, handler: h}, nil
}

// Start begins long polling and blocks until Stop is called.
func (b *Bot) Start() {
	slog.Info("Bot starting", "username", b.bot.Me.Username)
	b.bot.Start()
}

func (b *Bot) Stop() {
	b.bot.Stop()
}
