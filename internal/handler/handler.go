package handler

import (
	"weeklyreport/internal/repository"
	"weeklyreport/internal/wizard"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	engine *wizard.Engine
	subs   repository.SubscriberRepository
	logger *zap.Logger
}

// NewHandler creates a new handler instance. The engine is attached later
// via SetEngine because the handler is also the engine's outbound sender.
func NewHandler(
	bot *tele.Bot,
	subs repository.SubscriberRepository,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:    bot,
		subs:   subs,
		logger: logger,
	}
}

// SetEngine attaches the wizard engine
func (h *Handler) SetEngine(engine *wizard.Engine) {
	h.engine = engine
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/report", h.handleReport)
	h.bot.Handle("/myid", h.handleMyID)
	h.bot.Handle("/stop", h.handleStop)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnWeekCurrent, h.handleWeekCurrent)
	h.bot.Handle(&btnWeekPrevious, h.handleWeekPrevious)
	h.bot.Handle(&btnStartReport, h.handleReport)
}

// Inline keyboard buttons
var (
	btnWeekCurrent = tele.Btn{
		Unique: "week_current",
		Text:   "Текущая неделя",
	}
	btnWeekPrevious = tele.Btn{
		Unique: "week_previous",
		Text:   "Прошлая неделя",
	}
	btnStartReport = tele.Btn{
		Unique: "report_start",
		Text:   "Да, начать",
	}
)

// Main menu reply keyboard button; presses arrive as plain text
const buttonFillReport = "Заполнить отчет"

func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(menu.Row(menu.Text(buttonFillReport)))
	return menu
}

func weekChoiceMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnWeekCurrent),
		markup.Row(btnWeekPrevious),
	)
	return markup
}

func reminderMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnStartReport))
	return markup
}

func phraseMarkup(label string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	markup.Reply(markup.Row(markup.Text(label)))
	return markup
}
