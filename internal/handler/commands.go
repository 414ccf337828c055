package handler

import (
	"context"
	"errors"
	"fmt"

	"weeklyreport/internal/domain"
	"weeklyreport/internal/wizard"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: register the subscriber and show the menu
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.subs.Ensure(userID, c.Sender().Username, c.Sender().FirstName); err != nil {
		h.logger.Error("Failed to ensure subscriber", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	return c.Send("Меню:", mainMenuMarkup())
}

// handleReport starts the wizard; also bound to the reminder's inline button
func (h *Handler) handleReport(c tele.Context) error {
	userID := c.Sender().ID

	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to answer callback", zap.Error(err))
		}
	}

	if err := h.subs.Ensure(userID, c.Sender().Username, c.Sender().FirstName); err != nil {
		h.logger.Error("Failed to ensure subscriber", zap.Error(err))
	}

	return h.engine.Start(context.Background(), userID)
}

// handleMyID replies with the caller's telegram id
func (h *Handler) handleMyID(c tele.Context) error {
	return c.Send(fmt.Sprintf("Твой telegram_id: %d", c.Sender().ID))
}

// handleStop disables the weekly reminder for the user
func (h *Handler) handleStop(c tele.Context) error {
	userID := c.Sender().ID

	if err := h.subs.SetActive(userID, false); err != nil {
		h.logger.Error("Failed to deactivate subscriber", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	h.logger.Info("User stopped reminders", zap.Int64("user_id", userID))
	return c.Send("Напоминания отключены. Вернуть их можно через /start.")
}

// handleText feeds free text into the wizard; the main-menu reply button
// arrives here as plain text
func (h *Handler) handleText(c tele.Context) error {
	if c.Text() == buttonFillReport {
		return h.handleReport(c)
	}

	err := h.engine.HandleText(context.Background(), c.Sender().ID, c.Sender().Username, c.Text())
	if err != nil {
		h.logger.Error("Failed to process message",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
	}
	return nil
}

func (h *Handler) handleWeekCurrent(c tele.Context) error {
	return h.handleWeekChoice(c, domain.WeekCurrent)
}

func (h *Handler) handleWeekPrevious(c tele.Context) error {
	return h.handleWeekChoice(c, domain.WeekPrevious)
}

func (h *Handler) handleWeekChoice(c tele.Context, kind domain.WeekKind) error {
	userID := c.Sender().ID

	err := h.engine.ChooseWeek(context.Background(), userID, kind)
	if errors.Is(err, wizard.ErrNoActiveReport) {
		// Week button pressed with no active report, e.g. on an old message
		return c.Respond(&tele.CallbackResponse{Text: "Запусти /report"})
	}
	if err != nil {
		h.logger.Error("Failed to process week choice",
			zap.Int64("user_id", userID),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
	return c.Respond()
}
