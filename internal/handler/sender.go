package handler

import (
	"bytes"

	"weeklyreport/internal/wizard"

	tele "gopkg.in/telebot.v3"
)

// Send implements wizard.Sender over the bot API
func (h *Handler) Send(userID int64, text string, kb wizard.Keyboard) error {
	recipient := &tele.User{ID: userID}

	if markup := markupFor(kb); markup != nil {
		_, err := h.bot.Send(recipient, text, markup)
		return err
	}
	_, err := h.bot.Send(recipient, text)
	return err
}

// SendPhoto implements wizard.Sender for the report chart
func (h *Handler) SendPhoto(userID int64, caption string, png []byte) error {
	photo := &tele.Photo{
		File:    tele.FromReader(bytes.NewReader(png)),
		Caption: caption,
	}
	_, err := h.bot.Send(&tele.User{ID: userID}, photo)
	return err
}

func markupFor(kb wizard.Keyboard) *tele.ReplyMarkup {
	switch kb.Kind {
	case wizard.KeyboardRemove:
		return &tele.ReplyMarkup{RemoveKeyboard: true}
	case wizard.KeyboardPhrase:
		return phraseMarkup(kb.Label)
	case wizard.KeyboardWeekChoice:
		return weekChoiceMarkup()
	case wizard.KeyboardMainMenu:
		return mainMenuMarkup()
	case wizard.KeyboardReminder:
		return reminderMarkup()
	default:
		return nil
	}
}
