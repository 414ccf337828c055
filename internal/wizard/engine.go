package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"weeklyreport/internal/domain"
	"weeklyreport/internal/report"
	"weeklyreport/internal/repository"
)

// ErrNoActiveReport signals a week-choice event arriving without an active
// conversation in the choose_week step; the transport should tell the user
// to start over
var ErrNoActiveReport = errors.New("no active report at choose_week step")

// Sender is the outbound side of the transport. Implementations deliver
// best-effort; the engine never retries.
type Sender interface {
	Send(userID int64, text string, kb Keyboard) error
	SendPhoto(userID int64, caption string, png []byte) error
}

const (
	msgInternalError = "Произошла ошибка. Попробуйте позже."
	msgWeekAccepted  = "Понял 🙂 Сейчас начнем — это займет пару минут."
	msgAccepted      = "✅ Отчет принят. Отправляю тебе в личку и админам (если настроены)."
	msgMenu          = "Меню:"
	msgReminder      = "Время еженедельного отчета 🙂 Заполним?"
)

// Engine drives the report wizard: it owns the step transitions and answer
// accumulation, and delegates durability and delivery to its collaborators.
type Engine struct {
	convs     repository.ConversationRepository
	subs      repository.SubscriberRepository
	sender    Sender
	receivers []int64
	logger    *zap.Logger
	now       func() time.Time
}

// NewEngine creates a wizard engine. receivers is the deduplicated set of
// report recipients.
func NewEngine(
	convs repository.ConversationRepository,
	subs repository.SubscriberRepository,
	sender Sender,
	receivers []int64,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		convs:     convs,
		subs:      subs,
		sender:    sender,
		receivers: receivers,
		logger:    logger,
		now:       time.Now,
	}
}

// Start begins (or restarts) the wizard for the user: an empty
// conversation at the week-choice step, overwriting any abandoned one.
func (e *Engine) Start(ctx context.Context, userID int64) error {
	conv := &domain.Conversation{
		UserID: userID,
		Step:   domain.StepChooseWeek,
	}
	if err := e.convs.Upsert(conv); err != nil {
		e.logger.Error("Failed to start conversation", zap.Int64("user_id", userID), zap.Error(err))
		e.send(userID, msgInternalError, Keyboard{})
		return err
	}

	e.sendPrompt(userID, domain.StepChooseWeek)
	return nil
}

// ChooseWeek consumes the week-choice button. Without an active
// conversation at choose_week it returns ErrNoActiveReport and changes
// nothing. On success it stores the computed range, advances to the first
// question and prompts for it.
func (e *Engine) ChooseWeek(ctx context.Context, userID int64, kind domain.WeekKind) error {
	conv, err := e.convs.Get(userID)
	if err != nil {
		e.logger.Error("Failed to load conversation", zap.Int64("user_id", userID), zap.Error(err))
		e.send(userID, msgInternalError, Keyboard{})
		return err
	}
	if conv == nil || conv.Step != domain.StepChooseWeek {
		return ErrNoActiveReport
	}

	conv.Answers.Range = domain.ComputeWeekRange(kind, e.now())

	next, err := advance(ctx, conv.Step)
	if err != nil {
		return err
	}
	conv.Step = next

	if err := e.convs.Upsert(conv); err != nil {
		e.logger.Error("Failed to save conversation", zap.Int64("user_id", userID), zap.Error(err))
		e.send(userID, msgInternalError, Keyboard{})
		return err
	}

	e.send(userID, msgWeekAccepted, Keyboard{})
	e.sendPrompt(userID, next)
	return nil
}

// HandleText consumes one free-text message for the user's current step.
// Users without an active conversation are ignored. A validation rejection
// re-prompts with the rejection text and leaves the stored state untouched.
func (e *Engine) HandleText(ctx context.Context, userID int64, username, text string) error {
	conv, err := e.convs.Get(userID)
	if err != nil {
		e.logger.Error("Failed to load conversation", zap.Int64("user_id", userID), zap.Error(err))
		e.send(userID, msgInternalError, Keyboard{})
		return err
	}
	if conv == nil {
		return nil
	}

	spec, ok := steps[conv.Step]
	if !ok || spec.Apply == nil {
		// choose_week or an unknown persisted step: text cannot advance it
		return nil
	}

	if err := spec.Apply(text, &conv.Answers); err != nil {
		if IsRejection(err) {
			e.send(userID, err.Error(), Keyboard{})
			return nil
		}
		return err
	}

	next, err := advance(ctx, conv.Step)
	if err != nil {
		return err
	}

	if next == domain.StepDone {
		e.deliverReport(userID, username, conv.Answers)
		if err := e.convs.Delete(userID); err != nil {
			e.logger.Error("Failed to delete conversation", zap.Int64("user_id", userID), zap.Error(err))
			return err
		}
		e.send(userID, msgMenu, Keyboard{Kind: KeyboardMainMenu})
		return nil
	}

	conv.Step = next
	if err := e.convs.Upsert(conv); err != nil {
		e.logger.Error("Failed to save conversation", zap.Int64("user_id", userID), zap.Error(err))
		e.send(userID, msgInternalError, Keyboard{})
		return err
	}

	e.sendPrompt(userID, next)
	return nil
}

// BroadcastReminder sends the weekly nag to every active subscriber,
// falling back to the configured receivers when nobody subscribed yet.
// Each delivery is independent; failures are logged and swallowed.
func (e *Engine) BroadcastReminder(ctx context.Context) {
	recipients, err := e.subs.ListActive()
	if err != nil {
		e.logger.Error("Failed to list subscribers, falling back to configured receivers", zap.Error(err))
		recipients = nil
	}
	if len(recipients) == 0 {
		recipients = e.receivers
	}

	e.logger.Info("Broadcasting weekly reminder", zap.Int("recipients", len(recipients)))
	for _, id := range recipients {
		e.send(id, msgReminder, Keyboard{Kind: KeyboardReminder})
	}
}

// deliverReport formats the answers and pushes the result to the user and
// every configured receiver, best-effort
func (e *Engine) deliverReport(userID int64, username string, answers domain.Answers) {
	text := report.Build(answers)

	e.send(userID, msgAccepted, Keyboard{Kind: KeyboardRemove})
	e.send(userID, "🧾 Твой отчет:\n\n"+text, Keyboard{})
	e.sendChart(userID, answers)

	if username == "" {
		username = "без_ника"
	}
	meta := fmt.Sprintf("📩 Новый отчет от @%s (id: %d)\n\n", username, userID)

	for _, rid := range e.receivers {
		e.send(rid, meta+text, Keyboard{})
	}
}

func (e *Engine) sendChart(userID int64, answers domain.Answers) {
	png, err := report.Chart(answers)
	if err != nil {
		e.logger.Warn("Failed to render report chart", zap.Int64("user_id", userID), zap.Error(err))
		return
	}
	if png == nil {
		return
	}
	if err := e.sender.SendPhoto(userID, "Динамика за неделю", png); err != nil {
		e.logger.Warn("Failed to send report chart",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

func (e *Engine) sendPrompt(userID int64, step domain.Step) {
	spec, ok := steps[step]
	if !ok {
		return
	}
	e.send(userID, spec.Prompt, spec.Keyboard)
}

func (e *Engine) send(userID int64, text string, kb Keyboard) {
	if err := e.sender.Send(userID, text, kb); err != nil {
		e.logger.Warn("Failed to deliver message",
			zap.Int64("recipient_id", userID),
			zap.Error(err),
		)
	}
}
