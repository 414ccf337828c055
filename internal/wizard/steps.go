package wizard

import "weeklyreport/internal/domain"

// KeyboardKind tells the transport which reply markup to attach to a prompt
type KeyboardKind int

const (
	KeyboardNone KeyboardKind = iota
	KeyboardRemove
	KeyboardPhrase
	KeyboardWeekChoice
	KeyboardMainMenu
	KeyboardReminder
)

// Keyboard is a transport-agnostic markup hint; Label is the one-time
// reply button text for KeyboardPhrase
type Keyboard struct {
	Kind  KeyboardKind
	Label string
}

func phraseKeyboard(label string) Keyboard {
	return Keyboard{Kind: KeyboardPhrase, Label: label}
}

// StepSpec describes one wizard question: the prompt to send when the step
// is entered, the markup for it, how to apply the user's answer, and the
// step that follows. Apply validates the input and fills exactly one
// answers field; on rejection the answers stay untouched.
type StepSpec struct {
	Prompt   string
	Keyboard Keyboard
	Apply    func(text string, a *domain.Answers) error
	Next     domain.Step
}

const (
	phraseNoComments  = "нет комментариев"
	phraseNoChanges   = "без изменений"
	phraseNoWishes    = "нет пожеланий"
	phraseNoQuestions = "нет вопросов"
)

// steps is the wizard transition table, one entry per question in the
// fixed order choose_week → … → ask_questions. choose_week has no Apply:
// it only advances on a week-choice button, never on free text.
var steps = map[domain.Step]StepSpec{
	domain.StepChooseWeek: {
		Prompt:   "Выбери неделю, за которую хочешь заполнить отчет:",
		Keyboard: Keyboard{Kind: KeyboardWeekChoice},
		Next:     domain.StepAskRestingHR,
	},
	domain.StepAskRestingHR: {
		Prompt: "Введи пульс покоя по дням в формате:\n45 / 45 / 46 / 48 / 49 / 43 / 45\n\n" +
			"Если не знаешь или часы не отслеживают — жми кнопку «не отслеживаю».",
		Keyboard: phraseKeyboard(NotTrackedPhrase),
		Apply: func(text string, a *domain.Answers) error {
			s, err := ParseWeekSeries(text)
			if err != nil {
				return err
			}
			a.RestingHR = s
			return nil
		},
		Next: domain.StepAskSleep,
	},
	domain.StepAskSleep: {
		Prompt: "Теперь сон по дням в формате:\n6.5 / 7.5 / 8 / 9 / 10 / 5.5 / 4.5\n\n" +
			"Если не знаешь — «не отслеживаю».",
		Keyboard: phraseKeyboard(NotTrackedPhrase),
		Apply: func(text string, a *domain.Answers) error {
			s, err := ParseWeekSeries(text)
			if err != nil {
				return err
			}
			a.Sleep = s
			return nil
		},
		Next: domain.StepAskMood,
	},
	domain.StepAskMood: {
		Prompt:   "Твоё эмоциональное состояние по шкале 1–10 (1 — очень плохо, 10 — супер).",
		Keyboard: Keyboard{Kind: KeyboardRemove},
		Apply: func(text string, a *domain.Answers) error {
			n, err := ParseScale(text)
			if err != nil {
				return err
			}
			a.Mood = n
			return nil
		},
		Next: domain.StepAskBody,
	},
	domain.StepAskBody: {
		Prompt: "Теперь физическое состояние 1–10 (1 — совсем тяжело, 10 — топ).",
		Apply: func(text string, a *domain.Answers) error {
			n, err := ParseScale(text)
			if err != nil {
				return err
			}
			a.Body = n
			return nil
		},
		Next: domain.StepAskFood,
	},
	domain.StepAskFood: {
		Prompt:   "Коротко про питание за неделю (или жми «нет комментариев»).",
		Keyboard: phraseKeyboard(phraseNoComments),
		Apply: func(text string, a *domain.Answers) error {
			a.Food = NormalizeOptional(text, phraseNoComments)
			return nil
		},
		Next: domain.StepAskPain,
	},
	domain.StepAskPain: {
		Prompt:   "Есть ли боль/дискомфорт/травмы? Если нет — «нет комментариев».",
		Keyboard: phraseKeyboard(phraseNoComments),
		Apply: func(text string, a *domain.Answers) error {
			a.Pain = NormalizeOptional(text, phraseNoComments)
			return nil
		},
		Next: domain.StepAskWeekComment,
	},
	domain.StepAskWeekComment: {
		Prompt: "Теперь общий комментарий по неделе (как зашло, что было легко/тяжело, что заметил). " +
			"Это поле обязательное 🙂",
		Keyboard: Keyboard{Kind: KeyboardRemove},
		Apply: func(text string, a *domain.Answers) error {
			t, err := RequireComment(text)
			if err != nil {
				return err
			}
			a.WeekComment = t
			return nil
		},
		Next: domain.StepAskPlanEdits,
	},
	domain.StepAskPlanEdits: {
		Prompt: "Теперь про уже запланированные тренировки.\n\nНужно что-то скорректировать?\n" +
			"Например: перенести/сократить/заменить/поменять местами.\n\nЕсли всё подходит — «без изменений».",
		Keyboard: phraseKeyboard(phraseNoChanges),
		Apply: func(text string, a *domain.Answers) error {
			a.PlanEdits = NormalizeOptional(text, phraseNoChanges)
			return nil
		},
		Next: domain.StepAskWishes,
	},
	domain.StepAskWishes: {
		Prompt: "Есть пожелания к плану на следующую неделю? " +
			"(например: какой день удобнее под длительную, где хочется полегче/пожёстче)\n\n" +
			"Если нет — «нет пожеланий».",
		Keyboard: phraseKeyboard(phraseNoWishes),
		Apply: func(text string, a *domain.Answers) error {
			a.Wishes = NormalizeOptional(text, phraseNoWishes)
			return nil
		},
		Next: domain.StepAskQuestions,
	},
	domain.StepAskQuestions: {
		Prompt:   "Остались вопросы к тренеру? Если нет — «нет вопросов».",
		Keyboard: phraseKeyboard(phraseNoQuestions),
		Apply: func(text string, a *domain.Answers) error {
			a.Questions = NormalizeOptional(text, phraseNoQuestions)
			return nil
		},
		Next: domain.StepDone,
	},
}
