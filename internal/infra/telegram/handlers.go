// internal/infra/telegram/handlers.go
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cycle_tracker_bot/internal/app"
	"cycle_tracker_bot/internal/domain/cycle"
	"cycle_tracker_bot/internal/domain/prediction"
	"cycle_tracker_bot/internal/infra/storage"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterUserHandlers wires the bot commands that let the tracked user log
// entries and query the forecast. When userChatID is configured, commands
// from any other chat are refused.
func RegisterUserHandlers(
	ctx context.Context,
	b *telebot.Bot,
	cycleService *app.CycleService,
	activityLog *storage.KVActivityLog,
	userChatID int64,
	baseLogger *logrus.Entry,
) {
	authorized := func(c telebot.Context) bool {
		return userChatID == 0 || c.Sender().ID == userChatID
	}

	b.Handle("/start", func(c telebot.Context) error {
		logCtx := baseLogger.WithField("command", "/start").WithField("sender_id", c.Sender().ID)
		if !authorized(c) {
			logCtx.Info("Unauthorized sender")
			return c.Send("This tracker is private.")
		}
		logCtx.Info("Processing /start command")
		return c.Send(fmt.Sprintf("Hi, %s! I track your cycle and remind you ahead of predicted dates. Use /help for the command list.", c.Sender().FirstName))
	})

	b.Handle("/help", func(c telebot.Context) error {
		if !authorized(c) {
			return c.Send("This tracker is private.")
		}
		var helpText strings.Builder
		helpText.WriteString("Available commands:\n\n")
		helpText.WriteString("`/period <start> <end> [notes]`\n - Log a period (dates as YYYY-MM-DD).\n\n")
		helpText.WriteString("`/symptom <type> <mild|moderate|severe> [notes]`\n - Log a symptom for today.\n\n")
		helpText.WriteString("`/mood <mood> [notes]`\n - Log a mood for today.\n\n")
		helpText.WriteString("`/next`\n - Show the predicted next period and fertility window.\n\n")
		helpText.WriteString("`/today`\n - Show what today looks like on your cycle calendar.\n\n")
		helpText.WriteString("`/log`\n - Show recent activity.\n\n")
		helpText.WriteString("`/help`\n - Show this help message.")
		return c.Send(helpText.String(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	})

	b.Handle("/period", func(c telebot.Context) error {
		logCtx := baseLogger.WithField("command", "/period").WithField("sender_id", c.Sender().ID)
		if !authorized(c) {
			return c.Send("This tracker is private.")
		}

		args := c.Args()
		if len(args) < 2 {
			return c.Send("Usage: /period <start YYYY-MM-DD> <end YYYY-MM-DD> [notes]")
		}
		startDate, err := prediction.ParseDate(args[0])
		if err != nil {
			return c.Send(fmt.Sprintf("I couldn't read %q as a date. Please use YYYY-MM-DD.", args[0]))
		}
		endDate, err := prediction.ParseDate(args[1])
		if err != nil {
			return c.Send(fmt.Sprintf("I couldn't read %q as a date. Please use YYYY-MM-DD.", args[1]))
		}
		notes := strings.Join(args[2:], " ")

		entry, err := cycleService.LogPeriod(ctx, startDate, endDate, notes)
		if err != nil {
			if errors.Is(err, app.ErrInvalidDateRange) {
				return c.Send("The end date is before the start date.")
			}
			logCtx.WithError(err).Error("Failed to log period")
			return c.Send("Something went wrong saving that entry. Please try again.")
		}

		logCtx.WithField("entry_id", entry.ID).Info("Period logged via bot")
		return c.Send(fmt.Sprintf("Period logged: %s to %s. Your reminders have been updated.",
			prediction.FormatDate(entry.StartDate), prediction.FormatDate(entry.EndDate)))
	})

	b.Handle("/symptom", func(c telebot.Context) error {
		logCtx := baseLogger.WithField("command", "/symptom").WithField("sender_id", c.Sender().ID)
		if !authorized(c) {
			return c.Send("This tracker is private.")
		}

		args := c.Args()
		if len(args) < 2 {
			return c.Send("Usage: /symptom <type> <mild|moderate|severe> [notes]")
		}
		severity := cycle.SymptomSeverity(strings.ToLower(args[1]))
		switch severity {
		case cycle.SeverityMild, cycle.SeverityModerate, cycle.SeveritySevere:
		default:
			return c.Send("Severity must be one of: mild, moderate, severe.")
		}

		if _, err := cycleService.LogSymptom(ctx, time.Now(), args[0], severity, strings.Join(args[2:], " ")); err != nil {
			logCtx.WithError(err).Error("Failed to log symptom")
			return c.Send("Something went wrong saving that entry. Please try again.")
		}
		return c.Send(fmt.Sprintf("Symptom logged: %s (%s).", args[0], severity))
	})

	b.Handle("/mood", func(c telebot.Context) error {
		logCtx := baseLogger.WithField("command", "/mood").WithField("sender_id", c.Sender().ID)
		if !authorized(c) {
			return c.Send("This tracker is private.")
		}

		args := c.Args()
		if len(args) < 1 {
			return c.Send("Usage: /mood <mood> [notes]")
		}
		if _, err := cycleService.LogMood(ctx, time.Now(), args[0], strings.Join(args[1:], " ")); err != nil {
			logCtx.WithError(err).Error("Failed to log mood")
			return c.Send("Something went wrong saving that entry. Please try again.")
		}
		return c.Send(fmt.Sprintf("Mood logged: %s.", args[0]))
	})

	b.Handle("/next", func(c telebot.Context) error {
		logCtx := baseLogger.WithField("command", "/next").WithField("sender_id", c.Sender().ID)
		if !authorized(c) {
			return c.Send("This tracker is private.")
		}

		forecast, err := cycleService.Forecast(ctx)
		if err != nil {
			logCtx.WithError(err).Error("Failed to compute forecast")
			return c.Send("Something went wrong computing your forecast. Please try again.")
		}
		if !forecast.HasPrediction {
			return c.Send("I need at least one logged period before I can predict the next one. Log one with /period.")
		}

		return c.Send(fmt.Sprintf(
			"Next period: %s\nOvulation: %s\nFertility window: %s to %s",
			prediction.FormatDate(forecast.NextPeriod),
			prediction.FormatDate(forecast.Window.Ovulation),
			prediction.FormatDate(forecast.Window.Start),
			prediction.FormatDate(forecast.Window.End),
		))
	})

	b.Handle("/today", func(c telebot.Context) error {
		logCtx := baseLogger.WithField("command", "/today").WithField("sender_id", c.Sender().ID)
		if !authorized(c) {
			return c.Send("This tracker is private.")
		}

		status, err := cycleService.StatusOn(ctx, time.Now())
		if err != nil {
			logCtx.WithError(err).Error("Failed to classify today")
			return c.Send("Something went wrong checking today. Please try again.")
		}

		var lines []string
		if status.IsPeriod {
			lines = append(lines, "You are on a logged period day.")
		}
		if status.IsPredictedPeriod {
			lines = append(lines, "Today falls in your predicted period.")
		}
		if status.IsOvulation {
			lines = append(lines, "Today is your estimated ovulation day.")
		}
		if status.IsFertile {
			lines = append(lines, "Today is inside your fertility window.")
		}
		if len(lines) == 0 {
			lines = append(lines, "Nothing notable on the calendar today.")
		}
		return c.Send(strings.Join(lines, "\n"))
	})

	b.Handle("/log", func(c telebot.Context) error {
		logCtx := baseLogger.WithField("command", "/log").WithField("sender_id", c.Sender().ID)
		if !authorized(c) {
			return c.Send("This tracker is private.")
		}

		entries, err := activityLog.List(ctx)
		if err != nil {
			logCtx.WithError(err).Error("Failed to read activity log")
			return c.Send("Something went wrong reading the activity log.")
		}
		if len(entries) == 0 {
			return c.Send("No activity recorded yet.")
		}
		if len(entries) > 10 {
			entries = entries[:10]
		}

		var out strings.Builder
		out.WriteString("Recent activity:\n")
		for _, e := range entries {
			out.WriteString(fmt.Sprintf("%s — %s: %s\n", e.Timestamp.Format("Jan 2 15:04"), e.Action, e.Details))
		}
		return c.Send(out.String())
	})
}
