package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/badlogic/skystats-v2/internal/analytics"
	"github.com/badlogic/skystats-v2/internal/ingest"
	"github.com/badlogic/skystats-v2/internal/report"
)

const helpMessage = `👋 Welcome to the Bluesky Stats Bot!

Available commands:

/stats <handle> [days] - Analyze an account's recent activity.
  The window defaults to 30 days. Example: /stats alice.bsky.social 7
/help - Show this guide.`

const maxWindowDays = 365

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			go func(u tgbotapi.Update) {
				defer func() {
					if r := recover(); r != nil {
						c.Logger.Error("Panic recovered while processing an update", "panic", r, "stack", string(debug.Stack()))
					}
				}()

				if u.Message == nil || !u.Message.IsCommand() {
					return
				}

				c.Logger.Info("Command received", "from", u.Message.From.UserName, "text", u.Message.Text)

				if err := c.processCommand(ctx, u); err != nil {
					c.Logger.Error("Error processing command",
						"command", u.Message.Command(),
						"error", err)
				}
			}(update)
		}
	}
}

func (c *CommandImpl) processCommand(ctx context.Context, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID

	switch update.Message.Command() {
	case "start", "help":
		_, err := c.Telegram.SendMessage(chatID, helpMessage)
		return err
	case "stats":
		return c.handleStatsCommand(ctx, update)
	default:
		_, err := c.Telegram.SendMessage(chatID, "Unknown command. Type /help to see the list of available commands.")
		return err
	}
}

func (c *CommandImpl) handleStatsCommand(ctx context.Context, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID

	if !c.Limiter.Allow(update.Message.From.ID) {
		_, err := c.Telegram.SendMessage(chatID, "Easy there! Please wait a bit before requesting another analysis.")
		return err
	}

	handle, windowDays, err := parseStatsArgs(update.Message.CommandArguments())
	if err != nil {
		_, sendErr := c.Telegram.SendMessage(chatID,
			"Usage: /stats <handle> [days]. Example: /stats alice.bsky.social 7")
		if sendErr != nil {
			return sendErr
		}
		return nil
	}

	_, err = c.Telegram.SendMessage(chatID, fmt.Sprintf("Analyzing %s, this can take a moment... ⏳", handle))
	if err != nil {
		return fmt.Errorf("failed to send initial message: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	res, err := c.Analytics.Run(runCtx, analytics.Query{Handle: handle, WindowDays: windowDays})
	if err != nil {
		_, sendErr := c.Telegram.SendMessage(chatID, userFacingError(handle, err))
		if sendErr != nil {
			return sendErr
		}
		return err
	}

	days := windowDays
	if days <= 0 {
		days = analytics.DefaultWindowDays
	}
	_, err = c.Telegram.SendMarkdown(chatID, report.Render(res.Data.Profile.Handle, days, res.Stats))
	return err
}

func parseStatsArgs(args string) (handle string, windowDays int, err error) {
	fields := strings.Fields(args)
	if len(fields) == 0 || len(fields) > 2 {
		return "", 0, errors.New("expected: <handle> [days]")
	}

	handle = fields[0]
	if len(fields) == 2 {
		windowDays, err = strconv.Atoi(fields[1])
		if err != nil || windowDays <= 0 || windowDays > maxWindowDays {
			return "", 0, fmt.Errorf("invalid day count %q", fields[1])
		}
	}
	return handle, windowDays, nil
}

func userFacingError(handle string, err error) string {
	switch {
	case errors.Is(err, analytics.ErrEmptyHandle):
		return "That does not look like a handle. Example: /stats alice.bsky.social"
	case errors.Is(err, ingest.ErrProfileNotFound):
		return fmt.Sprintf("Could not find the account %s. Is the handle spelled correctly?", handle)
	case errors.Is(err, ingest.ErrFeedFetchFailed):
		return fmt.Sprintf("Fetching posts for %s failed. Please try again later.", handle)
	default:
		return "Something went wrong. Please try again later."
	}
}
