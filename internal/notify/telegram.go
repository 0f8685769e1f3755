package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"jobsheet-engine/internal/pipeline"
)

// TelegramNotifier pushes each run report to a Telegram chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (t *TelegramNotifier) Notify(rep pipeline.Report, runErr error) error {
	var text string
	if runErr != nil {
		text = fmt.Sprintf("⚠️ <b>Jobsheet run failed</b>\n%v\n%s", runErr, reportLines(rep))
	} else {
		text = fmt.Sprintf("📋 <b>Jobsheet run</b>\n%s", reportLines(rep))
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML"
	_, err := t.bot.Send(msg)
	return err
}

func reportLines(rep pipeline.Report) string {
	text := fmt.Sprintf("✅ new: %d\n♻️ duplicates: %d\n🧩 bad listings: %d",
		rep.Accepted, rep.Duplicates, rep.ExtractionErrors)
	for _, pe := range rep.PortalErrors {
		text += fmt.Sprintf("\n🚫 %s: %v", pe.Portal, pe.Err)
	}
	return text
}
