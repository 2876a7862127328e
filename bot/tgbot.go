package bot

import (
	"context"
	"fmt"
	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/message"
	"log/slog"
	"statica/entity"
	"statica/internal/lib/sl"
	"strings"
	"time"
)

const replyTimeout = 45 * time.Second

// ChatService answers customer messages.
type ChatService interface {
	Chat(ctx context.Context, req *entity.ChatRequest) *entity.ChatResponse
}

type TgBot struct {
	log         *slog.Logger
	api         *tgbotapi.Bot
	botUsername string
	adminId     int64
	chat        ChatService
}

func NewTgBot(botName, apiKey string, adminId int64, log *slog.Logger) (*TgBot, error) {
	tgBot := &TgBot{
		log:         log.With(sl.Module("tgbot")),
		adminId:     adminId,
		botUsername: botName,
	}

	api, err := tgbotapi.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %w", err)
	}
	tgBot.api = api

	return tgBot, nil
}

func (t *TgBot) SetChatService(chat ChatService) {
	t.chat = chat
}

// Start polls for updates and blocks until the updater stops.
func (t *TgBot) Start() error {
	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *tgbotapi.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			t.log.With(sl.Err(err)).Warn("handling update")
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})
	updater := ext.NewUpdater(dispatcher, nil)

	dispatcher.AddHandler(handlers.NewCommand("start", t.handleStart))
	dispatcher.AddHandler(handlers.NewMessage(message.Text, t.handleMessage))

	err := updater.StartPolling(t.api, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &tgbotapi.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &tgbotapi.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start polling: %w", err)
	}

	t.log.Info("telegram bot started", slog.String("username", t.botUsername))

	updater.Idle()

	return nil
}

func (t *TgBot) handleStart(_ *tgbotapi.Bot, ctx *ext.Context) error {
	t.plainResponse(ctx.EffectiveChat.Id, t.answer("hello"))
	return nil
}

func (t *TgBot) handleMessage(_ *tgbotapi.Bot, ctx *ext.Context) error {
	text := ctx.EffectiveMessage.Text
	if strings.HasPrefix(text, "/") {
		return nil
	}
	t.plainResponse(ctx.EffectiveChat.Id, t.answer(text))
	return nil
}

func (t *TgBot) answer(text string) string {
	if t.chat == nil {
		return "Chat is not available right now."
	}

	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()

	resp := t.chat.Chat(ctx, &entity.ChatRequest{
		Message:   text,
		AgentType: string(entity.AgentProduct),
	})
	return resp.Response
}

// SendMessage notifies the admin chat.
func (t *TgBot) SendMessage(msg string) {
	if t.adminId == 0 {
		return
	}
	t.plainResponse(t.adminId, msg)
}

func (t *TgBot) plainResponse(chatId int64, text string) {

	// answers use ** for bold, MarkdownV2 uses *
	text = strings.ReplaceAll(text, "**", "*")
	text = strings.ReplaceAll(text, "![", "[")

	sanitized := sanitize(text, false)

	if sanitized == "" {
		t.log.With(
			slog.Int64("id", chatId),
		).Debug("empty message")
		return
	}

	_, err := t.api.SendMessage(chatId, sanitized, &tgbotapi.SendMessageOpts{
		ParseMode: "MarkdownV2",
	})
	if err != nil {
		t.log.With(
			slog.Int64("id", chatId),
		).Warn("sending message", sl.Err(err))
		_, err = t.api.SendMessage(chatId, text, &tgbotapi.SendMessageOpts{})
		if err != nil {
			t.log.With(
				slog.Int64("id", chatId),
			).Error("sending safe message", sl.Err(err))
		}
	}
}

// sanitize escapes MarkdownV2 reserved characters. The asterisk is kept so bold survives.
func sanitize(input string, preserveLinks bool) string {
	reservedChars := "\\`_{}#+-.!|()[]=>~"
	if preserveLinks {
		reservedChars = "\\`_{}#+-.!|=>~"
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, char := range input {
		if strings.ContainsRune(reservedChars, char) {
			b.WriteRune('\\')
		}
		b.WriteRune(char)
	}

	return b.String()
}
