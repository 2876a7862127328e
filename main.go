package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"statica/ai/compose"
	"statica/ai/gpt"
	"statica/bot"
	"statica/impl/core"
	"statica/internal/catalog"
	"statica/internal/config"
	"statica/internal/http-server/api"
	"statica/internal/lib/logger"
	"statica/internal/lib/sl"
	"statica/internal/service/mailer"
	"statica/internal/templates"
	"time"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	var tgBot *bot.TgBot
	if conf.Telegram.Enabled {
		var err error
		tgBot, err = bot.NewTgBot(conf.Telegram.BotName, conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", sl.Err(err))
		} else {
			lg = logger.SetupTelegramHandler(lg, tgBot, slog.LevelError)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram bot initialized")
		}
	}

	lg.Info("starting statica", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	cat := catalog.Default()
	handler := core.New(cat, compose.New(cat), lg)

	if gen := gpt.NewGenerator(conf, lg); gen != nil {
		handler.SetGenerator(gen)
		lg.With(
			slog.String("model", conf.Generation.Model),
			slog.String("url", conf.Generation.BaseURL),
			sl.Secret("token", conf.Generation.Token),
		).Info("remote generation enabled")
	} else {
		lg.Info("remote generation disabled, using local answers")
	}

	renderer := templates.New(cat.Company(), conf.Mail.EnabledTypes)
	handler.SetTemplates(renderer)

	mailService := mailer.NewService(conf, renderer, lg)
	if conf.Mail.Provider == "ses" {
		ctx, cancel := context.WithTimeout(context.Background(), conf.Mail.Timeout)
		ses, err := mailer.NewSESSender(ctx, conf.Mail.AwsRegion)
		cancel()
		if err != nil {
			lg.Error("ses transport", sl.Err(err))
		} else {
			mailService.SetSender(ses)
		}
	}
	handler.SetMailer(mailService)

	ctx, cancel := context.WithTimeout(context.Background(), conf.Mail.Timeout+time.Second)
	if err := mailService.TestConnection(ctx); errors.Is(err, mailer.ErrNotConfigured) {
		lg.Warn("email credentials not set, email sending disabled")
	} else if err != nil {
		lg.With(
			slog.String("provider", conf.Mail.Provider),
			slog.String("server", conf.Mail.Server),
			sl.Err(err),
		).Warn("email transport unavailable")
	} else {
		lg.With(
			slog.String("provider", conf.Mail.Provider),
			sl.Secret("username", conf.Mail.Username),
		).Info("email transport connected")
	}
	cancel()

	if tgBot != nil {
		tgBot.SetChatService(handler)
		go func() {
			if err := tgBot.Start(); err != nil {
				lg.Error("telegram bot error", sl.Err(err))
			}
		}()
	}

	// *** blocking start with http server ***
	err := api.New(conf, lg, handler)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
