package core

import (
	"context"
	"log/slog"
	"statica/ai/intent"
	"statica/entity"
	"statica/internal/catalog"
	"statica/internal/lib/sl"
)

// Composer renders the local answer for a classified message.
type Composer interface {
	Compose(in intent.Intent, text string) string
}

// Generator is the optional remote text generation layer. ok is false whenever the
// local composer should answer instead.
type Generator interface {
	TryGenerate(ctx context.Context, prompt, systemPrompt string) (text string, ok bool)
}

type Mailer interface {
	SendAutomatedEmail(ctx context.Context, req *entity.EmailRequest) *entity.EmailResponse
	SendBulk(ctx context.Context, req *entity.BulkEmailRequest) *entity.BulkEmailResult
}

type TemplateSource interface {
	Types() []entity.TemplateInfo
}

type Core struct {
	catalog   *catalog.Catalog
	composer  Composer
	generator Generator
	mailer    Mailer
	templates TemplateSource
	log       *slog.Logger
}

func New(cat *catalog.Catalog, composer Composer, log *slog.Logger) *Core {
	return &Core{
		catalog:  cat,
		composer: composer,
		log:      log.With(sl.Module("core")),
	}
}

func (c *Core) SetGenerator(gen Generator) {
	c.generator = gen
}

func (c *Core) SetMailer(mailer Mailer) {
	c.mailer = mailer
}

func (c *Core) SetTemplates(templates TemplateSource) {
	c.templates = templates
}
