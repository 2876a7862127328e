package validate

import (
	"github.com/go-playground/validator/v10"
	"regexp"
	"sync"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// mailboxPattern requires a dotted domain with an alphabetic TLD of two or more letters.
var mailboxPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		_ = instance.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
			return mailboxPattern.MatchString(fl.Field().String())
		})
	})
	return instance
}

func Struct(s interface{}) error {
	return get().Struct(s)
}

func Email(address string) bool {
	return get().Var(address, "required,mailbox") == nil
}
