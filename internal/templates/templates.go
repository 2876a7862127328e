// Package templates renders transactional Statica emails. Rendering is a pure function
// of its inputs; unknown email types fall back to a default template.
package templates

import (
	"fmt"
	"statica/entity"
	"strings"
	"time"
)

const (
	Welcome           = "welcome"
	Support           = "support"
	Newsletter        = "newsletter"
	Offer             = "offer"
	ThankYou          = "thank_you"
	Feedback          = "feedback"
	AbandonedCart     = "abandoned_cart"
	PasswordReset     = "password_reset"
	OrderConfirmation = "order_confirmation"
	ShippingUpdate    = "shipping_update"
)

const defaultName = "there"

var catalogTypes = []entity.TemplateInfo{
	{Type: Welcome, Name: "Welcome Email", Description: "New customer welcome email"},
	{Type: Support, Name: "Support Response", Description: "Customer support follow-up"},
	{Type: Newsletter, Name: "Newsletter", Description: "Monthly newsletter"},
	{Type: Offer, Name: "Special Offer", Description: "Promotional offers and discounts"},
	{Type: ThankYou, Name: "Thank You", Description: "Post-purchase thank you"},
	{Type: Feedback, Name: "Feedback Request", Description: "Customer feedback survey"},
	{Type: AbandonedCart, Name: "Abandoned Cart", Description: "Follow-up for abandoned carts"},
	{Type: PasswordReset, Name: "Password Reset", Description: "Password reset instructions"},
	{Type: OrderConfirmation, Name: "Order Confirmation", Description: "Order confirmation email"},
	{Type: ShippingUpdate, Name: "Shipping Update", Description: "Shipping status updates"},
}

type Renderer struct {
	company entity.Company
	enabled map[string]bool
	now     func() time.Time
}

// New builds a renderer. When enabledTypes is non-empty, discovery lists only those types.
func New(company entity.Company, enabledTypes []string) *Renderer {
	r := &Renderer{
		company: company,
		now:     time.Now,
	}
	for _, t := range enabledTypes {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if r.enabled == nil {
			r.enabled = make(map[string]bool)
		}
		r.enabled[t] = true
	}
	return r
}

// Known reports whether emailType is one of the catalogued email types.
func Known(emailType string) bool {
	for _, info := range catalogTypes {
		if info.Type == emailType {
			return true
		}
	}
	return false
}

// Types lists the email types exposed for discovery.
func (r *Renderer) Types() []entity.TemplateInfo {
	list := make([]entity.TemplateInfo, 0, len(catalogTypes))
	for _, info := range catalogTypes {
		if r.enabled == nil || r.enabled[info.Type] {
			list = append(list, info)
		}
	}
	return list
}

// Render produces subject and bodies for emailType. A non-empty customMessage replaces
// the template's standard content block.
func (r *Renderer) Render(emailType, customMessage string, fields map[string]interface{}) entity.EmailTemplate {
	s, ok := r.contentFor(emailType, fields)
	if !ok {
		s = r.defaultContent()
	}

	data := skeletonData{
		Company:       r.company,
		Name:          field(fields, "name", defaultName),
		Heading:       s.heading,
		Tagline:       s.tagline,
		Accent:        s.accent,
		Paragraphs:    s.paragraphs,
		Items:         s.items,
		CustomMessage: strings.TrimSpace(customMessage),
		Action:        s.action,
		ActionURL:     s.actionURL,
		Closing:       s.closing,
	}

	return entity.EmailTemplate{
		Subject:  s.subject,
		HTMLBody: renderHTML(data),
		TextBody: renderText(data),
	}
}

// field reads a string value from caller supplied data.
func field(fields map[string]interface{}, key, fallback string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return fallback
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return fallback
	}
	return s
}
