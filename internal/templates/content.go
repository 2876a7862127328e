package templates

import "fmt"

// content is the per-type text poured into the shared skeleton.
type content struct {
	subject    string
	heading    string
	tagline    string
	accent     string
	paragraphs []string
	items      []string
	action     string
	actionURL  string
	closing    string
}

const (
	accentDefault = "#667eea"
	accentGreen   = "#4CAF50"
	accentOrange  = "#FF6B6B"
	accentGold    = "#F5A623"
)

func (r *Renderer) contentFor(emailType string, fields map[string]interface{}) (content, bool) {
	name := r.company.Name
	site := r.company.Website

	switch emailType {
	case Welcome:
		return content{
			subject: fmt.Sprintf("Welcome to %s! 🎉", name),
			heading: fmt.Sprintf("Welcome to %s! 🎉", name),
			tagline: "We're thrilled to have you on board",
			accent:  accentDefault,
			paragraphs: []string{
				fmt.Sprintf("Thank you for choosing %s for your aeromodelling journey!", name),
				"Here's what you can expect from us:",
			},
			items: []string{
				"✈️ Precision laser-cut balsa model kits",
				"🎯 Kits suited to NCC competitions",
				"🛠️ Professional modeling tools",
				"🤝 Build support over email and WhatsApp",
			},
			action:    "Browse Our Kits",
			actionURL: site,
			closing:   "If you have any questions, don't hesitate to reach out!",
		}, true
	case Support:
		return content{
			subject: fmt.Sprintf("Re: Your Support Request - %s", name),
			heading: "Support Request Update",
			tagline: "We're here to help! 🤝",
			accent:  accentGreen,
			paragraphs: []string{
				fmt.Sprintf("Thank you for contacting %s support. We've received your request and our team is looking into it.", name),
				"What to expect next:",
			},
			items: []string{
				"Initial response within 2-4 hours",
				"Regular updates on progress",
				"A resolution tailored to your build",
			},
			closing: fmt.Sprintf("Need immediate help? Email %s or call %s.", r.company.SupportEmail, r.company.Phone),
		}, true
	case Newsletter:
		month := r.now().Format("January 2006")
		return content{
			subject: fmt.Sprintf("📰 %s Newsletter - %s", name, month),
			heading: fmt.Sprintf("📰 %s Newsletter", name),
			tagline: month + " Edition",
			accent:  accentDefault,
			paragraphs: []string{
				"🚀 This month's highlights:",
			},
			items: []string{
				"New arrivals in premium static models",
				"Build tips for a clean balsa finish",
				"Upcoming NCC competition season",
			},
			action:    "Visit Our Store",
			actionURL: site,
			closing:   "Pro tip: seal balsa with a thin sanding sealer coat before painting.",
		}, true
	case Offer:
		return content{
			subject: "🎁 Special Offer Just For You!",
			heading: "🎁 Special Offer!",
			tagline: "Exclusive deal for our valued customers",
			accent:  accentOrange,
			paragraphs: []string{
				"As a valued member of our community, we're offering you 20% OFF all model kits.",
				"Use code: STATICA20",
				"This offer includes:",
			},
			items: []string{
				"Static display model kits",
				"Flying model kits",
				"Precision modeling tools",
			},
			action:    "Claim Your Discount",
			actionURL: site,
			closing:   "Offer expires in 7 days!",
		}, true
	case ThankYou:
		return content{
			subject: "Thank You for Your Business! 🙏",
			heading: "Thank You! 🙏",
			tagline: fmt.Sprintf("Your support keeps %s flying", name),
			accent:  accentGreen,
			paragraphs: []string{
				fmt.Sprintf("Thank you for shopping with %s. We hope you enjoy building your new kit.", name),
				"Share photos of your finished model with us, we love seeing them!",
			},
			action:    "Explore More Kits",
			actionURL: site,
		}, true
	case Feedback:
		return content{
			subject: "We'd Love Your Feedback! ⭐",
			heading: "How Did We Do? ⭐",
			tagline: "Your opinion shapes our next kit",
			accent:  accentGold,
			paragraphs: []string{
				"We'd love to hear about your experience with your recent purchase.",
				"Tell us about:",
			},
			items: []string{
				"Kit quality and fit of parts",
				"Clarity of the technical drawings",
				"Delivery and packaging",
			},
			action:    "Leave Feedback",
			actionURL: site,
		}, true
	case AbandonedCart:
		return content{
			subject: "You left something in your cart 🛒",
			heading: "Still thinking it over? 🛒",
			tagline: "Your kit is waiting for you",
			accent:  accentOrange,
			paragraphs: []string{
				"We noticed you left items in your cart. They're still available, but stock of popular kits runs out quickly.",
			},
			action:    "Complete Your Order",
			actionURL: site,
			closing:   "Questions about a kit? Just reply to this email.",
		}, true
	case PasswordReset:
		return content{
			subject: fmt.Sprintf("Reset your %s password", name),
			heading: "Password Reset",
			tagline: "Let's get you back in",
			accent:  accentDefault,
			paragraphs: []string{
				"We received a request to reset your password. Use the link below to choose a new one.",
				"If you didn't request this, you can safely ignore this email.",
			},
			action:    "Reset Password",
			actionURL: field(fields, "reset_url", site+"/my-account/lost-password/"),
		}, true
	case OrderConfirmation:
		orderID := field(fields, "order_id", "")
		subject := fmt.Sprintf("Your %s order is confirmed ✅", name)
		if orderID != "" {
			subject = fmt.Sprintf("Order #%s confirmed ✅", orderID)
		}
		confirm := "We've received your order and are preparing it for dispatch."
		if orderID != "" {
			confirm = fmt.Sprintf("We've received order #%s and are preparing it for dispatch.", orderID)
		}
		return content{
			subject:    subject,
			heading:    "Order Confirmed ✅",
			tagline:    "Thank you for your purchase",
			accent:     accentGreen,
			paragraphs: []string{confirm, "You'll receive a shipping update as soon as your kit is on its way."},
			action:     "View Your Orders",
			actionURL:  site + "/my-account/orders/",
		}, true
	case ShippingUpdate:
		tracking := field(fields, "tracking_number", "")
		update := "Your order has been shipped and is on its way to you."
		if tracking != "" {
			update = fmt.Sprintf("Your order has been shipped. Tracking number: %s", tracking)
		}
		return content{
			subject:    "Your order is on its way! 📦",
			heading:    "Shipping Update 📦",
			tagline:    r.company.Shipping,
			accent:     accentDefault,
			paragraphs: []string{update},
			closing:    fmt.Sprintf("Questions about delivery? Contact %s.", r.company.SupportEmail),
		}, true
	}
	return content{}, false
}

func (r *Renderer) defaultContent() content {
	return content{
		subject:    fmt.Sprintf("Message from %s", r.company.Name),
		heading:    r.company.Name,
		accent:     accentDefault,
		paragraphs: []string{"Thank you for your message."},
	}
}
