// Package compose renders the local chat answers for each intent from the static catalog.
package compose

import (
	"fmt"
	"statica/ai/intent"
	"statica/entity"
	"statica/internal/catalog"
	"strings"
)

// maxEcho caps how much of an unmatched question is repeated back.
const maxEcho = 200

var comparisonWords = []string{"difference", "compare", "which one", " vs ", "versus"}

type Composer struct {
	catalog *catalog.Catalog
	company entity.Company
}

func New(c *catalog.Catalog) *Composer {
	return &Composer{
		catalog: c,
		company: c.Company(),
	}
}

// Compose returns the answer for an already classified message. It never returns an
// empty string.
func (c *Composer) Compose(in intent.Intent, text string) string {
	lower := strings.ToLower(text)

	switch in {
	case intent.StaticModels:
		return c.staticModels(lower)
	case intent.FlyingModels:
		return c.flyingModels(lower)
	case intent.Tools:
		return c.tools()
	case intent.NCC:
		return c.ncc()
	case intent.Pricing:
		return c.pricing()
	case intent.Comparison:
		return c.comparison(lower)
	case intent.Beginner:
		return c.beginner()
	case intent.Greeting:
		return c.welcome()
	case intent.Fallback:
		return c.general(text)
	default:
		panic(fmt.Sprintf("compose: unhandled intent %d", in))
	}
}

func isStaticVsFlying(lower string) bool {
	return strings.Contains(lower, "static") &&
		strings.Contains(lower, "flying") &&
		intent.ContainsAny(lower, comparisonWords...)
}

func (c *Composer) staticModels(lower string) string {
	if isStaticVsFlying(lower) {
		return c.compareStaticVsFlying()
	}

	switch {
	case strings.Contains(lower, "rafale"):
		return c.productDetail(c.catalog.Get(catalog.Rafale))
	case intent.ContainsAny(lower, "sukhoi", "su30", "su-30"):
		return c.productDetail(c.catalog.Get(catalog.Sukhoi))
	case intent.ContainsAny(lower, "30", "small"):
		return c.productDetail(c.catalog.Get(catalog.Virus30))
	case intent.ContainsAny(lower, "55", "large"):
		return c.productDetail(c.catalog.Get(catalog.Virus55))
	}

	var b strings.Builder
	b.WriteString("**🎯 STATIC DISPLAY MODEL KITS**\n\n")
	b.WriteString("We offer premium balsa wood static model kits perfect for display, education, and NCC competitions:\n\n")
	for _, kit := range c.catalog.ByCategory(entity.CategoryStaticModels) {
		fmt.Fprintf(&b, "✈️ **%s** - %s\n", kit.Name, kit.Price)
		fmt.Fprintf(&b, "   %s\n", truncate(kit.Description, 100))
		fmt.Fprintf(&b, "   Ideal for: %s\n\n", kit.IdealFor)
	}
	fmt.Fprintf(&b, "Browse all static models: %s/balsa-wood-aircraft-model-kits/", c.company.Website)
	return b.String()
}

func (c *Composer) productDetail(p entity.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", p.Name)
	fmt.Fprintf(&b, "💰 **Price:** %s\n", p.Price)
	fmt.Fprintf(&b, "📏 **Specs:** %s\n", p.Specs)
	fmt.Fprintf(&b, "🎯 **Ideal For:** %s\n\n", p.IdealFor)
	fmt.Fprintf(&b, "%s\n\n", p.Description)
	b.WriteString("**Key Features:**\n")
	b.WriteString(bullets(p.Features))
	fmt.Fprintf(&b, "\n\n🔗 **View Details:** %s\n\n", p.Url)
	b.WriteString("Ready to build this amazing aircraft model? Visit our website to order!")
	return b.String()
}

func (c *Composer) flyingModels(lower string) string {
	if isStaticVsFlying(lower) {
		return c.compareStaticVsFlying()
	}

	var b strings.Builder
	b.WriteString("**✈️ FLYING MODEL KITS**\n\n")
	b.WriteString("We offer control line and RC flying model kits for hobbyists who want to fly their creations:\n\n")
	for _, kit := range c.catalog.ByCategory(entity.CategoryFlyingModels) {
		fmt.Fprintf(&b, "🚀 **%s** - %s\n", kit.Name, kit.Price)
		fmt.Fprintf(&b, "   %s\n", kit.Description)
		fmt.Fprintf(&b, "   Skill Level: %s\n\n", kit.IdealFor)
	}
	fmt.Fprintf(&b, "Explore flying models: %s/flying-model-kits-rc-control-line/", c.company.Website)
	return b.String()
}

func (c *Composer) tools() string {
	t := c.catalog.Get(catalog.Tools)

	var b strings.Builder
	b.WriteString("**🛠️ PRECISION MODELING TOOLS**\n\n")
	fmt.Fprintf(&b, "**%s** - %s\n\n", t.Name, t.Price)
	fmt.Fprintf(&b, "%s\n\n", t.Description)
	b.WriteString("**What we offer:**\n")
	b.WriteString(bullets(t.Features))
	b.WriteString("\n\n**Essential for:**\n")
	b.WriteString(bullets([]string{
		"Cutting and shaping balsa wood",
		"Sanding and finishing surfaces",
		"Precise assembly and alignment",
		"Professional model finishing",
	}))
	fmt.Fprintf(&b, "\n\n**Browse our tools collection:**\n%s\n\n", t.Url)
	b.WriteString("These tools will help you build better, more precise aircraft models!")
	return b.String()
}

func (c *Composer) ncc() string {
	kits := []entity.Product{
		c.catalog.Get(catalog.Virus30),
		c.catalog.Get(catalog.Virus55),
	}

	var b strings.Builder
	b.WriteString("**Perfect for NCC Air Wing!** 🎖️\n\n")
	b.WriteString("Our kits are specifically designed for AIVSC & IGC aeromodelling competitions:\n\n")
	for _, kit := range kits {
		fmt.Fprintf(&b, "✅ **%s** - %s\n", kit.Name, kit.Price)
		fmt.Fprintf(&b, "   %s\n", kit.Specs)
		fmt.Fprintf(&b, "   %s\n\n", kit.IdealFor)
	}
	b.WriteString("**Why our kits are ideal for NCC:**\n")
	b.WriteString(bullets([]string{
		"Precision CNC laser-cut for competition-level accuracy",
		"Premium imported balsa wood materials",
		"Scale technical drawings included",
		"IAF scheme decals for authenticity",
		"Meets NCC competition requirements",
	}))
	b.WriteString("\n\n**Recommended for NCC Competitions:**\n")
	b.WriteString("• **30cm Virus SW 80** - Standard competition size\n")
	b.WriteString("• **55cm Virus SW 80** - For advanced projects\n\n")
	b.WriteString("Both kits include everything needed for NCC building competitions!")
	return b.String()
}

func (c *Composer) pricing() string {
	var b strings.Builder
	b.WriteString("**💰 PRICING INFORMATION**\n\n")
	fmt.Fprintf(&b, "Here's our pricing for %s aircraft model kits:\n", c.company.Name)

	for _, category := range catalog.Categories {
		fmt.Fprintf(&b, "\n**%s:**\n", catalog.CategoryTitle(category))
		for _, p := range c.catalog.ByCategory(category) {
			fmt.Fprintf(&b, "• %s - %s\n", p.Name, p.Price)
		}
	}

	virus := c.catalog.Get(catalog.Virus30)
	skybee := c.catalog.Get(catalog.Skybee)

	b.WriteString("\n**All kits include:**\n")
	b.WriteString(bullets([]string{
		"Premium imported materials",
		"Precision laser-cut parts",
		"Detailed instructions/technical drawings",
		"Authentic decals and markings",
	}))
	b.WriteString("\n\n**💡 Budget Tips:**\n")
	fmt.Fprintf(&b, "• Start with the %s for beginners (%s)\n", virus.Name, virus.Price)
	fmt.Fprintf(&b, "• The %s is perfect for a first flying model (%s)\n", skybee.Name, skybee.Price)
	b.WriteString("• Check our website for any active promotions\n\n")
	b.WriteString("Which type of model kit interests you?")
	return b.String()
}

func (c *Composer) comparison(lower string) string {
	switch {
	case strings.Contains(lower, "static") && strings.Contains(lower, "flying"):
		return c.compareStaticVsFlying()
	case strings.Contains(lower, "30") && strings.Contains(lower, "55"):
		return c.compareVirusSizes()
	default:
		return c.comparisonMenu()
	}
}

func (c *Composer) compareStaticVsFlying() string {
	static := priceRange(c.catalog.ByCategory(entity.CategoryStaticModels))
	flying := priceRange(c.catalog.ByCategory(entity.CategoryFlyingModels))

	return fmt.Sprintf(`**🆚 STATIC vs FLYING MODELS - Key Differences:**

**🎯 STATIC DISPLAY MODELS:**
• **Purpose:** Display, education, competition
• **Materials:** Balsa wood, detailed finishes
• **Assembly:** Glue-based, precise construction
• **Result:** Beautiful display piece
• **Price:** %s
• **Best for:** NCC, collectors, home/office decor

**✈️ FLYING MODELS:**
• **Purpose:** Actual flying, hobby flying
• **Materials:** Lighter construction for flight
• **Assembly:** Includes flight controls
• **Result:** Functional flying aircraft
• **Price:** %s
• **Best for:** Flying enthusiasts, RC hobbyists

**Recommendation:**
- Want a beautiful display piece? → Choose Static Models
- Want to fly your creation? → Choose Flying Models

Which experience are you looking for?`, static, flying)
}

func (c *Composer) compareVirusSizes() string {
	kit30 := c.catalog.Get(catalog.Virus30)
	kit55 := c.catalog.Get(catalog.Virus55)

	return fmt.Sprintf(`**🆚 Virus SW 80: 30cm vs 55cm Comparison**

**%s**
• Price: %s
• Length: 30cm
• Best for: %s
• Portability: Easy to transport
• Detail Level: Standard competition detail

**%s**
• Price: %s
• Length: 55cm
• Best for: %s
• Portability: Larger, more impressive
• Detail Level: Enhanced details and presence

**Key Differences:**
• **Size:** 55cm is 25cm larger (almost double)
• **Display Impact:** 55cm makes a bigger statement
• **Portability:** 30cm easier for competitions

**Recommendation:**
- For NCC competitions & beginners: Choose 30cm
- For display pieces & advanced projects: Choose 55cm

Which better fits your needs?`,
		kit30.Name, kit30.Price, kit30.IdealFor,
		kit55.Name, kit55.Price, kit55.IdealFor)
}

func (c *Composer) comparisonMenu() string {
	return `**I can help you compare different aircraft model kits!**

Here are common comparisons I can help with:

• **Virus SW 80 - 30cm vs 55cm** (size and purpose)
• **Static Models vs Flying Models** (display vs functional)
• **Beginner Kits vs Advanced Kits** (skill levels)
• **NCC Competition Kits** (requirements and suitability)
• **Price Ranges** (budget considerations)

What specific comparison are you interested in? For example:
- "Compare Virus 30cm and 55cm"
- "Difference between static and flying models"
- "Which kit is best for beginners?"
- "NCC competition kit options"`
}

func (c *Composer) beginner() string {
	virus := c.catalog.Get(catalog.Virus30)
	skybee := c.catalog.Get(catalog.Skybee)

	return fmt.Sprintf(`**🚀 PERFECT STARTER KITS FOR BEGINNERS**

Based on your interest in starting aircraft modeling, here are my recommendations:

**🎯 BEST OVERALL BEGINNER KIT:**
• **%s** - %s
  Why: Perfect size, clear instructions, NCC-approved, great learning project

**✈️ BEGINNER FLYING KIT:**
• **%s** - %s
  Why: Stable flight characteristics, control line system, beginner-friendly

**💡 BEGINNER TIPS:**
1. Start with a smaller kit (30cm) for manageable completion
2. Have basic tools ready (knife, sandpaper, glue)
3. Allow 2-4 weeks for first build
4. Don't rush - enjoy the process!
5. Join online modeling communities for support

**🛠️ ESSENTIAL STARTER TOOLS:**
• Precision knife
• Sanding blocks/files
• Wood glue
• Cutting mat
• Tweezers for small parts

The **%s** is our most popular beginner kit - perfect balance of challenge and achievement!

Ready to start your aeromodelling journey?`,
		virus.Name, virus.Price, skybee.Name, skybee.Price, virus.Name)
}

func (c *Composer) welcome() string {
	return fmt.Sprintf(`**Hello! 👋 Welcome to %s!**

I'm your AI assistant specializing in premium aircraft model kits and aeromodelling. I can help you with:

• **Aircraft Model Kits** - Static display & flying models
• **NCC Competition Kits** - Virus SW 80 and other approved models
• **Product Comparisons** - Help choose the right kit for you
• **Beginner Guidance** - Perfect starter kits and tips
• **Tools & Equipment** - Precision modeling tools
• **Pricing & Orders** - Product costs and ordering information

**Quick Navigation:**
🎯 Static Models: %s
✈️ Flying Models: %s
🛠️ Modeling Tools: Precision tools and equipment

What would you like to know about our premium aircraft model kits?`,
		c.company.Name,
		c.shortNames(entity.CategoryStaticModels),
		c.shortNames(entity.CategoryFlyingModels))
}

func (c *Composer) general(text string) string {
	opening := "Thank you for reaching out!"
	if q := strings.TrimSpace(text); q != "" {
		opening = fmt.Sprintf("Thank you for your question about: \"%s\"", truncate(q, maxEcho))
	}

	return fmt.Sprintf(`%s

At %s, we specialize in premium aircraft model kits including:

• **Static Display Kits** - %s
• **Flying Model Kits** - Control Line and RC models
• **Modeling Tools** - Precision tools for perfect builds

I can help you with:
- Kit recommendations based on your experience level
- NCC competition requirements and suitable kits
- Product comparisons and pricing
- Assembly guidance and tool recommendations

For more specific assistance, you can also:
• Browse our website: %s
• Email us: %s

What specific type of aircraft model kit are you interested in?`,
		opening,
		c.company.Name,
		c.shortNames(entity.CategoryStaticModels),
		c.company.Website,
		c.company.SupportEmail)
}

// shortNames joins category product names without the trailing kit wording.
func (c *Composer) shortNames(category entity.ProductCategory) string {
	var names []string
	for _, p := range c.catalog.ByCategory(category) {
		name := p.Name
		for _, suffix := range []string{" Static Model Balsa Kit", " Static Model Kit", " Flying Model Kit", " Trainer Kit"} {
			if i := strings.Index(name, suffix); i > 0 {
				name = name[:i]
				break
			}
		}
		names = append(names, name)
	}
	return strings.Join(dedupe(names), ", ")
}
