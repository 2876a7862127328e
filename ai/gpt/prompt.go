package gpt

import (
	"fmt"
	"statica/entity"
	"statica/internal/catalog"
	"strings"
)

// BuildProductContext summarises the catalog grouped by category for the system prompt.
func BuildProductContext(c *catalog.Catalog) string {
	company := c.Company()

	var b strings.Builder
	fmt.Fprintf(&b, "%s COMPLETE PRODUCT CATALOG:\n", strings.ToUpper(company.Name))

	for _, category := range catalog.Categories {
		fmt.Fprintf(&b, "\n%s:\n", catalog.CategoryTitle(category))
		b.WriteString(strings.Repeat("=", 50))
		b.WriteString("\n")

		for _, p := range c.ByCategory(category) {
			features := p.Features
			if len(features) > 3 {
				features = features[:3]
			}
			fmt.Fprintf(&b, "\nProduct: %s\n", p.Name)
			fmt.Fprintf(&b, "Price: %s\n", p.Price)
			fmt.Fprintf(&b, "Description: %s\n", p.Description)
			fmt.Fprintf(&b, "Key Features: %s...\n", strings.Join(features, ", "))
			fmt.Fprintf(&b, "Ideal For: %s\n", p.IdealFor)
			fmt.Fprintf(&b, "Details: %s\n", p.Url)
			b.WriteString("---\n")
		}
	}

	return b.String()
}

// SystemPrompt returns the instructions for the given agent; unknown agents get the
// product expert prompt.
func SystemPrompt(agent entity.AgentType, c *catalog.Catalog) string {
	company := c.Company()

	switch agent {
	case entity.AgentSupport:
		return fmt.Sprintf(`You are a customer support specialist for %s.

You help with:
- Order status and shipping inquiries across India
- Product questions and specifications
- Assembly guidance and resource direction
- Website navigation and product categories
- General customer service and support

Support email: %s. Be supportive and focus on helping modelers with their specific needs.`,
			company.Name, company.SupportEmail)
	case entity.AgentGeneral:
		return fmt.Sprintf(`You are a helpful AI assistant for the %s website.

Provide friendly, accurate information about our premium aircraft model kits, tools, and aeromodelling supplies.`,
			company.Name)
	default:
		return productPrompt(company, BuildProductContext(c), c)
	}
}

func productPrompt(company entity.Company, productContext string, c *catalog.Catalog) string {
	var static, flying []string
	for _, p := range c.ByCategory(entity.CategoryStaticModels) {
		static = append(static, p.Name)
	}
	for _, p := range c.ByCategory(entity.CategoryFlyingModels) {
		flying = append(flying, p.Name)
	}

	return fmt.Sprintf(`You are a product expert and aeromodelling specialist for %s - India's premier aircraft model kit provider.

COMPANY INFORMATION:
- Business: %s
- Description: %s
- Target Audience: %s
- Shipping: %s
- Support: %s
- Website: %s
- Email: %s

%s
You are an expert in:
1. AIRCRAFT MODEL KITS - Static display models, flying models, balsa wood construction
2. NCC REQUIREMENTS - Which kits are suitable for NCC Air Wing competitions
3. SKILL LEVEL GUIDANCE - Recommending kits based on builder experience
4. TOOLS & EQUIPMENT - Precision modeling tools and their uses
5. AEROMODELLING TECHNIQUES - Assembly, finishing, and display tips

KEY PRODUCT CATEGORIES:
- Static Display Kits: %s
- Flying Model Kits: %s
- Modeling Tools: Precision tools for assembly and finishing

Always be knowledgeable, specific about product details and pricing, and encouraging about the hobby.
Only quote prices that appear in the catalog above.`,
		company.Name,
		company.BusinessType,
		company.Description,
		company.TargetAudience,
		company.Shipping,
		company.Support,
		company.Website,
		company.SupportEmail,
		productContext,
		strings.Join(static, ", "),
		strings.Join(flying, ", "))
}
