package compose

import (
	"strings"
	"testing"

	"statica/ai/intent"
	"statica/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func newComposer() *Composer {
	return New(catalog.Default())
}

func TestCompose_NeverEmpty(t *testing.T) {
	c := newComposer()
	for _, in := range intent.All() {
		for _, text := range []string{"", "static vs flying", "compare 30 and 55", "rafale"} {
			assert.NotEmpty(t, c.Compose(in, text), "%s / %q", in, text)
		}
	}
}

func TestCompose_UnknownIntentPanics(t *testing.T) {
	assert.Panics(t, func() { newComposer().Compose(intent.Intent(99), "") })
}

func TestCompose_DetailQueries(t *testing.T) {
	cat := catalog.Default()
	c := New(cat)

	queries := map[string]string{
		catalog.Virus30:    "Tell me about the Virus SW 80 30cm",
		catalog.Virus55:    "virus 55 details please",
		catalog.Rafale:     "Do you sell the Rafale?",
		catalog.Sukhoi:     "sukhoi su-30mki kit",
		catalog.Skybee:     "skybee trainer",
		catalog.Peacemaker: "ultra peacemaker",
		catalog.Tools:      "what tools do you have",
	}

	for _, p := range cat.All() {
		query, ok := queries[p.ID]
		if !assert.True(t, ok, "no detail query for %s", p.ID) {
			continue
		}
		answer := c.Compose(intent.Classify(query), query)
		assert.Contains(t, answer, p.Name, p.ID)
		assert.Contains(t, answer, p.Price, p.ID)
	}
}

func TestCompose_StaticSubMatch(t *testing.T) {
	c := newComposer()

	answer := c.Compose(intent.StaticModels, "sukhoi su30")
	assert.Contains(t, answer, "Sukhoi Su-30MKI Static Model Kit")
	assert.NotContains(t, answer, "(30 cms)")

	answer = c.Compose(intent.StaticModels, "a large balsa kit")
	assert.Contains(t, answer, "(55 cms)")

	listing := c.Compose(intent.StaticModels, "balsa kits")
	assert.Contains(t, listing, "STATIC DISPLAY MODEL KITS")
	assert.Contains(t, listing, "Dassault Rafale Static Model Kit")
	assert.Contains(t, listing, "Sukhoi Su-30MKI Static Model Kit")
	assert.NotContains(t, listing, "Skybee")
}

func TestCompose_Pricing(t *testing.T) {
	cat := catalog.Default()
	answer := New(cat).Compose(intent.Classify("how much are your kits?"), "how much are your kits?")

	for _, p := range cat.All() {
		assert.Contains(t, answer, p.Price, p.ID)
	}
}

func TestCompose_Comparison(t *testing.T) {
	c := newComposer()

	assert.Contains(t, c.Compose(intent.Comparison, "compare 30 and 55"), "30cm vs 55cm")
	assert.Contains(t, c.Compose(intent.Comparison, "difference static and flying"), "STATIC vs FLYING")
	assert.Contains(t, c.Compose(intent.Comparison, "which one"), "I can help you compare")

	// a comparison naming both kinds is answered even though "flying" classifies first
	text := "what is the difference between static and flying models"
	assert.Equal(t, intent.FlyingModels, intent.Classify(text))
	assert.Contains(t, c.Compose(intent.Classify(text), text), "STATIC vs FLYING")

	assert.Contains(t, c.Compose(intent.Comparison, "static and flying"), "₹3,499.00 - ₹4,899.00")
}

func TestCompose_NCC(t *testing.T) {
	answer := newComposer().Compose(intent.NCC, "ncc")
	assert.Contains(t, answer, "Virus SW 80 Static Model Balsa Kit (30 cms)")
	assert.Contains(t, answer, "Virus SW 80 Static Model Balsa Kit (55 cms)")
	assert.NotContains(t, answer, "Rafale")
}

func TestCompose_Beginner(t *testing.T) {
	answer := newComposer().Compose(intent.Beginner, "")
	assert.Contains(t, answer, "Virus SW 80 Static Model Balsa Kit (30 cms)")
	assert.Contains(t, answer, "₹3,499.00")
}

func TestCompose_GreetingAndFallback(t *testing.T) {
	c := newComposer()

	welcome := c.Compose(intent.Greeting, "hello")
	assert.Contains(t, welcome, "Welcome to Statica")
	assert.Contains(t, welcome, "Virus SW 80, Dassault Rafale, Sukhoi Su-30MKI")

	empty := c.Compose(intent.Classify(""), "")
	assert.Contains(t, empty, "support@statica.in")

	echoed := c.Compose(intent.Fallback, "do you deliver to Goa?")
	assert.Contains(t, echoed, `"do you deliver to Goa?"`)
}

func TestCompose_FallbackEchoesVerbatim(t *testing.T) {
	c := newComposer()

	answer := c.Compose(intent.Fallback, "  say \"hi\"\nthere  ")
	assert.Contains(t, answer, "\"say \"hi\"\nthere\"")
	assert.NotContains(t, answer, `\n`)

	long := c.Compose(intent.Fallback, strings.Repeat("z", 500))
	assert.Contains(t, long, strings.Repeat("z", maxEcho)+"...")
	assert.NotContains(t, long, strings.Repeat("z", maxEcho+1))
}

func TestPriceRange(t *testing.T) {
	assert.Equal(t, "Prices vary", priceRange(nil))
	assert.Equal(t, "₹3,994.00 - ₹5,166.00", priceRange(catalog.Default().ByCategory("flying_models")))
}
