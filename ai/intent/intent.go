// Package intent classifies chat messages into a closed set of intents by ordered
// keyword matching.
package intent

import (
	"strings"
)

type Intent int

const (
	Fallback Intent = iota
	StaticModels
	FlyingModels
	Tools
	NCC
	Pricing
	Comparison
	Beginner
	Greeting
)

var names = [...]string{
	Fallback:     "fallback",
	StaticModels: "static_models",
	FlyingModels: "flying_models",
	Tools:        "tools",
	NCC:          "ncc",
	Pricing:      "pricing",
	Comparison:   "comparison",
	Beginner:     "beginner",
	Greeting:     "greeting",
}

func (i Intent) String() string {
	if i < 0 || int(i) >= len(names) {
		return "unknown"
	}
	return names[i]
}

// All returns every intent value.
func All() []Intent {
	all := make([]Intent, len(names))
	for i := range names {
		all[i] = Intent(i)
	}
	return all
}

type rule struct {
	intent   Intent
	keywords []string
}

// rules are tested in order and the first match wins, so a message naming both a
// static kit and a flying keyword is a static_models query.
var rules = []rule{
	{StaticModels, []string{"virus", "sw80", "static model", "balsa", "rafale", "sukhoi", "su30", "su-30"}},
	{FlyingModels, []string{"flying", "control line", "rc", "skybee", "peacemaker"}},
	{Tools, []string{"tools", "equipment", "cutters", "sanding"}},
	{NCC, []string{"ncc", "competition", "air wing"}},
	{Pricing, []string{"price", "cost", "how much"}},
	{Comparison, []string{"difference", "compare", "which one"}},
	{Beginner, []string{"beginner", "starter", "first kit"}},
	{Greeting, []string{"hello", "hi", "help"}},
}

func Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if ContainsAny(lower, r.keywords...) {
			return r.intent
		}
	}
	return Fallback
}

// ContainsAny reports whether s contains at least one of the substrings.
func ContainsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
