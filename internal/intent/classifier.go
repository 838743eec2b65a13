package intent

import (
	"strings"

	"healthsmart-chatbot/pkg/textnorm"
)

// Engine is what the chat router needs from intent detection.
type Engine interface {
	Classify(message string) Intent
	Respond(message string) (string, bool)
}

type compiledRule struct {
	name     string
	keywords []string // normalized, empty ones dropped
	response string
}

// Classifier decides the intent of a message and answers rule-based ones.
// Classify and Respond scan the same compiled index, so a message classified
// as rule-based always has a matching rule.
type Classifier struct {
	emergency []string
	rules     []compiledRule
}

var _ Engine = (*Classifier)(nil)

// New compiles table into a Classifier. The table is not retained, so later
// changes to it have no effect.
func New(table Table) *Classifier {
	c := &Classifier{
		emergency: normalizeAll(table.Emergency),
		rules:     make([]compiledRule, 0, len(table.Rules)),
	}
	for _, rule := range table.Rules {
		c.rules = append(c.rules, compiledRule{
			name:     rule.Name,
			keywords: normalizeAll(rule.Keywords),
			response: rule.Response,
		})
	}
	return c
}

// Classify returns Emergency, RuleBased or Generative in that priority.
func (c *Classifier) Classify(message string) Intent {
	normalized := textnorm.Normalize(message)

	for _, kw := range c.emergency {
		if strings.Contains(normalized, kw) {
			return IntentEmergency
		}
	}
	if _, ok := c.match(normalized); ok {
		return IntentRuleBased
	}
	return IntentGenerative
}

// Respond returns the canned response of the first matching rule.
func (c *Classifier) Respond(message string) (string, bool) {
	rule, ok := c.match(textnorm.Normalize(message))
	if !ok {
		return "", false
	}
	return rule.response, true
}

// RuleName returns the name of the first matching rule.
func (c *Classifier) RuleName(message string) (string, bool) {
	rule, ok := c.match(textnorm.Normalize(message))
	if !ok {
		return "", false
	}
	return rule.name, true
}

// match scans rules then keywords in declaration order; first hit wins.
func (c *Classifier) match(normalized string) (compiledRule, bool) {
	for _, rule := range c.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				return rule, true
			}
		}
	}
	return compiledRule{}, false
}

func normalizeAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if nkw := textnorm.Normalize(kw); nkw != "" {
			out = append(out, nkw)
		}
	}
	return out
}
