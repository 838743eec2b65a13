package intent

import (
	"fmt"
	"strings"

	"healthsmart-chatbot/pkg/textnorm"
)

// Validate reports the first structural problem in the table.
func (t Table) Validate() error {
	if len(t.Emergency) == 0 {
		return ErrNoEmergency
	}
	for i, kw := range t.Emergency {
		if textnorm.Normalize(kw) == "" {
			return fmt.Errorf("emergency keyword %d: %w", i, ErrEmptyKeyword)
		}
	}

	if len(t.Rules) == 0 {
		return ErrNoRules
	}
	for i, rule := range t.Rules {
		label := rule.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("rule %s: %w", label, ErrRuleNoKeywords)
		}
		if strings.TrimSpace(rule.Response) == "" {
			return fmt.Errorf("rule %s: %w", label, ErrRuleNoResponse)
		}
		for j, kw := range rule.Keywords {
			if textnorm.Normalize(kw) == "" {
				return fmt.Errorf("rule %s keyword %d: %w", label, j, ErrEmptyKeyword)
			}
		}
	}
	return nil
}
