package intent

import "errors"

var (
	ErrNoRules        = errors.New("rule table has no rules")
	ErrNoEmergency    = errors.New("rule table has no emergency keywords")
	ErrEmptyKeyword   = errors.New("keyword is empty after normalization")
	ErrRuleNoKeywords = errors.New("rule has no keywords")
	ErrRuleNoResponse = errors.New("rule has no response")
)
