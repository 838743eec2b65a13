package intent

// Intent is the routing decision for a single message.
type Intent string

const (
	IntentEmergency  Intent = "emergency"
	IntentRuleBased  Intent = "rule_based"
	IntentGenerative Intent = "generative"
)

func (i Intent) String() string {
	return string(i)
}

// Rule maps alternative trigger phrases to one canned response.
// Keywords are kept in natural form and normalized before matching.
type Rule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Response string   `yaml:"response"`
}

// Table is the single keyword universe shared by the classifier and the
// responder. Rules are evaluated in declaration order.
type Table struct {
	Emergency []string `yaml:"emergency_keywords"`
	Rules     []Rule   `yaml:"rules"`
}
