package model

// Scope carries per-request caller identity resolved by the delivery layer.
type Scope struct {
	RequestID string
	ClientIP  string
}
