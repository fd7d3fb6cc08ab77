package metrics

// Shared attribute keys for otel instruments.
const (
	AttrYear  = "year"
	AttrGate  = "gate"
	AttrRound = "round"
)
