package validation

// Reporter receives the human readable reason a validation was rejected.
// *slog.Logger satisfies this interface.
type Reporter interface {
	Info(msg string, args ...any)
}

type discard struct{}

func (discard) Info(string, ...any) {}

// Discard is a Reporter that drops every message.
var Discard Reporter = discard{}

// OrDiscard returns r, or Discard when r is nil.
func OrDiscard(r Reporter) Reporter {
	if r == nil {
		return Discard
	}
	return r
}
