package generator

// IssueFunc materializes a payment link from a validated state and returns its URL.
type IssueFunc func(s State) (string, error)

// Advance moves the wizard forward the way the generator form does:
// FORM validates then steps to CONFIRM, CONFIRM validates then issues,
// LINK_GENERATED stays put. Validation and issuance failures end up in
// the state's error field, never as a returned error.
func Advance(s State, issue IssueFunc) State {
	switch s.Step {
	case StepForm:
		if msg, ok := Validate(s); !ok {
			return Reduce(s, SetError(msg))
		}
		return Reduce(s, NextStep())
	case StepConfirm:
		if msg, ok := Validate(s); !ok {
			return Reduce(s, SetError(msg))
		}
		link, err := issue(s)
		if err != nil {
			return Reduce(s, SetError(err.Error()))
		}
		return Reduce(s, SetGeneratedLink(link))
	default:
		return Reduce(s, NextStep())
	}
}
