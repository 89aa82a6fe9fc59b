package generator

// Initial returns the state of a fresh wizard.
func Initial() State {
	return State{
		Step:     StepForm,
		Currency: DefaultCurrency,
		Gateway:  DefaultGateway,
	}
}

// Reduce applies a single action. It never mutates s.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionSetField:
		s = setField(s, a.Field, a.Value)
		s.Error = nil
		return s
	case ActionNextStep:
		switch s.Step {
		case StepForm:
			s.Step = StepConfirm
		case StepConfirm:
			s.Step = StepLinkGenerated
		}
		return s
	case ActionPrevStep:
		switch s.Step {
		case StepConfirm:
			s.Step = StepForm
		case StepLinkGenerated:
			s.Step = StepConfirm
			s.GeneratedLink = nil
		}
		return s
	case ActionSetGeneratedLink:
		link := a.Link
		s.GeneratedLink = &link
		s.Step = StepLinkGenerated
		return s
	case ActionSetError:
		msg := a.Error
		s.Error = &msg
		return s
	case ActionReset:
		return Initial()
	default:
		return s
	}
}

// Dispatch folds a sequence of actions over s.
func Dispatch(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func setField(s State, field Field, value string) State {
	switch field {
	case FieldCustomerName:
		s.CustomerName = value
	case FieldCustomerEmail:
		s.CustomerEmail = value
	case FieldAmount:
		s.Amount = value
	case FieldCurrency:
		s.Currency = value
	case FieldGateway:
		s.Gateway = value
	case FieldDescription:
		s.Description = value
	}
	return s
}

// IsField reports whether name is one of the editable form fields.
func IsField(name string) bool {
	switch Field(name) {
	case FieldCustomerName, FieldCustomerEmail, FieldAmount,
		FieldCurrency, FieldGateway, FieldDescription:
		return true
	}
	return false
}
