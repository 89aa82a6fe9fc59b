package generator

import "time"

// Step is the wizard's position.
type Step string

const (
	StepForm          Step = "FORM"
	StepConfirm       Step = "CONFIRM"
	StepLinkGenerated Step = "LINK_GENERATED"
)

// Field names accepted by SET_FIELD.
type Field string

const (
	FieldCustomerName  Field = "customerName"
	FieldCustomerEmail Field = "customerEmail"
	FieldAmount        Field = "amount"
	FieldCurrency      Field = "currency"
	FieldGateway       Field = "gateway"
	FieldDescription   Field = "description"
)

const (
	DefaultCurrency = "USD"
	DefaultGateway  = "stripe"
)

// Currencies and Gateways offered by the generator form.
var (
	Currencies = []string{"USD", "EUR", "GBP", "INR"}
	Gateways   = []string{"stripe", "paypal", "razorpay"}
)

// State of one wizard instance. GeneratedLink is only set in StepLinkGenerated.
type State struct {
	Step          Step    `json:"step"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Amount        string  `json:"amount"`
	Currency      string  `json:"currency"`
	Gateway       string  `json:"gateway"`
	Description   string  `json:"description"`
	GeneratedLink *string `json:"generatedLink"`
	Error         *string `json:"error"`
}

// ActionType enumerates the reducer's action set.
type ActionType string

const (
	ActionSetField         ActionType = "SET_FIELD"
	ActionNextStep         ActionType = "NEXT_STEP"
	ActionPrevStep         ActionType = "PREV_STEP"
	ActionSetGeneratedLink ActionType = "SET_GENERATED_LINK"
	ActionSetError         ActionType = "SET_ERROR"
	ActionReset            ActionType = "RESET"
)

type Action struct {
	Type  ActionType `json:"type"`
	Field Field      `json:"field,omitempty"`
	Value string     `json:"value,omitempty"`
	Link  string     `json:"link,omitempty"`
	Error string     `json:"error,omitempty"`
}

func SetField(field Field, value string) Action {
	return Action{Type: ActionSetField, Field: field, Value: value}
}

func NextStep() Action { return Action{Type: ActionNextStep} }

func PrevStep() Action { return Action{Type: ActionPrevStep} }

func SetGeneratedLink(link string) Action {
	return Action{Type: ActionSetGeneratedLink, Link: link}
}

func SetError(msg string) Action {
	return Action{Type: ActionSetError, Error: msg}
}

func Reset() Action { return Action{Type: ActionReset} }

// Session is a wizard instance owned by one user.
type Session struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	State     State     `json:"state"`
	UpdatedAt time.Time `json:"updatedAt"`
}
