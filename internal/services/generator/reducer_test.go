package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled() State {
	return Dispatch(Initial(),
		SetField(FieldCustomerName, "Alice"),
		SetField(FieldCustomerEmail, "alice@x.com"),
		SetField(FieldAmount, "100"),
	)
}

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Equal(t, StepForm, s.Step)
	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, "stripe", s.Gateway)
	assert.Empty(t, s.CustomerName)
	assert.Nil(t, s.GeneratedLink)
	assert.Nil(t, s.Error)
}

func TestSetFieldClearsError(t *testing.T) {
	fields := []Field{FieldCustomerName, FieldCustomerEmail, FieldAmount, FieldCurrency, FieldGateway, FieldDescription, Field("unknown")}
	s := Initial()
	for _, f := range fields {
		s = Reduce(s, SetError("boom"))
		require.NotNil(t, s.Error)
		s = Reduce(s, SetField(f, "v"))
		assert.Nil(t, s.Error, "field %s", f)
	}
	assert.Equal(t, "v", s.Description)
	assert.Equal(t, "v", s.Gateway)
}

func TestStepTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   Step
		action Action
		want   Step
	}{
		{"next from form", StepForm, NextStep(), StepConfirm},
		{"next from confirm", StepConfirm, NextStep(), StepLinkGenerated},
		{"next from terminal", StepLinkGenerated, NextStep(), StepLinkGenerated},
		{"prev from terminal", StepLinkGenerated, PrevStep(), StepConfirm},
		{"prev from confirm", StepConfirm, PrevStep(), StepForm},
		{"prev from form", StepForm, PrevStep(), StepForm},
		{"error keeps step", StepConfirm, SetError("x"), StepConfirm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Initial()
			s.Step = tt.from
			assert.Equal(t, tt.want, Reduce(s, tt.action).Step)
		})
	}
}

func TestNoOpsLeaveStateUnchanged(t *testing.T) {
	done := Reduce(filled(), SetGeneratedLink("https://pay.example.com/link/abc"))
	assert.Equal(t, done, Reduce(done, NextStep()))

	form := filled()
	assert.Equal(t, form, Reduce(form, PrevStep()))
}

func TestSetGeneratedLinkForcesTerminal(t *testing.T) {
	s := Reduce(Initial(), SetGeneratedLink("https://pay.example.com/link/abc"))
	assert.Equal(t, StepLinkGenerated, s.Step)
	require.NotNil(t, s.GeneratedLink)
	assert.Equal(t, "https://pay.example.com/link/abc", *s.GeneratedLink)
}

func TestPrevFromTerminalDropsLink(t *testing.T) {
	s := Reduce(filled(), SetGeneratedLink("https://pay.example.com/link/abc"))
	s = Reduce(s, PrevStep())
	assert.Equal(t, StepConfirm, s.Step)
	assert.Nil(t, s.GeneratedLink)
}

func TestResetFromAnyState(t *testing.T) {
	states := []State{
		Initial(),
		filled(),
		Reduce(filled(), NextStep()),
		Reduce(filled(), SetGeneratedLink("l")),
		Reduce(Dispatch(filled(), SetField(FieldCurrency, "EUR")), SetError("e")),
	}
	for _, s := range states {
		assert.Equal(t, Initial(), Reduce(s, Reset()))
	}
}

func TestReduceDoesNotAliasLink(t *testing.T) {
	a := Reduce(Initial(), SetGeneratedLink("one"))
	b := Reduce(a, PrevStep())
	require.NotNil(t, a.GeneratedLink)
	assert.Equal(t, "one", *a.GeneratedLink)
	assert.Nil(t, b.GeneratedLink)
}

func TestIsField(t *testing.T) {
	assert.True(t, IsField("customerName"))
	assert.True(t, IsField("description"))
	assert.False(t, IsField("step"))
}
