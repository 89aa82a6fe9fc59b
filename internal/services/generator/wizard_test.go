package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance(t *testing.T) {
	calls := 0
	issue := func(s State) (string, error) {
		calls++
		return "https://pay.example.com/link/abcdefghijkl", nil
	}

	s := Advance(filled(), issue)
	assert.Equal(t, StepConfirm, s.Step)
	assert.Equal(t, 0, calls)

	s = Advance(s, issue)
	assert.Equal(t, StepLinkGenerated, s.Step)
	require.NotNil(t, s.GeneratedLink)
	assert.Equal(t, 1, calls)

	again := Advance(s, issue)
	assert.Equal(t, s, again)
	assert.Equal(t, 1, calls)
}

func TestAdvanceValidationFailureKeepsStep(t *testing.T) {
	for _, amount := range []string{"-5", ""} {
		s := Dispatch(filled(), SetField(FieldAmount, amount))
		out := Advance(s, func(State) (string, error) {
			t.Fatal("issue must not be called")
			return "", nil
		})
		assert.Equal(t, StepForm, out.Step)
		require.NotNil(t, out.Error)
		assert.Equal(t, MsgAmountRequired, *out.Error)
	}
}

func TestAdvanceRevalidatesOnConfirm(t *testing.T) {
	s := Reduce(filled(), NextStep())
	s = Reduce(s, SetField(FieldCustomerName, ""))
	out := Advance(s, func(State) (string, error) { return "x", nil })
	assert.Equal(t, StepConfirm, out.Step)
	require.NotNil(t, out.Error)
	assert.Equal(t, MsgNameRequired, *out.Error)
}

func TestAdvanceIssueFailure(t *testing.T) {
	s := Reduce(filled(), NextStep())
	out := Advance(s, func(State) (string, error) { return "", errors.New("store offline") })
	assert.Equal(t, StepConfirm, out.Step)
	assert.Nil(t, out.GeneratedLink)
	require.NotNil(t, out.Error)
	assert.Equal(t, "store offline", *out.Error)
}
