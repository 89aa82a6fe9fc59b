package paymentlink

import (
	"regexp"
	"testing"
	"time"

	"officedesk/internal/clock"
	"officedesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func aliceForm() Form {
	return Form{CustomerName: "Alice", CustomerEmail: "alice@x.com", Amount: "100"}
}

func TestIssuerIssue(t *testing.T) {
	issuer := NewIssuer("https://pay.example.com/", clock.NewManual(issuedAt))

	link, err := issuer.Issue(aliceForm(), Identity{ID: "u1", Name: "Sam Seller"})
	require.NoError(t, err)

	assert.Equal(t, 100.0, link.Amount)
	assert.Equal(t, models.LinkActive, link.Status)
	assert.Regexp(t, regexp.MustCompile(`^https://pay\.example\.com/link/[a-z0-9]{12}$`), link.Link)
	assert.Equal(t, "https://pay.example.com/link/"+link.ShortID, link.Link)
	assert.Regexp(t, regexp.MustCompile(`^cust_[0-9a-f]{8}$`), link.CustomerID)
	assert.NotEmpty(t, link.ID)
	assert.Equal(t, "USD", link.Currency)
	assert.Equal(t, "stripe", link.Gateway)
	assert.Equal(t, "u1", link.CreatedBy)
	assert.Equal(t, "Sam Seller", link.CreatedByName)
	assert.Equal(t, issuedAt, link.CreatedAt)
}

func TestIssuerFreshIdentifiers(t *testing.T) {
	issuer := NewIssuer("https://pay.example.com", nil)
	a, err := issuer.Issue(aliceForm(), Identity{ID: "u1"})
	require.NoError(t, err)
	b, err := issuer.Issue(aliceForm(), Identity{ID: "u1"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.ShortID, b.ShortID)
}

func TestIssuerRejectsBadAmount(t *testing.T) {
	form := aliceForm()
	form.Amount = "-5"
	_, err := NewIssuer("https://pay.example.com", nil).Issue(form, Identity{ID: "u1"})
	assert.Error(t, err)
}
