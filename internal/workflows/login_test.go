package workflows

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azuretemplatebot/templatebot/internal/dialog"
	"github.com/azuretemplatebot/templatebot/internal/session"
)

const (
	testSubscriptionID = "01234567-89ab-cdef-0123-456789abcdef"
	testTenantID       = "0123456789abcdef0123456789abcdef"
	testClientID       = "ABCDEF01-2345-6789-ABCD-EF0123456789"
)

func TestUUIDValidator(t *testing.T) {
	var tests = []struct {
		value    string
		expected bool
	}{
		{"0123456789abcdef0123456789abcdef", true},
		{"01234567-89ab-cdef-0123-456789abcdef", true},
		{"01234567-89AB-CDEF-0123-456789ABCDEF", true},
		{"not-a-uuid", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.expected, validUUID(tc.value))
		})
	}
}

func TestLoginCollectsFieldsInDeclaredOrder(t *testing.T) {
	sess := session.New()
	gw := &fakeGateway{}
	machine, turn := startAt(t, sess, gw, IDLogin)

	require.NotNil(t, turn.Prompt)
	assert.Equal(t, "Please enter your Subscription Id.", turn.Prompt.Text)

	turn = resume(t, machine, testSubscriptionID)
	assert.Equal(t, "Please enter your Tenant Id.", turn.Prompt.Text)

	turn = resume(t, machine, testTenantID)
	assert.Equal(t, "Please enter your Client Id.", turn.Prompt.Text)

	turn = resume(t, machine, testClientID)
	assert.Equal(t, "Please enter your Client Secret.", turn.Prompt.Text)

	turn = resume(t, machine, "s3cret")
	assert.Contains(t, turn.Texts(), "Information:")
	assert.Contains(t, turn.Texts(), "    Subscription Id: "+testSubscriptionID)
	assert.Equal(t, "Are these values correct?", turn.Prompt.Text)

	turn = resume(t, machine, "yes")
	assert.True(t, turn.Done)
	assert.True(t, sess.LoggedIn)
	assert.Contains(t, turn.Texts(), "Great!  Let's get started.")
	assert.Equal(t, dialog.LevelSuccess, levelOf(t, turn, "Great!  Let's get started."))
	assert.Equal(t, []string{"ListResources"}, gw.calls)
}

func TestLoginSkipsPopulatedFields(t *testing.T) {
	sess := session.New()
	sess.Credential.TenantID = testTenantID
	machine, turn := startAt(t, sess, &fakeGateway{}, IDLogin)

	assert.Equal(t, "Please enter your Subscription Id.", turn.Prompt.Text)
	turn = resume(t, machine, testSubscriptionID)
	// Tenant Id already holds a value, so collection moves straight on.
	assert.Equal(t, "Please enter your Client Id.", turn.Prompt.Text)
}

func TestLoginRejectsInvalidUUIDAndRepromptsSameField(t *testing.T) {
	sess := session.New()
	machine, _ := startAt(t, sess, &fakeGateway{}, IDLogin)

	turn := resume(t, machine, "not-a-uuid")
	assert.Contains(t, turn.Texts(), "You entered an invalid ID for Subscription Id.")
	assert.Equal(t, "Please enter your Subscription Id.", turn.Prompt.Text)
	assert.Empty(t, sess.Credential.SubscriptionID)
}

func TestLoginRejectsEmptySecret(t *testing.T) {
	sess := session.New()
	sess.Credential.SubscriptionID = testSubscriptionID
	sess.Credential.TenantID = testTenantID
	sess.Credential.ClientID = testClientID
	machine, turn := startAt(t, sess, &fakeGateway{}, IDLogin)

	assert.Equal(t, "Please enter your Client Secret.", turn.Prompt.Text)
	turn = resume(t, machine, "   ")
	assert.Contains(t, turn.Texts(), "You must enter a valid string for Client Secret.")
	assert.Equal(t, "Please enter your Client Secret.", turn.Prompt.Text)
}

func TestDecliningConfirmationClearsAllFields(t *testing.T) {
	sess := session.New()
	sess.Credential = session.Credential{
		SubscriptionID: testSubscriptionID,
		TenantID:       testTenantID,
		ClientID:       testClientID,
		ClientSecret:   "s3cret",
	}
	machine, turn := startAt(t, sess, &fakeGateway{}, IDLogin)

	assert.Equal(t, "Are these values correct?", turn.Prompt.Text)
	turn = resume(t, machine, "no")
	assert.Equal(t, session.Credential{}, sess.Credential)
	assert.Equal(t, "Please enter your Subscription Id.", turn.Prompt.Text)
}

func TestFailedVerificationLeavesLoggedOutAndReentersCollection(t *testing.T) {
	sess := session.New()
	sess.Credential = session.Credential{
		SubscriptionID: testSubscriptionID,
		TenantID:       testTenantID,
		ClientID:       testClientID,
		ClientSecret:   "s3cret",
	}
	gw := &fakeGateway{listResourcesErr: errors.New("AuthorizationFailed")}
	machine, turn := startAt(t, sess, gw, IDLogin)

	turn = resume(t, machine, "yes")
	assert.False(t, sess.LoggedIn)
	assert.Contains(t, turn.Texts(), "Failed to verify your credentials: AuthorizationFailed")
	assert.Equal(t, dialog.LevelWarning, levelOf(t, turn, "Failed to verify your credentials: AuthorizationFailed"))
	// Fields stay populated, so collection falls straight through to the
	// confirmation again.
	assert.Equal(t, "Are these values correct?", turn.Prompt.Text)
	assert.Equal(t, testSubscriptionID, sess.Credential.SubscriptionID)
}

func TestAbortAtAnyPromptResetsSession(t *testing.T) {
	sess := session.New()
	machine, _ := startAt(t, sess, &fakeGateway{}, IDLogin)

	turn := resume(t, machine, testSubscriptionID)
	require.NotNil(t, turn.Prompt)

	turn = resume(t, machine, " QUIT ")
	assert.True(t, turn.Done)
	assert.Contains(t, turn.Texts(), "Come back anytime!")
	assert.Equal(t, session.Session{}, *sess)
}
