package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azuretemplatebot/templatebot/internal/dialog"
	"github.com/azuretemplatebot/templatebot/internal/session"
)

func TestRootWelcomesAndStartsLogin(t *testing.T) {
	sess := session.New()
	_, turn := startAt(t, sess, &fakeGateway{}, IDRoot)

	assert.Contains(t, turn.Texts(), "Welcome!  You can end the process at anytime by typing 'quit'")
	require.NotNil(t, turn.Prompt)
	assert.Equal(t, "Please enter your Subscription Id.", turn.Prompt.Text)
}

func TestRootReachesMenuAfterLogin(t *testing.T) {
	sess := session.New()
	machine, _ := startAt(t, sess, &fakeGateway{}, IDRoot)

	resume(t, machine, testSubscriptionID)
	resume(t, machine, testTenantID)
	resume(t, machine, testClientID)
	resume(t, machine, "s3cret")
	turn := resume(t, machine, "yes")

	assert.True(t, sess.LoggedIn)
	require.NotNil(t, turn.Prompt)
	assert.Equal(t, dialog.Choice, turn.Prompt.Kind)
	assert.Contains(t, turn.Prompt.Options, "deploy")
}
