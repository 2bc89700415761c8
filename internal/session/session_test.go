package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetReturnsTheEmptyShape(t *testing.T) {
	s := New()
	s.Credential.SubscriptionID = "sub"
	s.Credential.ClientSecret = "secret"
	s.LoggedIn = true
	s.ResourceGroup.Name = "rg"
	s.TemplateInfo.SetValue("size", "small")
	s.TemplateInfo.DeploymentName = "dep"
	s.TemplateInfo.Generated = true

	s.Reset()

	assert.Equal(t, Session{}, *s)
}

func TestCredentialClear(t *testing.T) {
	c := Credential{SubscriptionID: "a", TenantID: "b", ClientID: "c", ClientSecret: "d"}
	c.Clear()
	assert.Equal(t, Credential{}, c)
}

func TestTemplateInfoValues(t *testing.T) {
	var info TemplateInfo
	assert.Empty(t, info.Value("size"))

	info.SetValue("size", "small")
	assert.Equal(t, "small", info.Value("size"))

	info.Clear()
	assert.Empty(t, info.Value("size"))
	assert.False(t, info.Generated)
}

func TestTemplateInfoClearTemplateKeepsDeploymentName(t *testing.T) {
	var info TemplateInfo
	info.SetValue("size", "small")
	info.DeploymentName = "dep"
	info.Generated = true

	info.ClearTemplate()

	assert.Equal(t, "dep", info.DeploymentName)
	assert.Nil(t, info.Template)
	assert.Nil(t, info.Values)
	assert.False(t, info.Generated)
}

func TestStoreCreatesOnFirstUse(t *testing.T) {
	store := NewStore()

	first := store.Get("conversation-1")
	assert.Same(t, first, store.Get("conversation-1"))
	assert.NotSame(t, first, store.Get("conversation-2"))

	store.Delete("conversation-1")
	assert.NotSame(t, first, store.Get("conversation-1"))
}
