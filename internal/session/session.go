// Package session holds the mutable state of one ongoing conversation.
// Every field lives in memory only; quitting a conversation resets its
// session to the empty shape.
package session

import (
	"github.com/azuretemplatebot/templatebot/internal/template"
)

// Credential carries the service principal used for every remote call.
// It is mutated only by the credential collection workflow.
type Credential struct {
	SubscriptionID string
	TenantID       string
	ClientID       string
	ClientSecret   string
}

func (c *Credential) Clear() {
	*c = Credential{}
}

// ResourceGroup is the active resource group selection. Pending holds a name
// that has been entered but not yet committed (e.g. awaiting an existence
// check or a location choice).
type ResourceGroup struct {
	Name    string
	Pending string
}

// TemplateInfo is the fetched template descriptor plus everything collected
// towards a deployment. Generated flips to true only after every declared
// parameter has a value and the user confirmed them.
type TemplateInfo struct {
	Template       *template.Descriptor
	Schema         *template.ParameterFile
	Values         map[string]string
	DeploymentName string
	Generated      bool
}

func (t *TemplateInfo) Clear() {
	*t = TemplateInfo{}
}

// ClearTemplate drops the fetched template and the collected parameter
// values but keeps the deployment name, which survives a re-generate.
func (t *TemplateInfo) ClearTemplate() {
	t.Template = nil
	t.Schema = nil
	t.Values = nil
	t.Generated = false
}

func (t *TemplateInfo) Value(name string) string {
	return t.Values[name]
}

func (t *TemplateInfo) SetValue(name, value string) {
	if t.Values == nil {
		t.Values = map[string]string{}
	}
	t.Values[name] = value
}

// Session is the full mutable state of one conversation.
type Session struct {
	Credential    Credential
	LoggedIn      bool
	ResourceGroup ResourceGroup
	TemplateInfo  TemplateInfo
}

func New() *Session {
	return &Session{}
}

// Reset returns the session to its empty initial shape.
func (s *Session) Reset() {
	*s = Session{}
}
