package workflows

import (
	"strings"

	"github.com/google/uuid"

	"github.com/azuretemplatebot/templatebot/internal/dialog"
	"github.com/azuretemplatebot/templatebot/internal/gateway"
	"github.com/azuretemplatebot/templatebot/internal/session"
)

// credentialField describes one credential entry in its fixed declared
// order. Collection always prompts for the first empty field.
type credentialField struct {
	label string
	uuid  bool
	get   func(*session.Credential) string
	set   func(*session.Credential, string)
}

var credentialFields = []credentialField{
	{
		label: "Subscription Id",
		uuid:  true,
		get:   func(c *session.Credential) string { return c.SubscriptionID },
		set:   func(c *session.Credential, v string) { c.SubscriptionID = v },
	},
	{
		label: "Tenant Id",
		uuid:  true,
		get:   func(c *session.Credential) string { return c.TenantID },
		set:   func(c *session.Credential, v string) { c.TenantID = v },
	},
	{
		label: "Client Id",
		uuid:  true,
		get:   func(c *session.Credential) string { return c.ClientID },
		set:   func(c *session.Credential, v string) { c.ClientID = v },
	},
	{
		label: "Client Secret",
		get:   func(c *session.Credential) string { return c.ClientSecret },
		set:   func(c *session.Credential, v string) { c.ClientSecret = v },
	},
}

func firstEmptyField(s *session.Session) *credentialField {
	for i := range credentialFields {
		if credentialFields[i].get(&s.Credential) == "" {
			return &credentialFields[i]
		}
	}
	return nil
}

// validUUID accepts both the compact 32-hex-digit form and the canonical
// hyphenated form, case-insensitive.
func validUUID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}

// loginWorkflow runs the full credential flow: collect the four fields,
// confirm them, then verify against the resource API.
func loginWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDLogin,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				return dialog.Push(IDCollect, nil)
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				return dialog.Push(IDConfirmCreds, nil)
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				confirmed, _ := in.Result.Value.(bool)
				if !confirmed {
					c.Session.Credential.Clear()
					c.Session.LoggedIn = false
					c.Send("Okay, let's start over.")
					return dialog.Replace(IDLogin, nil)
				}
				return dialog.Continue(nil)
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				_, err := c.Gateway.ListResources(c.Ctx, c.Session.Credential)
				if err != nil {
					// The failing field stays populated; collection will
					// consider it already satisfied. Answering "no" at the
					// confirmation clears all four fields.
					c.Warn("Failed to verify your credentials: %s", gateway.Reason(err))
					return dialog.Replace(IDLogin, nil)
				}
				c.Session.LoggedIn = true
				c.Success("Great!  Let's get started.")
				return dialog.Complete(nil)
			},
		},
	}
}

// collectWorkflow prompts for the first empty credential field and replaces
// itself until every field is populated.
func collectWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDCollect,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				field := firstEmptyField(c.Session)
				if field == nil {
					return dialog.Complete(nil)
				}
				return dialog.Suspend(dialog.Text("Please enter your " + field.label + "."))
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				field := firstEmptyField(c.Session)
				if field == nil {
					return dialog.Complete(nil)
				}
				value := strings.TrimSpace(in.Reply)
				switch {
				case field.uuid && !validUUID(value):
					c.Send("You entered an invalid ID for %s.", field.label)
				case !field.uuid && value == "":
					c.Send("You must enter a valid string for %s.", field.label)
				default:
					field.set(&c.Session.Credential, value)
				}
				return dialog.Replace(IDCollect, nil)
			},
		},
	}
}

// confirmCredentialsWorkflow echoes the collected values and asks for a
// yes/no; it completes with the answer.
func confirmCredentialsWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDConfirmCreds,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				c.Send("Information:")
				for _, field := range credentialFields {
					c.Send("    %s: %s", field.label, field.get(&c.Session.Credential))
				}
				return dialog.Suspend(dialog.Confirmation("Are these values correct?"))
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				confirmed, ok := dialog.ParseConfirm(in.Reply)
				if !ok {
					c.Send("Please answer yes or no.")
					return dialog.Replace(IDConfirmCreds, nil)
				}
				return dialog.Complete(confirmed)
			},
		},
	}
}
