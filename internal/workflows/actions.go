package workflows

import (
	"strings"

	"github.com/azuretemplatebot/templatebot/internal/dialog"
	"github.com/azuretemplatebot/templatebot/internal/session"
)

func setNameWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDSetName,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				return dialog.Suspend(dialog.Text("Please enter a name for the deployment."))
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				name := strings.TrimSpace(in.Reply)
				if name == "" {
					c.Send("You must enter a valid string for the deployment name.")
					return dialog.Replace(IDSetName, nil)
				}
				c.Session.TemplateInfo.DeploymentName = name
				c.Success("Deployment name set to %s.", name)
				return dialog.Complete(nil)
			},
		},
	}
}

func showWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDShow,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				info := &c.Session.TemplateInfo
				c.Send("Information:")
				c.Send("    Subscription Id: %s", valueOrUnset(c.Session.Credential.SubscriptionID))
				c.Send("    Resource group: %s", valueOrUnset(c.Session.ResourceGroup.Name))
				c.Send("    Deployment name: %s", valueOrUnset(info.DeploymentName))
				c.Send("    Template generated: %t", info.Generated)
				if info.Template != nil {
					for _, name := range info.Template.Order {
						c.Send("    %s: %s", name, info.Value(name))
					}
				}
				return dialog.Complete(nil)
			},
		},
	}
}

func valueOrUnset(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

// clearWorkflow drops everything collected towards a deployment but keeps
// the credentials and login state; quitting is what resets those.
func clearWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDClear,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				c.Session.TemplateInfo.Clear()
				c.Session.ResourceGroup = session.ResourceGroup{}
				c.Send("Template and resource group selection cleared.")
				return dialog.Complete(nil)
			},
		},
	}
}
