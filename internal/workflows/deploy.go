package workflows

import (
	"github.com/azuretemplatebot/templatebot/internal/dialog"
	"github.com/azuretemplatebot/templatebot/internal/gateway"
	"github.com/azuretemplatebot/templatebot/internal/template"
)

// deployWorkflow and validateWorkflow assume the menu already enforced
// their preconditions: a generated template, an active resource group and a
// deployment name.

func deployWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDDeploy,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				info := &c.Session.TemplateInfo
				payload := template.BuildPayload(info.Template, info.Schema, info.Values)
				err := c.Gateway.CreateOrUpdateDeployment(c.Ctx, c.Session.Credential, c.Session.ResourceGroup.Name, info.DeploymentName, payload)
				if err != nil {
					c.Warn("Deployment failed: %s", gateway.Reason(err))
					return dialog.Complete(nil)
				}
				c.Success("Deployment %s succeeded in resource group %s.", info.DeploymentName, c.Session.ResourceGroup.Name)
				return dialog.Complete(nil)
			},
		},
	}
}

func validateWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDValidate,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				info := &c.Session.TemplateInfo
				payload := template.BuildPayload(info.Template, info.Schema, info.Values)
				err := c.Gateway.ValidateDeployment(c.Ctx, c.Session.Credential, c.Session.ResourceGroup.Name, info.DeploymentName, payload)
				if err != nil {
					c.Warn("Template validation failed: %s", gateway.Reason(err))
					return dialog.Complete(nil)
				}
				c.Success("Template is valid.")
				return dialog.Complete(nil)
			},
		},
	}
}
