package workflows

import (
	"strings"

	"github.com/azuretemplatebot/templatebot/internal/dialog"
	"github.com/azuretemplatebot/templatebot/internal/gateway"
	"github.com/azuretemplatebot/templatebot/internal/template"
)

// generateWorkflow fetches the template body and its parameter schema from
// a repository URL, collects parameter values, and marks the template
// generated once the user confirms them. Any fetch failure leaves the
// template record empty.
func generateWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDGenerate,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				c.Session.TemplateInfo.ClearTemplate()
				return dialog.Suspend(dialog.Text("Please enter the URL of the repository containing the template."))
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				base := strings.TrimSpace(in.Reply)
				if base == "" {
					c.Send("You must enter a valid URL.")
					return dialog.Replace(IDGenerate, nil)
				}

				body, err := c.Gateway.FetchURL(c.Ctx, template.JoinURL(base, template.BodyFileName))
				if err != nil {
					c.Warn("Failed to fetch the template: %s", gateway.Reason(err))
					return dialog.Complete(nil)
				}
				descriptor, err := template.ParseDescriptor(body)
				if err != nil {
					c.Warn("Failed to read the template: %v", err)
					return dialog.Complete(nil)
				}

				parameters, err := c.Gateway.FetchURL(c.Ctx, template.JoinURL(base, template.ParameterFileName))
				if err != nil {
					c.Warn("Failed to fetch the template parameters: %s", gateway.Reason(err))
					return dialog.Complete(nil)
				}
				file, err := template.ParseParameterFile(parameters)
				if err != nil {
					c.Warn("Failed to read the template parameters: %v", err)
					return dialog.Complete(nil)
				}

				c.Session.TemplateInfo.Template = descriptor
				c.Session.TemplateInfo.Schema = file
				return dialog.Push(IDParams, nil)
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				return dialog.Push(IDConfirmParams, nil)
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				confirmed, _ := in.Result.Value.(bool)
				if !confirmed {
					c.Session.TemplateInfo.Clear()
					c.Send("Template cleared.")
					return dialog.Complete(nil)
				}
				c.Session.TemplateInfo.Generated = true
				c.Success("Template generated.  Use 'deploy' to deploy it.")
				return dialog.Complete(nil)
			},
		},
	}
}

// nextParameter returns the first declared parameter without a value yet.
func nextParameter(c *dialog.Context) string {
	info := &c.Session.TemplateInfo
	if info.Template == nil {
		return ""
	}
	for _, name := range info.Template.Order {
		if info.Value(name) == "" {
			return name
		}
	}
	return ""
}

// paramsWorkflow collects one parameter per round-trip, as a choice when
// the definition declares allowed values and as free text otherwise.
func paramsWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDParams,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				name := nextParameter(c)
				if name == "" {
					return dialog.Complete(nil)
				}
				definition := c.Session.TemplateInfo.Template.Parameters[name]
				if len(definition.AllowedValues) > 0 {
					return dialog.Suspend(dialog.ChoiceOf("Please select a value for "+name+".", definition.AllowedLabels()))
				}
				return dialog.Suspend(dialog.Text("Please enter a value for " + name + "."))
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				name := nextParameter(c)
				if name == "" {
					return dialog.Complete(nil)
				}
				definition := c.Session.TemplateInfo.Template.Parameters[name]
				if len(definition.AllowedValues) > 0 {
					label, ok := dialog.ResolveChoice(in.Reply, definition.AllowedLabels())
					if !ok {
						c.Send("You must select one of the allowed values for %s.", name)
					} else {
						c.Session.TemplateInfo.SetValue(name, label)
					}
				} else {
					value := strings.TrimSpace(in.Reply)
					if value == "" {
						c.Send("You must enter a valid value for %s.", name)
					} else {
						c.Session.TemplateInfo.SetValue(name, value)
					}
				}
				return dialog.Replace(IDParams, nil)
			},
		},
	}
}

// confirmParamsWorkflow echoes every collected value and completes with the
// user's yes/no.
func confirmParamsWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDConfirmParams,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				info := &c.Session.TemplateInfo
				c.Send("Information:")
				if info.Template != nil {
					for _, name := range info.Template.Order {
						c.Send("    %s: %s", name, info.Value(name))
					}
				}
				return dialog.Suspend(dialog.Confirmation("Are these values correct?"))
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				confirmed, ok := dialog.ParseConfirm(in.Reply)
				if !ok {
					c.Send("Please answer yes or no.")
					return dialog.Replace(IDConfirmParams, nil)
				}
				return dialog.Complete(confirmed)
			},
		},
	}
}
