package workflows

import (
	"github.com/azuretemplatebot/templatebot/internal/dialog"
)

// menuAction is one top-level action with its declared preconditions. The
// menu is the single enforcement point for cross-workflow preconditions:
// the invoked workflows assume they already hold.
type menuAction struct {
	label                 string
	id                    dialog.WorkflowID
	requiresGenerate      bool
	requiresResourceGroup bool
	requiresName          bool
}

var menuActions = []menuAction{
	{label: "generate", id: IDGenerate},
	{label: "show", id: IDShow},
	{label: "deploy", id: IDDeploy, requiresGenerate: true, requiresResourceGroup: true, requiresName: true},
	{label: "verify", id: IDValidate, requiresGenerate: true, requiresResourceGroup: true, requiresName: true},
	{label: "set resource group", id: IDResourceGroup},
	{label: "set name", id: IDSetName},
	{label: "clear", id: IDClear},
	{label: "quit"},
}

func menuLabels() []string {
	labels := make([]string, 0, len(menuActions))
	for _, action := range menuActions {
		labels = append(labels, action.label)
	}
	return labels
}

func menuWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDMenu,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				return dialog.Suspend(dialog.ChoiceOf("What would you like to do?", menuLabels()))
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				label, ok := dialog.ResolveChoice(in.Reply, menuLabels())
				if !ok {
					c.Send("I didn't understand that.  Please choose one of the listed actions.")
					return dialog.Replace(IDMenu, nil)
				}
				if label == "quit" {
					// Reachable when quit is picked by index; the literal
					// token is intercepted as the global abort.
					return dialog.Abort()
				}

				var action menuAction
				for _, candidate := range menuActions {
					if candidate.label == label {
						action = candidate
						break
					}
				}
				switch {
				case action.requiresGenerate && !c.Session.TemplateInfo.Generated:
					c.Send("You must generate a template before you can %s.", label)
					return dialog.Replace(IDMenu, nil)
				case action.requiresResourceGroup && c.Session.ResourceGroup.Name == "":
					c.Send("You must set a resource group before you can %s.", label)
					return dialog.Replace(IDMenu, nil)
				case action.requiresName && c.Session.TemplateInfo.DeploymentName == "":
					c.Send("You must set a deployment name before you can %s.", label)
					return dialog.Replace(IDMenu, nil)
				}
				return dialog.Push(action.id, nil)
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				return dialog.Replace(IDMenu, nil)
			},
		},
	}
}
