// Package workflows is the dialog catalogue: every named conversation the
// bot can run, built on the dialog stack machine.
package workflows

import (
	"github.com/azuretemplatebot/templatebot/internal/dialog"
	"github.com/azuretemplatebot/templatebot/internal/gateway"
	"github.com/azuretemplatebot/templatebot/internal/session"
)

const (
	IDRoot          dialog.WorkflowID = "/"
	IDLogin         dialog.WorkflowID = "/login"
	IDCollect       dialog.WorkflowID = "/login/collect"
	IDConfirmCreds  dialog.WorkflowID = "/login/confirm"
	IDMenu          dialog.WorkflowID = "/menu"
	IDGenerate      dialog.WorkflowID = "/generate"
	IDParams        dialog.WorkflowID = "/generate/params"
	IDConfirmParams dialog.WorkflowID = "/generate/confirm"
	IDSetName       dialog.WorkflowID = "/name"
	IDShow          dialog.WorkflowID = "/show"
	IDClear         dialog.WorkflowID = "/clear"
	IDDeploy        dialog.WorkflowID = "/deploy"
	IDValidate      dialog.WorkflowID = "/validate"
	IDResourceGroup dialog.WorkflowID = "/rg"
	IDRGCreate      dialog.WorkflowID = "/rg/create"
	IDRGLocation    dialog.WorkflowID = "/rg/create/location"
	IDRGDelete      dialog.WorkflowID = "/rg/delete"
	IDRGSet         dialog.WorkflowID = "/rg/set"
)

const farewell = "Come back anytime!"

// Registry builds the full workflow catalogue.
func Registry() dialog.Registry {
	registry := dialog.Registry{}
	for _, workflow := range []dialog.Workflow{
		rootWorkflow(),
		loginWorkflow(),
		collectWorkflow(),
		confirmCredentialsWorkflow(),
		menuWorkflow(),
		generateWorkflow(),
		paramsWorkflow(),
		confirmParamsWorkflow(),
		setNameWorkflow(),
		showWorkflow(),
		clearWorkflow(),
		deployWorkflow(),
		validateWorkflow(),
		resourceGroupWorkflow(),
		resourceGroupCreateWorkflow(),
		resourceGroupLocationWorkflow(),
		resourceGroupDeleteWorkflow(),
		resourceGroupSetWorkflow(),
	} {
		registry[workflow.ID] = workflow
	}
	return registry
}

// NewMachine wires a machine over the full catalogue for one conversation.
func NewMachine(sess *session.Session, gw gateway.Gateway) *dialog.Machine {
	m := dialog.NewMachine(Registry(), sess, gw)
	m.AbortMessage = farewell
	return m
}

func rootWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDRoot,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				c.Session.Reset()
				c.Send("Welcome!  You can end the process at anytime by typing 'quit'")
				return dialog.Push(IDLogin, nil)
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				return dialog.Push(IDMenu, nil)
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				return dialog.Complete(nil)
			},
		},
	}
}
