package workflows

import (
	"strings"

	"github.com/azuretemplatebot/templatebot/internal/dialog"
	"github.com/azuretemplatebot/templatebot/internal/gateway"
	"github.com/azuretemplatebot/templatebot/internal/session"
)

var resourceGroupActions = []string{"create", "delete", "set", "clear", "show", "quit", "exit"}

// resourceGroupWorkflow is the resource group sub-menu. It loops after
// every action except exit (back to the main menu) and quit (ends the
// conversation).
func resourceGroupWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDResourceGroup,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				return dialog.Suspend(dialog.ChoiceOf("What would you like to do with resource groups?", resourceGroupActions))
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				action, ok := dialog.ResolveChoice(in.Reply, resourceGroupActions)
				if !ok {
					c.Send("I didn't understand that.  Please choose one of the listed actions.")
					return dialog.Replace(IDResourceGroup, nil)
				}
				switch action {
				case "create":
					return dialog.Push(IDRGCreate, nil)
				case "delete":
					return dialog.Push(IDRGDelete, nil)
				case "set":
					return dialog.Push(IDRGSet, nil)
				case "clear":
					c.Session.ResourceGroup = session.ResourceGroup{}
					c.Send("Resource group selection cleared.")
					return dialog.Replace(IDResourceGroup, nil)
				case "show":
					if c.Session.ResourceGroup.Name == "" {
						c.Send("No resource group is set.")
					} else {
						c.Send("Active resource group: %s", c.Session.ResourceGroup.Name)
					}
					return dialog.Replace(IDResourceGroup, nil)
				case "quit":
					return dialog.Abort()
				default: // exit
					return dialog.Complete(nil)
				}
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				return dialog.Replace(IDResourceGroup, nil)
			},
		},
	}
}

func resourceGroupCreateWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDRGCreate,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				return dialog.Suspend(dialog.Text("Please enter a name for the resource group."))
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				name := strings.TrimSpace(in.Reply)
				if name == "" {
					c.Send("You must enter a valid string for the resource group name.")
					return dialog.Replace(IDRGCreate, nil)
				}
				c.Session.ResourceGroup.Pending = name

				exists, err := c.Gateway.CheckResourceGroupExists(c.Ctx, c.Session.Credential, name)
				if err != nil {
					c.Warn("Failed to check if resource group %s exists: %s", name, gateway.Reason(err))
					c.Session.ResourceGroup.Pending = ""
					return dialog.Complete(nil)
				}
				if exists {
					c.Send("Resource group %s already exists.", name)
					c.Session.ResourceGroup.Pending = ""
					return dialog.Complete(nil)
				}

				locations, err := c.Gateway.ListLocations(c.Ctx, c.Session.Credential)
				if err != nil {
					c.Warn("Failed to list locations: %s", gateway.Reason(err))
					c.Session.ResourceGroup.Pending = ""
					return dialog.Complete(nil)
				}
				if len(locations) == 0 {
					c.Send("No locations are available.")
					c.Session.ResourceGroup.Pending = ""
					return dialog.Complete(nil)
				}
				return dialog.Push(IDRGLocation, locations)
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				location, _ := in.Result.Value.(string)

				name := c.Session.ResourceGroup.Pending
				c.Session.ResourceGroup.Pending = ""
				if err := c.Gateway.CreateResourceGroup(c.Ctx, c.Session.Credential, name, location); err != nil {
					c.Warn("Failed to create resource group %s: %s", name, gateway.Reason(err))
					return dialog.Complete(nil)
				}
				c.Session.ResourceGroup.Name = name
				c.Success("Resource group %s created in %s.", name, location)
				return dialog.Complete(nil)
			},
		},
	}
}

// resourceGroupLocationWorkflow asks for a location out of the listed ones
// and replaces itself until the reply resolves; it completes with the
// chosen location.
func resourceGroupLocationWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDRGLocation,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				locations, _ := in.Args.([]string)
				c.PutLocal("locations", locations)
				return dialog.Suspend(dialog.ChoiceOf("Please select a location.", locations))
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				locations, _ := c.Local("locations").([]string)
				location, ok := dialog.ResolveChoice(in.Reply, locations)
				if !ok {
					c.Send("You must select one of the listed locations.")
					return dialog.Replace(IDRGLocation, locations)
				}
				return dialog.Complete(location)
			},
		},
	}
}

func resourceGroupSetWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDRGSet,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				return dialog.Suspend(dialog.Text("Please enter the name of the resource group."))
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				name := strings.TrimSpace(in.Reply)
				if name == "" {
					c.Send("You must enter a valid string for the resource group name.")
					return dialog.Replace(IDRGSet, nil)
				}
				c.Session.ResourceGroup.Pending = name

				exists, err := c.Gateway.CheckResourceGroupExists(c.Ctx, c.Session.Credential, name)
				if err != nil {
					c.Warn("Failed to check if resource group %s exists: %s", name, gateway.Reason(err))
					c.Session.ResourceGroup.Pending = ""
					return dialog.Complete(nil)
				}
				if !exists {
					c.Send("Resource group %s was not found.", name)
					c.Session.ResourceGroup.Pending = ""
					return dialog.Complete(nil)
				}

				c.Session.ResourceGroup.Name = name
				c.Session.ResourceGroup.Pending = ""
				c.Success("Active resource group set to %s.", name)
				return dialog.Complete(nil)
			},
		},
	}
}

func resourceGroupDeleteWorkflow() dialog.Workflow {
	return dialog.Workflow{
		ID: IDRGDelete,
		Steps: []dialog.Step{
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				name := c.Session.ResourceGroup.Name
				if name == "" {
					c.Send("No resource group is set.  Use 'set' or 'create' first.")
					return dialog.Complete(nil)
				}

				exists, err := c.Gateway.CheckResourceGroupExists(c.Ctx, c.Session.Credential, name)
				if err != nil {
					c.Warn("Failed to check if resource group %s exists: %s", name, gateway.Reason(err))
					return dialog.Complete(nil)
				}
				if !exists {
					c.Send("Resource group %s no longer exists.", name)
					c.Session.ResourceGroup.Name = ""
					return dialog.Complete(nil)
				}
				return dialog.Suspend(dialog.Confirmation("Are you sure you want to delete " + name + "?  This operation can take a while."))
			},
			func(c *dialog.Context, in dialog.Input) dialog.Outcome {
				confirmed, ok := dialog.ParseConfirm(in.Reply)
				if !ok {
					c.Send("Please answer yes or no.")
					return dialog.Replace(IDRGDelete, nil)
				}
				if !confirmed {
					c.Send("Delete cancelled.")
					return dialog.Complete(nil)
				}

				name := c.Session.ResourceGroup.Name
				// The active selection is cleared whether or not the remote
				// delete succeeds.
				c.Session.ResourceGroup.Name = ""
				if err := c.Gateway.DeleteResourceGroup(c.Ctx, c.Session.Credential, name); err != nil {
					c.Warn("Failed to delete resource group %s: %s", name, gateway.Reason(err))
					return dialog.Complete(nil)
				}
				c.Success("Resource group %s deleted.", name)
				return dialog.Complete(nil)
			},
		},
	}
}
