package dialog

// WorkflowID names one dialog in the catalogue. The set is closed: the
// registry passed to the machine is built once at startup and never grows.
type WorkflowID string

// Workflow is a named, ordered sequence of steps.
type Workflow struct {
	ID    WorkflowID
	Steps []Step
}

// Registry maps every workflow the machine can run.
type Registry map[WorkflowID]Workflow

// Step is one unit of workflow execution. It receives the session through
// the context and exactly one input (initial args, a user reply, or a child
// result) and returns a single outcome. A step may call remote operations
// and mutate session state, but must not combine more than one of suspend,
// push and complete.
type Step func(c *Context, in Input) Outcome

// Input carries whatever resumed the step: Args on the first step of an
// invocation, Reply after a prompt, Result after a child workflow completed.
type Input struct {
	Args    any
	Reply   string
	IsReply bool
	Result  *Result
}

// Result is the payload a completed workflow hands back to its caller.
type Result struct {
	Aborted bool
	Value   any
}

type outcomeKind int

const (
	outcomeSuspend outcomeKind = iota
	outcomePush
	outcomeReplace
	outcomeContinue
	outcomeComplete
	outcomeAbort
)

// Outcome is the tagged result of a step: suspend on a prompt, push a child
// workflow, replace the current invocation, continue to the next step, or
// complete the current workflow.
type Outcome struct {
	kind   outcomeKind
	prompt Prompt
	id     WorkflowID
	args   any
	result Result
}

// Suspend pauses the conversation on a prompt. The next inbound reply is
// delivered to the following step of the same invocation.
func Suspend(p Prompt) Outcome {
	return Outcome{kind: outcomeSuspend, prompt: p}
}

// Push begins a child workflow on top of the stack. Its completion result
// is delivered to this invocation's next step.
func Push(id WorkflowID, args any) Outcome {
	return Outcome{kind: outcomePush, id: id, args: args}
}

// Replace pops the current invocation and pushes a fresh one in its place;
// the stack does not grow. Used for repeat-until-done loops.
func Replace(id WorkflowID, args any) Outcome {
	return Outcome{kind: outcomeReplace, id: id, args: args}
}

// Continue advances to the next step of the same invocation, passing value
// as its result input.
func Continue(value any) Outcome {
	return Outcome{kind: outcomeContinue, result: Result{Value: value}}
}

// Complete pops the current invocation; the parent resumes at its next step
// with value as the child result. An empty stack ends the conversation.
func Complete(value any) Outcome {
	return Outcome{kind: outcomeComplete, result: Result{Value: value}}
}

// Abort unwinds the entire stack and resets the session to its empty shape,
// ending the conversation. Equivalent to the user sending the abort token.
func Abort() Outcome {
	return Outcome{kind: outcomeAbort}
}
