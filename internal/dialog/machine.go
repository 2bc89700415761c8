// Package dialog implements the conversational workflow engine: a stack of
// resumable workflow invocations driven one user reply at a time. A step
// runs to its next suspension, child push or completion; a suspended
// conversation is pure session state holding no resources.
package dialog

import (
	"context"
	"errors"
	"fmt"

	"github.com/azuretemplatebot/templatebot/internal/gateway"
	"github.com/azuretemplatebot/templatebot/internal/session"
)

var (
	ErrNoPendingPrompt    = errors.New("no prompt is pending")
	ErrConversationActive = errors.New("conversation already active")
)

// frame is one active invocation: which workflow, which step runs next, and
// locals scoped to this invocation.
type frame struct {
	id     WorkflowID
	step   int
	locals map[string]any
}

// Level classifies an outbound line so the transport can pick a renderer.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelSuccess
)

// Message is one outbound line with its level.
type Message struct {
	Level Level
	Text  string
}

// Turn is everything one machine run produced: outbound lines, the pending
// prompt (nil when none), and whether the conversation is over.
type Turn struct {
	Messages []Message
	Prompt   *Prompt
	Done     bool
}

// Texts returns the outbound lines without their levels.
func (t *Turn) Texts() []string {
	texts := make([]string, 0, len(t.Messages))
	for _, m := range t.Messages {
		texts = append(texts, m.Text)
	}
	return texts
}

// Context is handed to every step.
type Context struct {
	Ctx     context.Context
	Session *session.Session
	Gateway gateway.Gateway

	send  func(Message)
	frame *frame
}

// Send queues an outbound line for the user.
func (c *Context) Send(format string, args ...any) {
	c.send(Message{Level: LevelInfo, Text: fmt.Sprintf(format, args...)})
}

// Warn queues an outbound line reporting a failure the conversation
// survives, such as a rejected remote call.
func (c *Context) Warn(format string, args ...any) {
	c.send(Message{Level: LevelWarning, Text: fmt.Sprintf(format, args...)})
}

// Success queues an outbound line confirming a completed operation.
func (c *Context) Success(format string, args ...any) {
	c.send(Message{Level: LevelSuccess, Text: fmt.Sprintf(format, args...)})
}

// PutLocal stores a value scoped to the current invocation; it is discarded
// when the invocation completes or replaces itself.
func (c *Context) PutLocal(key string, value any) {
	if c.frame.locals == nil {
		c.frame.locals = map[string]any{}
	}
	c.frame.locals[key] = value
}

func (c *Context) Local(key string) any {
	return c.frame.locals[key]
}

// Machine runs one conversation. It owns the invocation stack and the
// pending prompt; the session, gateway and registry are injected.
type Machine struct {
	// AbortMessage is sent when the abort token unwinds the stack.
	AbortMessage string

	registry Registry
	session  *session.Session
	gateway  gateway.Gateway
	stack    []frame
	pending  *Prompt
}

func NewMachine(registry Registry, sess *session.Session, gw gateway.Gateway) *Machine {
	return &Machine{
		registry: registry,
		session:  sess,
		gateway:  gw,
	}
}

// Start pushes the given workflow and runs until the conversation suspends
// on a prompt or the stack empties.
func (m *Machine) Start(ctx context.Context, id WorkflowID, args any) (*Turn, error) {
	if len(m.stack) > 0 || m.pending != nil {
		return nil, ErrConversationActive
	}
	m.stack = append(m.stack, frame{id: id})

	turn := &Turn{}
	if err := m.run(ctx, turn, Input{Args: args}); err != nil {
		return nil, err
	}
	return turn, nil
}

// Resume delivers a user reply to the suspended conversation. A reply equal
// to the abort token unwinds the entire stack and resets the session to its
// empty shape; any other reply is handed to the step following the one that
// issued the pending prompt.
func (m *Machine) Resume(ctx context.Context, reply string) (*Turn, error) {
	if m.pending == nil {
		return nil, ErrNoPendingPrompt
	}
	m.pending = nil

	turn := &Turn{}
	if IsAbort(reply) {
		m.abort(turn)
		return turn, nil
	}

	m.stack[len(m.stack)-1].step++
	if err := m.run(ctx, turn, Input{Reply: reply, IsReply: true}); err != nil {
		return nil, err
	}
	return turn, nil
}

// Suspended reports whether the machine is waiting for a reply.
func (m *Machine) Suspended() bool {
	return m.pending != nil
}

func (m *Machine) run(ctx context.Context, turn *Turn, in Input) error {
	c := &Context{
		Ctx:     ctx,
		Session: m.session,
		Gateway: m.gateway,
		send: func(m Message) {
			turn.Messages = append(turn.Messages, m)
		},
	}

	for {
		if len(m.stack) == 0 {
			turn.Done = true
			return nil
		}

		top := &m.stack[len(m.stack)-1]
		workflow, ok := m.registry[top.id]
		if !ok {
			return fmt.Errorf("unknown workflow: %s", top.id)
		}
		if top.step >= len(workflow.Steps) {
			// Falling off the end completes with an empty result.
			m.pop()
			in = Input{Result: &Result{}}
			continue
		}

		c.frame = top
		out := workflow.Steps[top.step](c, in)

		switch out.kind {
		case outcomeSuspend:
			prompt := out.prompt
			m.pending = &prompt
			turn.Prompt = &prompt
			return nil
		case outcomePush:
			m.stack = append(m.stack, frame{id: out.id})
			in = Input{Args: out.args}
		case outcomeReplace:
			m.stack[len(m.stack)-1] = frame{id: out.id}
			in = Input{Args: out.args}
		case outcomeContinue:
			top.step++
			result := out.result
			in = Input{Result: &result}
		case outcomeComplete:
			m.pop()
			result := out.result
			in = Input{Result: &result}
		case outcomeAbort:
			m.abort(turn)
			return nil
		}
	}
}

// abort unwinds every invocation and resets the session.
func (m *Machine) abort(turn *Turn) {
	m.stack = nil
	m.session.Reset()
	if m.AbortMessage != "" {
		turn.Messages = append(turn.Messages, Message{Level: LevelInfo, Text: m.AbortMessage})
	}
	turn.Done = true
}

// pop removes the top invocation and positions the parent, if any, at its
// next step.
func (m *Machine) pop() {
	m.stack = m.stack[:len(m.stack)-1]
	if len(m.stack) > 0 {
		m.stack[len(m.stack)-1].step++
	}
}
