package pipeline

import (
	"github.com/sirupsen/logrus"

	"github.com/dshills/macroflow/internal/action"
	"github.com/dshills/macroflow/internal/command"
	"github.com/dshills/macroflow/internal/event"
)

// Runner executes an action list. Satisfied by *executor.Executor.
type Runner interface {
	Execute(actions []action.Action, vars command.Variables) error
}

// Pipeline turns textual events into executed actions.
type Pipeline struct {
	runner Runner
	log    *logrus.Entry
}

// New creates a pipeline over the given runner.
func New(runner Runner) *Pipeline {
	return &Pipeline{
		runner: runner,
		log:    logrus.WithField("component", "pipeline"),
	}
}

// Handle is the input-manager handler. Non-textual events pass
// through untouched. Text that matches no grammar pattern is a silent
// no-op, logged at debug only. An execution failure is logged here and
// does not propagate; prior side effects stay in place.
func (p *Pipeline) Handle(ev event.Event) {
	if !ev.Kind.IsTextual() {
		return
	}
	text := ev.Text()
	if text == "" {
		return
	}

	kind, vars := command.Parse(text)
	if kind == command.KindNone {
		p.log.WithField("text", text).Debug("no grammar match")
		return
	}

	actions := action.Generate(kind, vars)
	if len(actions) == 0 {
		return
	}

	p.log.WithFields(logrus.Fields{
		"command": kind.String(),
		"actions": len(actions),
		"device":  ev.DeviceID,
	}).Debug("executing parsed command")

	if err := p.runner.Execute(actions, vars); err != nil {
		p.log.WithFields(logrus.Fields{
			"command": kind.String(),
			"device":  ev.DeviceID,
		}).WithError(err).Error("command execution failed")
	}
}
