package shell

import (
	"context"
	"strings"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/DanielSiepmann/Surf/pkg/surf/application/model"
	"github.com/DanielSiepmann/Surf/pkg/surf/application/service"
	"github.com/DanielSiepmann/Surf/pkg/surf/infrastructure/command"
)

// NewLocalShellExecutor returns an Executor running commands on the local
// shell. The node's host is ignored, remote transports plug in behind the
// same interface.
func NewLocalShellExecutor(logger applogger.Logger, runner command.Runner) *LocalShellExecutor {
	return &LocalShellExecutor{
		logger: logger,
		runner: runner,
	}
}

type LocalShellExecutor struct {
	logger applogger.Logger
	runner command.Runner

	simulated []service.Command
}

func (e *LocalShellExecutor) Query(ctx context.Context, node model.Node, cmd service.Command) (string, error) {
	output, err := e.runner.Execute(ctx, toRunnerCommand(cmd))
	if err != nil {
		return "", model.ShellExecutionError{Command: commandLine(cmd), Err: err}
	}
	return output, nil
}

func (e *LocalShellExecutor) ActOrSimulate(ctx context.Context, node model.Node, deployment model.Deployment, cmd service.Command) error {
	if deployment.DryRun {
		e.logger.Debug("dry run, recording command: " + commandLine(cmd))
		e.simulated = append(e.simulated, cmd)
		return nil
	}
	_, err := e.runner.Execute(ctx, toRunnerCommand(cmd))
	if err != nil {
		return model.ShellExecutionError{Command: commandLine(cmd), Err: err}
	}
	return nil
}

// Simulated returns the commands recorded instead of executed during dry
// runs, in submission order.
func (e *LocalShellExecutor) Simulated() []service.Command {
	return e.simulated
}

func toRunnerCommand(cmd service.Command) command.Command {
	return command.Command{
		Executable: cmd.Executable,
		Args:       cmd.Args,
	}
}

func commandLine(cmd service.Command) string {
	return strings.Join(append([]string{cmd.Executable}, cmd.Args...), " ")
}
