package ports

import (
	"context"
	"io"

	"go.trai.ch/nexon/internal/core/domain"
)

// BuildExecutor runs package build commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type BuildExecutor interface {
	// Execute runs the command line with the given environment.
	//
	// The env parameter contains environment variables in "KEY=VALUE" format
	// and is merged on top of the process environment.
	//
	// It returns an error if the command cannot be started or exits non-zero.
	Execute(ctx context.Context, cmd domain.BuildCommand, env []string, stdout, stderr io.Writer) error
}
