package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
	apperrors "github.com/yanqian/styling-advisor/pkg/errors"
)

// Application is the wired runtime the commands drive.
type Application interface {
	Run(ctx context.Context) error
	Advisor() styling.Service
}

// Factory builds the application on demand, so help output needs no configuration.
type Factory func() (Application, error)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// NewRootCommand assembles the command tree.
func NewRootCommand(factory Factory, logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "styling-advisor",
		Short: "Personal styling advisor",
		Long: `styling-advisor classifies body measurements into a size and shape profile and
composes color, print, weather and occasion advice. Run it as an HTTP service
or use the recommend, wizard and history commands directly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			info := commandContext{
				correlationID: uuid.New(),
				startedAt:     time.Now(),
			}
			cmd.SetContext(context.WithValue(cmd.Context(), commandContextKey{}, info))
			logger.Info("command start",
				"command", cmd.CommandPath(),
				"correlation_id", info.correlationID.String(),
			)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
			if !ok {
				return
			}
			logger.Info("command end",
				"command", cmd.CommandPath(),
				"correlation_id", info.correlationID.String(),
				"duration_ms", time.Since(info.startedAt).Milliseconds(),
			)
		},
	}

	root.AddCommand(
		newServeCommand(factory),
		newRecommendCommand(factory),
		newWizardCommand(factory),
		newHistoryCommand(factory),
	)
	return root
}

// PrintError writes err with its error kind, e.g. "error [invalid_measurement]: waist is required".
func PrintError(w io.Writer, err error) {
	if code := apperrors.CodeOf(err); code != "" {
		fmt.Fprintf(w, "error [%s]: %s\n", code, err)
		return
	}
	fmt.Fprintf(w, "error: %s\n", err)
}

func advisorFrom(factory Factory) (styling.Service, error) {
	app, err := factory()
	if err != nil {
		return nil, fmt.Errorf("initialize application: %w", err)
	}
	return app.Advisor(), nil
}
