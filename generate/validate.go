package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cvg/common"
	"cvg/content"
	"cvg/state"
)

// Validate parses and validates a CV file without rendering anything.
func Validate(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("validate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input CV has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open CV source: %w", err)
	}
	defer file.Close()

	c, err := content.Prepare(ctx, file, filepath.Base(src), common.OutputFmtPdf, log)
	if err != nil {
		return fmt.Errorf("CV source (%s) is not valid: %w", src, err)
	}

	var roles int
	for _, company := range c.Doc.Experience.Companies {
		roles += len(company.Roles)
	}
	log.Info("CV source is valid",
		zap.String("file", src),
		zap.String("candidate", c.Doc.Candidate.Name),
		zap.Int("skill_groups", len(c.Doc.TechnicalSkills)),
		zap.Int("companies", len(c.Doc.Experience.Companies)),
		zap.Int("roles", roles),
		zap.Int("projects", len(c.Doc.Projects)))
	return nil
}
