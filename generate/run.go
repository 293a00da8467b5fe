// Package generate drives a complete render pass: parse and validate the CV,
// score content density, resolve theme and page geometry and draw the
// document with the selected template into the requested output formats.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cvg/common"
	"cvg/content"
	"cvg/layout"
	"cvg/render/docx"
	"cvg/render/pdf"
	"cvg/render/templates"
	"cvg/state"
	"cvg/utils/images"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input CV has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format, err := common.ParseOutputFmt(cmd.String("to"))
	if err != nil {
		log.Warn("Unknown output format requested, switching to pdf", zap.Error(err))
		format = common.OutputFmtPdf
	}

	env.Overwrite = cmd.Bool("overwrite")
	env.OutputDir = dst
	env.Template = cmd.String("template")
	env.PicturePath = cmd.String("picture")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return renderCV(ctx, src, format, cmd.Bool("preview"), log)
}

// renderCV processes a single CV file end to end and writes every requested
// output format next to each other under the destination directory.
func renderCV(ctx context.Context, src string, format common.OutputFmt, preview bool, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	log.Info("Render starting", zap.String("from", src))
	defer func(start time.Time) {
		// NOTE: some of golang graphic processing libraries are not mature
		// enough, report the failure instead of crashing
		if r := recover(); r != nil {
			log.Error("Render ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("render panic: %v", r)
		} else {
			log.Info("Render completed", zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open CV source: %w", err)
	}
	defer file.Close()

	c, err := content.Prepare(ctx, file, filepath.Base(src), format, log)
	if err != nil {
		return fmt.Errorf("unable to parse CV source (%s): %w", src, err)
	}

	doc := c.Doc
	if preview {
		log.Info("Rendering preview form of the document")
		doc = c.Preview()
	}

	score := layout.Score(doc)
	tier := layout.TierFor(score, env.Cfg.Document.Density)
	log.Debug("Content density", zap.Float64("score", score), zap.Stringer("tier", tier))

	theme, err := layout.ResolveTheme(tier, &env.Cfg.Document, doc.Theme, doc.Layout)
	if err != nil {
		return fmt.Errorf("unable to resolve theme: %w", err)
	}
	geom, err := layout.NewGeometry(env.Cfg.Document.Layout, doc.Layout)
	if err != nil {
		return fmt.Errorf("unable to resolve page geometry: %w", err)
	}

	name := env.Template
	if len(name) == 0 {
		name = env.Cfg.Document.Template
	}
	strategy, err := templates.ForName(name)
	if err != nil {
		return err
	}

	job := &templates.Job{Doc: doc, Theme: theme, Geom: geom, Hyph: c.Hyphen, Log: log}
	if len(env.PicturePath) > 0 {
		data, err := os.ReadFile(env.PicturePath)
		if err != nil {
			return fmt.Errorf("unable to read profile picture from %q: %w", env.PicturePath, err)
		}
		if job.Picture, err = images.PrepareProfilePicture(data, env.Cfg.Document.Picture.Size, env.Cfg.Document.Picture.JPEGQuality); err != nil {
			return fmt.Errorf("unable to prepare profile picture: %w", err)
		}
		job.PictureFormat = "JPG"
	}

	// When both formats are requested a failure in one should not hide the
	// other from the user.
	var result error
	if format.WantPDF() {
		if err := writePDF(ctx, c, strategy, job, score, tier, src, log); err != nil {
			result = multierr.Append(result, err)
		}
	}
	if format.WantDOCX() {
		if err := writeDOCX(ctx, c, doc, theme, geom, strategy.Name(), tier, src, log); err != nil {
			result = multierr.Append(result, err)
		}
	}
	return result
}

func writePDF(ctx context.Context, c *content.Content, strategy templates.Strategy, job *templates.Job, score float64, tier common.DensityTier, src string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	surf, err := pdf.New(job.Geom, env.Cfg.Document.Fonts, log)
	if err != nil {
		return err
	}

	res, err := strategy.Render(ctx, job, surf)
	if err != nil {
		return fmt.Errorf("unable to render PDF: %w", err)
	}
	res.DensityScore, res.Tier = score, tier

	outputName := buildOutputPath(c, src, common.OutputFmtPdf, strategy.Name(), tier, env)
	f, err := createOutput(outputName, env, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	if err := surf.Output(f); err != nil {
		return err
	}
	log.Info("PDF written",
		zap.String("file", outputName), zap.Int("pages", res.Pages),
		zap.Float64("density_score", res.DensityScore), zap.Stringer("tier", res.Tier))

	if env.Rpt != nil {
		env.Rpt.Store("result"+filepath.Ext(outputName), outputName)
	}
	return nil
}

func writeDOCX(ctx context.Context, c *content.Content, doc *content.Document, theme *layout.Theme, geom *layout.Geometry, templateName string, tier common.DensityTier, src string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	outputName := buildOutputPath(c, src, common.OutputFmtDocx, templateName, tier, env)
	f, err := createOutput(outputName, env, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	if err := docx.Generate(ctx, doc, theme, geom, f); err != nil {
		return fmt.Errorf("unable to generate DOCX: %w", err)
	}
	log.Info("DOCX written", zap.String("file", outputName))

	if env.Rpt != nil {
		env.Rpt.Store("result"+filepath.Ext(outputName), outputName)
	}
	return nil
}

// createOutput prepares the output file honoring the overwrite setting and
// creating missing directories on the way.
func createOutput(path string, env *state.LocalEnv, log *zap.Logger) (*os.File, error) {
	if _, err := os.Stat(path); err == nil {
		if !env.Overwrite {
			return nil, fmt.Errorf("output file already exists: %s", path)
		}
		log.Warn("Overwriting existing file", zap.String("file", path))
		if err = os.Remove(path); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("unable to create output file: %w", err)
	}
	return f, nil
}
