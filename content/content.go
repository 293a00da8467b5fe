package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"cvg/common"
	"cvg/content/text"
	"cvg/state"
)

// Content bundles the validated CV document with the text helpers derived
// from the configured document language.
type Content struct {
	SrcName      string
	Doc          *Document
	OutputFormat common.OutputFmt

	Splitter *text.Splitter
	Hyphen   *text.Hyphenator
}

// Prepare reads, parses and validates CV data for rendering.
func Prepare(ctx context.Context, r io.Reader, srcName string, outputFormat common.OutputFmt, log *zap.Logger) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read CV data: %w", err)
	}

	doc, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CV data: %w", err)
	}

	// Save input document for debugging
	if env.Rpt != nil {
		env.Rpt.StoreData(filepath.Base(srcName), data)
	}

	lang, err := language.Parse(env.Cfg.Document.Language)
	if err != nil {
		log.Warn("Unable to parse document language, assuming English", zap.String("language", env.Cfg.Document.Language), zap.Error(err))
		lang = language.English
	}

	c := &Content{
		SrcName:      srcName,
		Doc:          doc,
		OutputFormat: outputFormat,
		Splitter:     text.NewSplitter(lang, log),
	}

	if env.Cfg.Document.Hyphenate {
		c.Hyphen = text.NewHyphenator(lang, log)
	}

	// Save prepared document to the report for debugging
	if env.Rpt != nil {
		env.Rpt.StoreData(filepath.Base(srcName)+"_prepared", []byte(c.String()))
	}

	return c, nil
}
