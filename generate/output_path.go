package generate

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"cvg/common"
	"cvg/config"
	"cvg/content"
	"cvg/state"
)

// buildOutputPath returns the constructed output file path for one concrete
// output format. It uses either the default naming scheme or the user-defined
// template, cleans every path segment and transliterates it if requested.
func buildOutputPath(c *content.Content, src string, format common.OutputFmt, templateName string, tier common.DensityTier, env *state.LocalEnv) string {
	defaultFile := buildDefaultFileName(src, format, env)

	if env.Cfg.Document.OutputNameTemplate == "" {
		return filepath.Join(env.OutputDir, defaultFile)
	}

	expandedName := expandOutputNameTemplate(c, format, templateName, tier, env)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(env.OutputDir, defaultFile)
	}

	return assemblePathWithSubdirs(env.OutputDir, expandedName, format, env)
}

func buildDefaultFileName(src string, format common.OutputFmt, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if env.Cfg.Document.FileNameTransliterate {
		baseName = slug.Make(baseName)
	}
	return config.CleanFileName(baseName) + getFileExtension(format)
}

func getFileExtension(format common.OutputFmt) string {
	switch format {
	case common.OutputFmtPdf:
		return ".pdf"
	case common.OutputFmtDocx:
		return ".docx"
	default:
		// this should never happen, both gets split before naming
		panic("unsupported format requested")
	}
}

func expandOutputNameTemplate(c *content.Content, format common.OutputFmt, templateName string, tier common.DensityTier, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(c, config.OutputNameTemplateFieldName, env.Cfg.Document.OutputNameTemplate, format, templateName, tier)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(expandedName)
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into a full output path,
// cleaning and transliterating segments as needed
func assemblePathWithSubdirs(outDir, expandedName string, format common.OutputFmt, env *state.LocalEnv) string {
	outExt := getFileExtension(format)
	pathSegments := splitAndCleanPath(expandedName)

	if len(pathSegments) == 0 {
		return outDir
	}

	fileName := cleanPathSegment(pathSegments[len(pathSegments)-1], env) + outExt
	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)

	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, cleanPathSegment(segment, env))
	}

	dirParts = append(dirParts, fileName)
	return filepath.Join(dirParts...)
}

func splitAndCleanPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
		path = head
	}

	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
