package services

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// RenderService turns embedded markdown help text into page HTML
type RenderService struct {
	extensions parser.Extensions
	flags      html.Flags
}

func NewRenderService() *RenderService {
	return &RenderService{
		extensions: parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock,
		flags:      html.CommonFlags | html.HrefTargetBlank,
	}
}

// RenderMarkdown converts md to HTML. The source is trusted, embedded content.
func (s *RenderService) RenderMarkdown(md []byte) template.HTML {
	// parsers are stateful and must not be reused
	p := parser.NewWithExtensions(s.extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: s.flags})
	return template.HTML(markdown.ToHTML(md, p, renderer))
}
