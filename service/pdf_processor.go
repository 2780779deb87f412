package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PDFProcessor interface {
	Validate(pdfData []byte) error
	PageCount(pdfData []byte) (int, error)
	ExtractText(pdfData []byte) (string, error)
}

type pdfProcessor struct{}

// pdfcpu would otherwise create a config directory under the user's home.
func init() {
	api.DisableConfigDir()
}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

func (p *pdfProcessor) conf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

func (p *pdfProcessor) Validate(pdfData []byte) error {
	if err := api.Validate(bytes.NewReader(pdfData), p.conf()); err != nil {
		return fmt.Errorf("invalid pdf: %w", err)
	}
	return nil
}

func (p *pdfProcessor) PageCount(pdfData []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(pdfData), p.conf())
	if err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return n, nil
}

// ExtractText returns the text of every page, one text line per line.
// Encrypted documents are not supported.
func (p *pdfProcessor) ExtractText(pdfData []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var textBuilder strings.Builder
	fonts := make(map[string]*pdf.Font)
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}

		text, err := page.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}
