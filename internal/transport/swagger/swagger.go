package swagger

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
	httpSwagger "github.com/swaggo/http-swagger"
)

const SpecURL = "/openapi.yml"

// Document is a validated OpenAPI document ready to be served as-is.
type Document struct {
	spec *openapi3.T
	raw  []byte
}

// LoadDocument reads and validates the OpenAPI file so a broken document
// fails at startup instead of in the browser.
func LoadDocument(ctx context.Context, path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read openapi document: %w", err)
	}

	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	return &Document{spec: spec, raw: raw}, nil
}

func (d *Document) Title() string {
	if d.spec.Info == nil {
		return ""
	}
	return d.spec.Info.Title
}

// PathCount is the number of documented paths.
func (d *Document) PathCount() int {
	if d.spec.Paths == nil {
		return 0
	}
	return d.spec.Paths.Len()
}

func (d *Document) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(d.raw)
}

func Handler() http.Handler {
	return httpSwagger.Handler(
		httpSwagger.URL(SpecURL),
	)
}
