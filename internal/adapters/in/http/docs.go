package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var docsOnce sync.Once

// openAPIDocument serves the embedded OpenAPI document through swag's
// registry, which echo-swagger reads doc.json from.
type openAPIDocument struct {
	raw string
}

func (d openAPIDocument) ReadDoc() string {
	return d.raw
}

// registerDocs publishes doc under swag.Name. swag panics on a second
// registration, so only the first server in the process registers.
func registerDocs(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}

	docsOnce.Do(func() {
		swag.Register(swag.Name, openAPIDocument{raw: string(raw)})
	})
	return nil
}
