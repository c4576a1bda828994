// Package api holds the HTTP contract of the account service: wire types, the
// strict handler adapter and the OpenAPI document describing them.
package api

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPISpec []byte

var (
	swaggerOnce sync.Once
	swagger     *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed OpenAPI document. It is loaded once.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(openAPISpec)
		if err != nil {
			swaggerErr = fmt.Errorf("error loading OpenAPI document: %w", err)
			return
		}
		swagger = doc
	})
	return swagger, swaggerErr
}
