package contract

import (
	"context"
	_ "embed"
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/statusboard/pkg/domain/model"
)

//go:embed openapi.yaml
var document []byte

// HealthPath is the only API route the service exposes
const HealthPath = "/api/health"

const healthSchemaName = "HealthStatus"

// ErrInvalidHealthStatus is returned when a body does not satisfy the HealthStatus schema
var ErrInvalidHealthStatus = goerr.New("invalid health status")

// Load parses and validates the embedded OpenAPI document
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load OpenAPI document")
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, goerr.Wrap(err, "OpenAPI document is invalid")
	}

	return doc, nil
}

// Validator checks health responses against the HealthStatus schema
type Validator struct {
	schema *openapi3.Schema
}

// NewValidator builds a Validator from the embedded document
func NewValidator(ctx context.Context) (*Validator, error) {
	doc, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	ref, ok := doc.Components.Schemas[healthSchemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, goerr.New("schema not found in OpenAPI document", goerr.V("schema", healthSchemaName))
	}

	return &Validator{schema: ref.Value}, nil
}

// Validate decodes data as JSON, checks it against the schema and returns the status
func (v *Validator) Validate(data []byte) (*model.HealthStatus, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, goerr.Wrap(ErrInvalidHealthStatus, "body is not JSON",
			goerr.V("cause", err.Error()),
			goerr.V("body_size", len(data)),
		)
	}

	if err := v.schema.VisitJSON(raw); err != nil {
		return nil, goerr.Wrap(ErrInvalidHealthStatus, "body does not match schema",
			goerr.V("cause", err.Error()),
		)
	}

	var status model.HealthStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, goerr.Wrap(ErrInvalidHealthStatus, "failed to decode health status",
			goerr.V("cause", err.Error()),
		)
	}

	return &status, nil
}
