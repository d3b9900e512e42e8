// internal/seo/validate.go
package seo

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	apperrors "loan-catalog/internal/common/errors"
)

// Schemas cover the fields search engines need for each document type.
const (
	thingRef = `{"type": "object", "required": ["@type", "name"], "properties": {"@type": {"type": "string"}, "name": {"type": "string", "minLength": 1}}}`

	listSchema = `{
  "type": "object",
  "required": ["@context", "@type", "itemListElement"],
  "properties": {
    "@context": {"const": "https://schema.org"},
    "itemListElement": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["@type", "position", "name"],
        "properties": {
          "@type": {"const": "ListItem"},
          "position": {"type": "integer", "minimum": 1},
          "name": {"type": "string", "minLength": 1},
          "item": {"type": "string", "format": "uri"},
          "url": {"type": "string", "format": "uri"}
        }
      }
    }
  }
}`

	amountSchema = `{
  "type": "object",
  "required": ["@type", "minValue", "maxValue", "currency"],
  "properties": {
    "@type": {"const": "MonetaryAmount"},
    "minValue": {"type": "number", "minimum": 0},
    "maxValue": {"type": "number", "minimum": 0},
    "currency": {"type": "string", "pattern": "^[A-Z]{3}$"}
  }
}`

	ratingSchema = `{
  "type": "object",
  "required": ["@type", "ratingValue", "reviewCount"],
  "properties": {
    "@type": {"const": "AggregateRating"},
    "ratingValue": {"type": "number", "minimum": 0, "maximum": 5},
    "reviewCount": {"type": "integer", "minimum": 0}
  }
}`

	loanSchema = `{
  "type": "object",
  "required": ["@type", "name", "url", "interestRate"],
  "properties": {
    "@type": {"const": "LoanOrCredit"},
    "name": {"type": "string", "minLength": 1},
    "url": {"type": "string", "format": "uri"},
    "interestRate": {"type": "number", "minimum": 0},
    "brand": ` + thingRef + `,
    "amount": ` + amountSchema + `,
    "aggregateRating": ` + ratingSchema + `
  }
}`
)

var jsonLDSchemas = map[string]string{
	"Organization": `{
  "type": "object",
  "required": ["@context", "@type", "name", "url", "logo"],
  "properties": {
    "@context": {"const": "https://schema.org"},
    "name": {"type": "string", "minLength": 1},
    "url": {"type": "string", "format": "uri"},
    "logo": {"type": "string", "format": "uri"},
    "sameAs": {"type": "array", "items": {"type": "string", "format": "uri"}}
  }
}`,
	"BreadcrumbList": listSchema,
	"ItemList":       listSchema,
	"LoanOrCredit": `{
  "allOf": [` + loanSchema + `],
  "required": ["@context"],
  "properties": {"@context": {"const": "https://schema.org"}}
}`,
	"Review": `{
  "type": "object",
  "required": ["@context", "@type", "itemReviewed", "author", "reviewBody", "reviewRating"],
  "properties": {
    "@context": {"const": "https://schema.org"},
    "itemReviewed": ` + thingRef + `,
    "author": ` + thingRef + `,
    "reviewBody": {"type": "string", "minLength": 1},
    "reviewRating": {
      "type": "object",
      "required": ["ratingValue", "bestRating", "worstRating"],
      "properties": {
        "ratingValue": {"type": "integer", "minimum": 1, "maximum": 5},
        "bestRating": {"const": 5},
        "worstRating": {"const": 1}
      }
    },
    "datePublished": {"type": "string", "format": "date-time"}
  }
}`,
	"FinancialService": `{
  "type": "object",
  "required": ["@context", "@type", "name", "url", "aggregateRating", "makesOffer"],
  "properties": {
    "@context": {"const": "https://schema.org"},
    "name": {"type": "string", "minLength": 1},
    "url": {"type": "string", "format": "uri"},
    "aggregateRating": ` + ratingSchema + `,
    "makesOffer": {"type": "array", "items": ` + loanSchema + `}
  }
}`,
}

var compiledSchemas = mustCompileSchemas()

func mustCompileSchemas() map[string]*gojsonschema.Schema {
	out := make(map[string]*gojsonschema.Schema, len(jsonLDSchemas))
	for name, src := range jsonLDSchemas {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
		if err != nil {
			panic(fmt.Sprintf("seo: invalid %s schema: %v", name, err))
		}
		out[name] = schema
	}
	return out
}

// ValidateJSONLD checks a structured data document against the schema for
// its @type. Failures are SCHEMA_VALIDATION_FAILED errors.
func ValidateJSONLD(doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return apperrors.NewInternalError(fmt.Errorf("marshal json-ld: %w", err))
	}

	var head struct {
		Type string `json:"@type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return apperrors.NewSchemaValidationFailedError("json-ld", []string{err.Error()})
	}

	schema, ok := compiledSchemas[head.Type]
	if !ok {
		return apperrors.NewSchemaValidationFailedError("json-ld", []string{fmt.Sprintf("unsupported @type %q", head.Type)})
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return apperrors.NewSchemaValidationFailedError(head.Type, []string{err.Error()})
	}
	if !result.Valid() {
		problems := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			problems[i] = desc.String()
		}
		return apperrors.NewSchemaValidationFailedError(head.Type, problems)
	}
	return nil
}
