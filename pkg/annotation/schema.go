package annotation

import (
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// ReportSchema describes the exported report document. Record fields stay
// snake_case while summary keys are camelCase; both are part of the file
// contract.
const ReportSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["summary", "annotations", "qualityScores", "comparisons"],
  "properties": {
    "summary": {
      "type": "object",
      "required": ["totalAnnotations", "totalQualityChecks", "totalComparisons", "generatedAt"],
      "properties": {
        "totalAnnotations": {"type": "integer", "minimum": 0},
        "totalQualityChecks": {"type": "integer", "minimum": 0},
        "totalComparisons": {"type": "integer", "minimum": 0},
        "generatedAt": {"type": "string"},
        "averageQualityScore": {"type": "string", "pattern": "^[0-9]+\\.[0-9]{2}%$"}
      }
    },
    "annotations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["image_id", "category", "confidence", "timestamp", "notes"],
        "properties": {
          "image_id": {"type": "string"},
          "category": {"type": "string"},
          "confidence": {"type": "integer"},
          "timestamp": {"type": "string"},
          "notes": {"type": "string"}
        }
      }
    },
    "qualityScores": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["data_entry", "score", "max_score", "percentage", "feedback", "timestamp"],
        "properties": {
          "data_entry": {"type": "object"},
          "score": {"type": "integer", "minimum": 0},
          "max_score": {"type": "integer", "minimum": 1},
          "percentage": {"type": "number", "minimum": 0, "maximum": 100},
          "feedback": {"type": "array", "items": {"type": "string"}},
          "timestamp": {"type": "string"}
        }
      }
    },
    "comparisons": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["item_a", "item_b", "criterion", "winner", "timestamp"],
        "properties": {
          "criterion": {"type": "string"},
          "winner": {"enum": ["A", "B", "Tie"]},
          "timestamp": {"type": "string"}
        }
      }
    }
  }
}`

var reportSchemaLoader = gojsonschema.NewStringLoader(ReportSchema)

// ValidateReport checks a serialized report document against ReportSchema.
func ValidateReport(data []byte) error {
	documentLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(reportSchemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var errMsg string
		for i, err := range result.Errors() {
			if i > 0 {
				errMsg += "; "
			}
			errMsg += err.String()
		}
		return fmt.Errorf("schema validation errors: %s", errMsg)
	}

	return nil
}

// ValidateReportFile checks a report file on disk against ReportSchema.
func ValidateReportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read report file: %w", err)
	}
	return ValidateReport(data)
}
