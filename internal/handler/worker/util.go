package worker

import (
	"errors"
	"fmt"

	"github.com/aiforge/tasks-ms-go/internal/validation"
	"github.com/go-playground/validator/v10"
)

// invalidPayloadErr folds dispatch-time validation failures into one
// human-readable error string for the failed status record.
func invalidPayloadErr(taskType string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		if js, jerr := validation.ErrorsToJson(verrs); jerr == nil {
			return fmt.Errorf("invalid %s payload: %s", taskType, js)
		}
	}
	return fmt.Errorf("invalid %s payload: %w", taskType, err)
}
