package api

import (
	"errors"
	"strconv"
	"strings"

	internalerrors "github.com/gcbaptista/go-topic-coherence/internal/errors"
)

// ValidationErrorItem describes one failed validation check.
type ValidationErrorItem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult collects the outcome of request validation.
type ValidationResult struct {
	Valid  bool                  `json:"valid"`
	Errors []ValidationErrorItem `json:"errors,omitempty"`
}

func validationFailure(field, message string) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationErrorItem{{Field: field, Message: message}},
	}
}

// ValidateCorpusName checks a corpus name for basic requirements: non-empty,
// no path separators (names become directory names on disk), and a sane
// length.
func ValidateCorpusName(name string) ValidationResult {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return validationFailure("name", "Corpus name is required")
	}
	if strings.ContainsAny(trimmed, "/\\") {
		return validationFailure("name", "Corpus name cannot contain path separators")
	}
	if len(trimmed) > 255 {
		return validationFailure("name", "Corpus name cannot exceed 255 characters")
	}
	return ValidationResult{Valid: true}
}

// ValidateTopics checks that at least one topic with at least one word was
// submitted.
func ValidateTopics(topics [][]string) ValidationResult {
	if len(topics) == 0 {
		return validationFailure("topics", "At least one topic is required")
	}
	for i, topic := range topics {
		if len(topic) == 0 {
			return validationFailure("topics", "Topic at position "+strconv.Itoa(i)+" is empty")
		}
	}
	return ValidationResult{Valid: true}
}

// IsCorpusNotFound reports whether err is a corpus-not-found error.
func IsCorpusNotFound(err error) bool {
	return errors.Is(err, internalerrors.ErrCorpusNotFound)
}

// IsCorpusExists reports whether err is a corpus-already-exists error.
func IsCorpusExists(err error) bool {
	return errors.Is(err, internalerrors.ErrCorpusAlreadyExists)
}

// IsConfigurationError reports whether err is a configuration problem
// (unknown measure or missing reference data).
func IsConfigurationError(err error) bool {
	return errors.Is(err, internalerrors.ErrUnknownMeasure) ||
		errors.Is(err, internalerrors.ErrMissingReference)
}

// IsVocabularyError reports whether err is a vocabulary failure.
func IsVocabularyError(err error) bool {
	return errors.Is(err, internalerrors.ErrVocabulary)
}

// IsValidationError reports whether err is an input validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, internalerrors.ErrInvalidInput)
}
