package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrUnknownMeasure is returned when a coherence measure name is not recognized
	ErrUnknownMeasure = errors.New("unknown coherence measure")

	// ErrMissingReference is returned when the reference data required by the
	// selected measure (bag-of-words corpus or raw texts) is absent
	ErrMissingReference = errors.New("missing reference data")

	// ErrVocabulary is returned when a topic references a word absent from the dictionary
	ErrVocabulary = errors.New("word not in vocabulary")

	// ErrCorpusNotFound is returned when a corpus is not found
	ErrCorpusNotFound = errors.New("corpus not found")

	// ErrCorpusAlreadyExists is returned when trying to create a corpus that already exists
	ErrCorpusAlreadyExists = errors.New("corpus already exists")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// UnknownMeasureError represents a configuration error for an unrecognized
// coherence measure name, with the list of supported names for context.
type UnknownMeasureError struct {
	Measure   string
	Supported []string
}

func (e *UnknownMeasureError) Error() string {
	return fmt.Sprintf("unknown coherence measure '%s' (supported: %v)", e.Measure, e.Supported)
}

func (e *UnknownMeasureError) Is(target error) bool {
	return target == ErrUnknownMeasure
}

// NewUnknownMeasureError creates a new UnknownMeasureError
func NewUnknownMeasureError(measure string, supported []string) *UnknownMeasureError {
	return &UnknownMeasureError{Measure: measure, Supported: supported}
}

// MissingReferenceError represents a configuration error where the measure's
// required reference-statistics source was not supplied.
type MissingReferenceError struct {
	Measure  string
	Required string // "bag-of-words corpus" or "tokenized texts"
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("measure '%s' requires %s but none was supplied", e.Measure, e.Required)
}

func (e *MissingReferenceError) Is(target error) bool {
	return target == ErrMissingReference
}

// NewMissingReferenceError creates a new MissingReferenceError
func NewMissingReferenceError(measure, required string) *MissingReferenceError {
	return &MissingReferenceError{Measure: measure, Required: required}
}

// VocabularyError represents a topic word that has no id in the dictionary.
// This is a hard failure: no confirmation score can be computed for it.
type VocabularyError struct {
	Word       string
	TopicIndex int
}

func (e *VocabularyError) Error() string {
	return fmt.Sprintf("word '%s' in topic %d is not in the dictionary vocabulary", e.Word, e.TopicIndex)
}

func (e *VocabularyError) Is(target error) bool {
	return target == ErrVocabulary
}

// NewVocabularyError creates a new VocabularyError
func NewVocabularyError(word string, topicIndex int) *VocabularyError {
	return &VocabularyError{Word: word, TopicIndex: topicIndex}
}

// CorpusNotFoundError represents a corpus not found error with context
type CorpusNotFoundError struct {
	CorpusName string
}

func (e *CorpusNotFoundError) Error() string {
	return fmt.Sprintf("corpus named '%s' not found", e.CorpusName)
}

func (e *CorpusNotFoundError) Is(target error) bool {
	return target == ErrCorpusNotFound
}

// NewCorpusNotFoundError creates a new CorpusNotFoundError
func NewCorpusNotFoundError(corpusName string) *CorpusNotFoundError {
	return &CorpusNotFoundError{CorpusName: corpusName}
}

// CorpusAlreadyExistsError represents a corpus already exists error with context
type CorpusAlreadyExistsError struct {
	CorpusName string
}

func (e *CorpusAlreadyExistsError) Error() string {
	return fmt.Sprintf("corpus named '%s' already exists", e.CorpusName)
}

func (e *CorpusAlreadyExistsError) Is(target error) bool {
	return target == ErrCorpusAlreadyExists
}

// NewCorpusAlreadyExistsError creates a new CorpusAlreadyExistsError
func NewCorpusAlreadyExistsError(corpusName string) *CorpusAlreadyExistsError {
	return &CorpusAlreadyExistsError{CorpusName: corpusName}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
