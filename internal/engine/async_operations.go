package engine

import (
	"fmt"

	"github.com/gcbaptista/go-topic-coherence/model"
	"github.com/gcbaptista/go-topic-coherence/services"
)

// EvaluateCoherenceAsync starts a background coherence evaluation and returns
// its job ID immediately. Configuration and vocabulary problems are checked
// up front inside the job, before the corpus scan, and surface as job
// failures.
func (e *Engine) EvaluateCoherenceAsync(corpusName string, req services.CoherenceRequest) (string, error) {
	instance, err := e.instance(corpusName)
	if err != nil {
		return "", err
	}

	jobID := e.jobs.CreateJob(model.JobTypeEvaluateCoherence, corpusName, map[string]string{
		"measure": req.Settings.Measure,
		"topics":  fmt.Sprintf("%d", len(req.Topics)),
	})

	e.jobs.Run(jobID, func(progress func(current, total int, message string)) (*model.CoherenceResult, error) {
		progress(0, 1, "evaluating coherence")
		result, err := e.evaluate(instance, req)
		if err != nil {
			return nil, err
		}
		progress(1, 1, "evaluation complete")
		return &result, nil
	})

	return jobID, nil
}

// PersistCorpusAsync starts a background persistence pass for the named
// corpus and returns its job ID.
func (e *Engine) PersistCorpusAsync(corpusName string) (string, error) {
	if _, err := e.instance(corpusName); err != nil {
		return "", err
	}

	jobID := e.jobs.CreateJob(model.JobTypePersistCorpus, corpusName, nil)
	e.jobs.Run(jobID, func(progress func(current, total int, message string)) (*model.CoherenceResult, error) {
		progress(0, 1, "persisting corpus")
		if err := e.PersistCorpus(corpusName); err != nil {
			return nil, err
		}
		progress(1, 1, "persistence complete")
		return nil, nil
	})
	return jobID, nil
}
