// Package tailor orchestrates the resume tailoring pipeline: input
// validation, skills analysis, relevance-ranked point selection, exemplar
// retrieval, and three tone-conditioned drafting calls.
package tailor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/0xsashank/magicresume/internal/corpus"
	"github.com/0xsashank/magicresume/internal/embedding"
	"github.com/0xsashank/magicresume/internal/llm"
	"github.com/0xsashank/magicresume/internal/prompts"
	"github.com/0xsashank/magicresume/internal/ranking"
)

// User-facing messages for rejected input. The wording is part of the
// external contract.
const (
	MsgMissingInput  = "Please provide both resume points and a job description."
	MsgTooFewPoints  = "Please provide at least 3 resume points."
	genericErrPrefix = "An error occurred while generating resumes: "
)

const (
	// MinPoints is the fewest experience points a request may carry.
	MinPoints = 3
	// DefaultCallTimeout bounds each external service call.
	DefaultCallTimeout = 60 * time.Second

	summaryMaxTokens    = 200
	variantMaxTokens    = 500
	samplingTemperature = 0.7
)

// Request is one validated tailoring request.
type Request struct {
	Points         []string
	JobDescription string
}

// Validate rejects blank or insufficient input before any external call.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.JobDescription) == "" || len(r.Points) == 0 {
		return &ValidationError{Message: MsgMissingInput}
	}
	if len(r.Points) < MinPoints {
		return &ValidationError{Message: MsgTooFewPoints}
	}
	return nil
}

// Variant is one generated resume draft. Err is set instead of Text when
// the generation call for this tone failed; Render folds that into the
// user-visible string so tests can still tell the two apart.
type Variant struct {
	Tone corpus.Tone
	Text string
	Err  error
}

// Render returns the user-visible text for the variant.
func (v Variant) Render() string {
	if v.Err != nil {
		return fmt.Sprintf("An error occurred: %v", v.Err)
	}
	return v.Text
}

// Result is the assembled output of one request: the skills summary plus
// exactly one variant per tone, in fixed tone order.
type Result struct {
	SkillsSummary string
	Variants      [3]Variant
}

// Options tunes orchestrator behavior.
type Options struct {
	// CallTimeout bounds each external call; zero means DefaultCallTimeout.
	CallTimeout time.Duration
	// Verbose logs per-phase progress.
	Verbose bool
}

// Orchestrator coordinates the embedding, corpus, and generation services
// for tailoring requests. It holds only read-only process-wide state and is
// safe for concurrent use.
type Orchestrator struct {
	embedder    embedding.Embedder
	client      llm.Client
	corpus      *corpus.Corpus
	callTimeout time.Duration
	verbose     bool
}

// New creates an Orchestrator over the given services and exemplar store.
func New(embedder embedding.Embedder, client llm.Client, store corpus.Store, opts *Options) *Orchestrator {
	o := &Orchestrator{
		embedder:    embedder,
		client:      client,
		corpus:      corpus.New(store, embedder),
		callTimeout: DefaultCallTimeout,
	}
	if opts != nil {
		if opts.CallTimeout > 0 {
			o.callTimeout = opts.CallTimeout
		}
		o.verbose = opts.Verbose
	}
	return o
}

// Tailor runs the full pipeline for one request.
//
// Failure policy: validation errors and configuration errors abort before
// any generation work; an unreachable embedding backend or an empty corpus
// aborts ranking; a failed summary call degrades into error text in the
// summary slot; each variant call is isolated, so a failure lands in its
// own slot and never touches siblings.
func (o *Orchestrator) Tailor(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	summary, err := o.summarizeSkills(ctx, req.JobDescription)
	if err != nil {
		var confErr *llm.ConfigurationError
		if errors.As(err, &confErr) {
			return nil, err
		}
		summary = fmt.Sprintf("An error occurred while summarizing relevant skills: %v", err)
	}

	jobVec, err := o.embedJobDescription(ctx, req.JobDescription)
	if err != nil {
		return nil, err
	}

	relevant, err := ranking.TopKByVector(ctx, o.embedder, req.Points, jobVec, ranking.DefaultTopK)
	if err != nil {
		return nil, err
	}
	if o.verbose {
		log.Printf("[VERBOSE] Selected %d of %d points", len(relevant), len(req.Points))
	}

	exemplar, err := o.corpus.BestMatch(ctx, jobVec)
	if err != nil {
		return nil, err
	}
	if o.verbose {
		log.Printf("[VERBOSE] Exemplar tone: %s", exemplar.Tone)
	}

	result := &Result{SkillsSummary: summary}
	o.generateVariants(ctx, relevant, req.JobDescription, exemplar, &result.Variants)
	return result, nil
}

// generateVariants fills one output slot per tone, in fixed tone order.
// The three calls run concurrently; each writes only its own slot, and a
// faulted call never cancels its siblings.
func (o *Orchestrator) generateVariants(ctx context.Context, points []string, jobDescription string, exemplar corpus.ExemplarResume, out *[3]Variant) {
	system := prompts.VariantSystemInstruction()

	var g errgroup.Group
	for i, tone := range corpus.Tones() {
		i, tone := i, tone
		prompt := prompts.BuildVariantPrompt(points, jobDescription, exemplar, tone)
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
			defer cancel()

			text, err := o.client.Complete(callCtx, system, prompt, llm.TierDraft, variantMaxTokens, samplingTemperature)
			if err != nil {
				out[i] = Variant{Tone: tone, Err: &GenerationCallError{Tone: tone, Cause: err}}
				return nil
			}
			out[i] = Variant{Tone: tone, Text: text}
			return nil
		})
	}
	_ = g.Wait()
}

func (o *Orchestrator) summarizeSkills(ctx context.Context, jobDescription string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	prompt := prompts.BuildSkillsPrompt(jobDescription)
	return o.client.Complete(callCtx, prompts.SkillsSystemInstruction(), prompt, llm.TierSummary, summaryMaxTokens, samplingTemperature)
}

func (o *Orchestrator) embedJobDescription(ctx context.Context, jobDescription string) ([]float32, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	vecs, err := o.embedder.Embed(callCtx, []string{jobDescription})
	if err != nil {
		return nil, fmt.Errorf("failed to embed job description: %w", err)
	}
	if len(vecs) != 1 {
		return nil, &embedding.UnavailableError{
			Message: fmt.Sprintf("expected 1 job description vector, got %d", len(vecs)),
		}
	}
	return vecs[0], nil
}

// SplitPoints turns newline-delimited input into trimmed, non-empty points.
func SplitPoints(pointsText string) []string {
	var points []string
	for _, line := range strings.Split(pointsText, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			points = append(points, trimmed)
		}
	}
	return points
}

// GenerateResumes is the top-level entry point consumed by the UI layer.
// It always returns exactly four strings in fixed order: skills summary,
// professional, achievement-oriented, creative. Rejected input and
// configuration errors surface as the first string with the rest blank;
// any other error is folded into a generic user-facing message.
func (o *Orchestrator) GenerateResumes(ctx context.Context, pointsText, jobDescriptionText string) (string, string, string, string) {
	if strings.TrimSpace(pointsText) == "" || strings.TrimSpace(jobDescriptionText) == "" {
		return MsgMissingInput, "", "", ""
	}

	points := SplitPoints(pointsText)
	if len(points) < MinPoints {
		return MsgTooFewPoints, "", "", ""
	}

	result, err := o.Tailor(ctx, Request{Points: points, JobDescription: jobDescriptionText})
	if err != nil {
		var valErr *ValidationError
		var confErr *llm.ConfigurationError
		if errors.As(err, &valErr) || errors.As(err, &confErr) {
			return err.Error(), "", "", ""
		}
		return genericErrPrefix + err.Error(), "", "", ""
	}

	return result.SkillsSummary,
		result.Variants[0].Render(),
		result.Variants[1].Render(),
		result.Variants[2].Render()
}
