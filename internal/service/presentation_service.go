package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/slidegenie/slidegenie-api/internal/domain"
	"github.com/slidegenie/slidegenie-api/internal/generation"
	"github.com/slidegenie/slidegenie-api/internal/prompts"
)

// DefaultImproveThreshold is the input length (in characters) below which
// the prompt improver runs. Longer user input is trusted as-is.
const DefaultImproveThreshold = 120

// DefaultSectionRetries is the default number of additional slide-writer
// attempts per section after the first rejection.
const DefaultSectionRetries = 2

// Improver rewrites weak user input into a fuller topic description.
// Implementations must fail open, returning the input unchanged on error.
type Improver interface {
	Improve(ctx context.Context, rawText string) string
}

// Planner decomposes a topic into an ordered section outline.
type Planner interface {
	Plan(ctx context.Context, topicText string, slideCount int) (*domain.ConceptPlan, error)
}

// SlideWriter expands one section into slide content.
type SlideWriter interface {
	Expand(ctx context.Context, section domain.Section, domainRules string, isRetry bool) (domain.Slide, error)
}

// Validator gates one slide through the two-tier quality check.
type Validator interface {
	Validate(ctx context.Context, slide domain.Slide) generation.Verdict
}

// GenerateRequest carries the caller's parameters into the pipeline.
type GenerateRequest struct {
	Text       string
	SlideCount int
	Domain     domain.Domain
	Audience   domain.Audience
}

// Options tunes orchestrator behavior. The zero value selects the package
// defaults.
type Options struct {
	// SectionRetries is the number of additional expansion attempts per
	// section after a rejection. Negative values mean zero retries.
	SectionRetries int

	// MaxConcurrentExpansions caps simultaneous slide-writer calls.
	// Zero or negative means no cap beyond the section count.
	MaxConcurrentExpansions int

	// ImproveThreshold overrides the input-length threshold below which
	// the prompt improver runs. Zero selects the default.
	ImproveThreshold int

	// CacheTTL is the lifetime of cached structures. Zero disables caching.
	CacheTTL time.Duration
}

// PresentationService is the content orchestrator. All dependencies are
// injected at construction; the service holds no mutable state besides the
// response cache and is safe for concurrent use.
type PresentationService struct {
	improver  Improver
	planner   Planner
	writer    SlideWriter
	validator Validator
	logger    *slog.Logger

	retries          int
	maxConcurrent    int
	improveThreshold int
	cache            *gocache.Cache
	cacheTTL         time.Duration
}

// NewPresentationService wires the orchestrator from its stage dependencies.
func NewPresentationService(
	improver Improver,
	planner Planner,
	writer SlideWriter,
	validator Validator,
	logger *slog.Logger,
	opts Options,
) *PresentationService {
	retries := opts.SectionRetries
	if retries < 0 {
		retries = 0
	}
	if opts.SectionRetries == 0 {
		retries = DefaultSectionRetries
	}

	threshold := opts.ImproveThreshold
	if threshold <= 0 {
		threshold = DefaultImproveThreshold
	}

	var structCache *gocache.Cache
	if opts.CacheTTL > 0 {
		structCache = gocache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}

	return &PresentationService{
		improver:         improver,
		planner:          planner,
		writer:           writer,
		validator:        validator,
		logger:           logger,
		retries:          retries,
		maxConcurrent:    opts.MaxConcurrentExpansions,
		improveThreshold: threshold,
		cache:            structCache,
		cacheTTL:         opts.CacheTTL,
	}
}

// Generate runs the full pipeline for one request and returns the assembled
// presentation structure.
//
// Planner failures are fatal and propagate to the caller; no partial deck
// is ever returned. Per-section quality failures degrade to a fallback
// slide after the bounded retry loop and are never surfaced as errors.
func (s *PresentationService) Generate(ctx context.Context, req GenerateRequest) (*domain.PresentationStructure, error) {
	if req.Text == "" {
		return nil, generation.ErrEmptyInput
	}
	if req.SlideCount < 1 || req.SlideCount > domain.MaxSlides {
		return nil, fmt.Errorf("%w: slide count must be between 1 and %d",
			generation.ErrGenerationFailed, domain.MaxSlides)
	}

	key := cacheKey(req)
	if s.cache != nil {
		if cached, found := s.cache.Get(key); found {
			s.logger.InfoContext(ctx, "returning cached presentation structure")
			return cached.(*domain.PresentationStructure), nil
		}
	}

	// IMPROVE?: short input gets rewritten; longer input is trusted as-is.
	text := req.Text
	if len(text) < s.improveThreshold {
		text = s.improver.Improve(ctx, text)
	}

	// Domain conditioning is resolved once and reused for every expansion.
	rules := prompts.ResolveDomainRules(req.Domain, req.Audience)

	// PLAN: a failure here is fatal for the whole request.
	plan, err := s.planner.Plan(ctx, text, req.SlideCount)
	if err != nil {
		s.logger.ErrorContext(ctx, "concept planning failed", "error", err)
		return nil, err
	}

	// EXPAND_ALL: scatter one expansion per section, join on all of them.
	slides, err := s.expandAll(ctx, plan, rules)
	if err != nil {
		return nil, err
	}

	// ASSEMBLE: input order, capped at the slide limit.
	if len(slides) > domain.MaxSlides {
		s.logger.WarnContext(ctx, "plan exceeded slide cap, truncating",
			"planned", len(slides),
			"cap", domain.MaxSlides)
	}
	structure, err := domain.NewPresentationStructure(plan.Topic, slides)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	if s.cache != nil {
		s.cache.Set(key, structure, s.cacheTTL)
	}

	s.logger.InfoContext(ctx, "presentation structure generated",
		"topic", structure.Topic,
		"slides", len(structure.Slides))

	return structure, nil
}

// expandAll runs the per-section expansion loops concurrently and returns
// the slides in section order. Completion order is irrelevant: each
// goroutine writes to its own index.
func (s *PresentationService) expandAll(
	ctx context.Context,
	plan *domain.ConceptPlan,
	rules string,
) ([]domain.Slide, error) {
	slides := make([]domain.Slide, len(plan.Sections))

	eg, egCtx := errgroup.WithContext(ctx)
	if s.maxConcurrent > 0 {
		eg.SetLimit(s.maxConcurrent)
	}

	for i, section := range plan.Sections {
		i, section := i, section
		eg.Go(func() error {
			slide, err := s.expandSection(egCtx, section, rules)
			if err != nil {
				return err
			}
			slides[i] = slide
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return slides, nil
}

// expandSection runs the bounded generate-validate retry loop for one
// section. Quality rejections and malformed replies consume an attempt;
// exhaustion degrades to the fallback slide. Only context cancellation
// aborts the section (and with it the whole request).
func (s *PresentationService) expandSection(
	ctx context.Context,
	section domain.Section,
	rules string,
) (domain.Slide, error) {
	attempts := 1 + s.retries

	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.Slide{}, err
		}

		slide, err := s.writer.Expand(ctx, section, rules, attempt > 0)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return domain.Slide{}, err
			}
			s.logger.WarnContext(ctx, "slide expansion attempt failed",
				"section", section.Title,
				"attempt", attempt+1,
				"error", err)
			continue
		}

		verdict := s.validator.Validate(ctx, slide)
		if verdict.Accepted {
			return slide, nil
		}

		s.logger.InfoContext(ctx, "slide rejected by quality gate",
			"section", section.Title,
			"attempt", attempt+1,
			"reason", verdict.Reason,
			"score", verdict.Score)
	}

	s.logger.WarnContext(ctx, "expansion attempts exhausted, using fallback slide",
		"section", section.Title,
		"attempts", attempts)

	return FallbackSlide(section), nil
}

// FallbackSlide builds the fixed, clearly-labeled slide substituted when a
// section exhausts its expansion attempts. Its text is written to never
// match the validator's deny-list; if the planner-supplied title trips the
// list, a fixed title is used instead.
func FallbackSlide(section domain.Section) domain.Slide {
	slide := domain.Slide{
		Title: section.Title,
		BulletPoints: []string{
			"Automated drafting did not reach the quality bar for this section.",
			"Replace these bullets with your own talking points.",
			"Revisit the source material before presenting.",
		},
	}
	if _, hit := generation.CheckStatic(slide); hit {
		slide.Title = "Additional Material Required"
	}
	return slide
}

// cacheKey derives a stable cache key from the request parameters.
func cacheKey(req GenerateRequest) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s|%s",
		req.Text, req.SlideCount, req.Domain, req.Audience)))
	return hex.EncodeToString(sum[:])
}
