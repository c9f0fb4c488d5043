package usecase

import (
	"time"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/service/compaction"
	"github.com/benogren/brand-agent/pkg/service/namegen"
	"github.com/benogren/brand-agent/pkg/service/story"
	"github.com/m-mizutani/gollem"
)

// UseCases bundles the application operations behind the HTTP and CLI
// surfaces.
type UseCases struct {
	repo interfaces.Repository

	domainChecker    interfaces.DomainChecker
	trademarkChecker interfaces.TrademarkChecker
	llmClient        gollem.LLMClient
	compactionModel  string
	tokenLimit       int
	batchDelay       time.Duration

	Session    *SessionUseCase
	Validation *ValidationUseCase
	Pipeline   *PipelineUseCase
}

type Option func(*UseCases)

func WithDomainChecker(checker interfaces.DomainChecker) Option {
	return func(uc *UseCases) {
		uc.domainChecker = checker
	}
}

func WithTrademarkChecker(checker interfaces.TrademarkChecker) Option {
	return func(uc *UseCases) {
		uc.trademarkChecker = checker
	}
}

// WithLLMClient enables model-backed generation for names, stories and
// compaction summaries. Without it every service uses its deterministic
// fallback.
func WithLLMClient(client gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.llmClient = client
	}
}

// WithCompactionModel sets the model name used to pick the token budget
func WithCompactionModel(modelName string) Option {
	return func(uc *UseCases) {
		uc.compactionModel = modelName
	}
}

// WithTokenLimit overrides the compaction token budget
func WithTokenLimit(limit int) Option {
	return func(uc *UseCases) {
		uc.tokenLimit = limit
	}
}

// WithBatchDelay sets the pause between names during batch validation
func WithBatchDelay(delay time.Duration) Option {
	return func(uc *UseCases) {
		uc.batchDelay = delay
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:            repo,
		compactionModel: compaction.DefaultModelName,
	}
	for _, opt := range opts {
		opt(uc)
	}

	var serviceOpts []compaction.Option
	var namegenOpts []namegen.Option
	var storyOpts []story.Option
	if uc.llmClient != nil {
		serviceOpts = append(serviceOpts, compaction.WithLLMClient(uc.llmClient))
		namegenOpts = append(namegenOpts, namegen.WithLLMClient(uc.llmClient))
		storyOpts = append(storyOpts, story.WithLLMClient(uc.llmClient))
	}
	if uc.tokenLimit > 0 {
		serviceOpts = append(serviceOpts, compaction.WithTokenLimit(uc.tokenLimit))
	}

	compactor := compaction.New(uc.compactionModel, serviceOpts...)

	uc.Session = NewSessionUseCase(repo)
	uc.Validation = NewValidationUseCase(uc.domainChecker, uc.trademarkChecker, uc.batchDelay)
	uc.Pipeline = NewPipelineUseCase(repo,
		uc.Validation,
		namegen.New(namegenOpts...),
		story.New(storyOpts...),
		compactor,
	)

	return uc
}
