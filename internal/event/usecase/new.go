package usecase

import (
	"context"
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/llmprovider"
	pkgLog "calendar-assistant/pkg/log"
)

// LLM is the part of llmprovider.Manager the use case needs.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      LLM
	repo     repository.Repository
	dateMath *datemath.Parser
	capturer event.Capturer
	now      func() time.Time
}

// New creates a new event UseCase instance. capturer may be nil, in which
// case screenshots are reported as disabled.
func New(
	l pkgLog.Logger,
	llm LLM,
	repo repository.Repository,
	dateMath *datemath.Parser,
	capturer event.Capturer,
) event.UseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		repo:     repo,
		dateMath: dateMath,
		capturer: capturer,
		now:      time.Now,
	}
}

// today is the current date in the configured timezone.
func (uc *implUseCase) today() datemath.Date {
	return uc.dateMath.Today(uc.now())
}
