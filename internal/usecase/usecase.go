package usecase

import (
	"context"
	"time"

	"contact-directory/internal/repository"
	"contact-directory/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ContactUsecaseInterface
	TeamUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	upstream domain.Upstream,
	timeout time.Duration,
	opts ...domain.Option,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, upstream, timeout, opts...)
}
