package usecase

import (
	"victoriaos-connector/internal/trigger"
	"victoriaos-connector/internal/trigger/repository"
	"victoriaos-connector/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	store    repository.Store
	api      trigger.Caller
	resolver trigger.URLResolver
}

// New creates the webhook lifecycle use case.
func New(l log.Logger, store repository.Store, api trigger.Caller, resolver trigger.URLResolver) trigger.UseCase {
	if l == nil {
		l = log.NewNop()
	}
	return &implUseCase{l: l, store: store, api: api, resolver: resolver}
}
