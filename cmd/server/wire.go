//go:build wireinject

package main

import (
	"github.com/google/wire"

	"llm-advisor/internal/domain"
	"llm-advisor/internal/infrastructure"
	"llm-advisor/internal/interfaces"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.Provider,
		interfaces.InterfacesProvider,
		wire.Struct(new(DataInitializer), "*"),
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
