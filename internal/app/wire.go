//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/dquezada/pasarela/config"
	"github.com/dquezada/pasarela/internal/delivery/http"
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		provideValidator,
		provideCheckoutCreator,
		provideSignatureMode,
		provideVerifier,
		provideRecorder,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideRouter,
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}
