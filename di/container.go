package di

import (
	"fmt"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"investmint-dashboard/api"
	"investmint-dashboard/api/investmint"
	"investmint-dashboard/config"
	"investmint-dashboard/server"
	"investmint-dashboard/server/handlers"
	services "investmint-dashboard/service"
	"investmint-dashboard/view"
)

// Container holds all application dependencies.
type Container struct {
	Settings            *config.Settings
	ClientFactory       investmint.ClientFactory
	Prober              services.Prober
	PageController      *services.PageController
	Renderer            *view.Renderer
	PageHandler         *handlers.PageHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	DashboardHttpServer *server.DashboardHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(settings *config.Settings) (*Container, error) {
	log.Info().Msgf("[Container] initializing container - upstream mode: %s, environment: %s",
		settings.UpstreamMode, settings.Endpoint.Environment)

	var clientFactory investmint.ClientFactory
	var prober services.Prober
	if settings.UpstreamMode == config.UPSTREAM_MODE_MOCK {
		log.Info().Msg("[Container] Using mock investmint api")
		resourcesDir := config.GetResourcePath("")
		clientFactory = investmint.NewMockClientFactory(resourcesDir)
		prober = investmint.NewInvestmintApiClientMock("", resourcesDir)
	} else {
		log.Info().Msg("[Container] Using http investmint api")
		httpClient := api.NewHTTPClient("")
		clientFactory = investmint.NewClientFactory(httpClient)
		prober = services.NewConnectivityProbe(httpClient.HTTPClient)
	}

	pageController := services.NewPageController(settings.Endpoint, clientFactory, prober)

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load view templates: %w", err)
	}

	pageHandler := handlers.NewPageHandler(pageController, renderer)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(pageHandler, muxRouter)
	dashboardHttpServer := server.NewDashboardHttpServer(router, muxRouter, settings.ListenAddr)

	return &Container{
		Settings:            settings,
		ClientFactory:       clientFactory,
		Prober:              prober,
		PageController:      pageController,
		Renderer:            renderer,
		PageHandler:         pageHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		DashboardHttpServer: dashboardHttpServer,
	}, nil
}
