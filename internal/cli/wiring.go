package cli

import (
	"fmt"

	"github.com/Danilo-Couto/simulador-de-pix/internal/config"
	impl_fakeserver "github.com/Danilo-Couto/simulador-de-pix/internal/impl/gateway/fakeserver"
	impl_httpserver "github.com/Danilo-Couto/simulador-de-pix/internal/impl/gateway/httpserver"
	impl_platform "github.com/Danilo-Couto/simulador-de-pix/internal/impl/platform"
	impl_pix "github.com/Danilo-Couto/simulador-de-pix/internal/impl/usecase/pix"
	port_server "github.com/Danilo-Couto/simulador-de-pix/internal/ports/gateway/server"
	"github.com/Danilo-Couto/simulador-de-pix/internal/presentation/controller"
)

func newConnectionProvider(cfg config.ServerConfig) (port_server.ConnectionProvider, error) {
	switch cfg.Mode {
	case config.ServerModeFake:
		return impl_fakeserver.New(impl_fakeserver.WithCode(cfg.FakeResponseCode)), nil
	case config.ServerModeHTTP:
		return impl_httpserver.New(impl_httpserver.Config{
			BaseURL: cfg.URL,
			Timeout: cfg.Timeout,
		}, impl_platform.NewUUIDGenerator())
	default:
		return nil, fmt.Errorf("unknown server mode %q", cfg.Mode)
	}
}

func newPixController(rt *deps) (*controller.PixController, error) {
	server, err := newConnectionProvider(rt.cfg.Server)
	if err != nil {
		return nil, err
	}

	usecase := impl_pix.NewExecutePixUsecaseImpl(server)
	return controller.NewPixController(usecase, impl_platform.NewUUIDGenerator(), rt.log), nil
}
