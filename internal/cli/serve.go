package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	delivery_http "github.com/Danilo-Couto/simulador-de-pix/internal/delivery/http"
)

func serveCmd(rt *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the Pix confirmation API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pix, err := newPixController(rt)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := delivery_http.NewAPIRouter(pix, rt.log)
			return delivery_http.Serve(ctx, rt.cfg.HTTP.Addr, handler, rt.cfg.HTTP.ShutdownTimeout, rt.log)
		},
	}
}

func serveRemoteCmd(rt *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "serve-remote",
		Short: "Serve a simulated remote Pix service answering PIX_FAKE_RESPONSE_CODE",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := delivery_http.NewRemoteRouter(rt.cfg.Server.FakeResponseCode, rt.log)
			return delivery_http.Serve(ctx, rt.cfg.HTTP.Addr, handler, rt.cfg.HTTP.ShutdownTimeout, rt.log)
		},
	}
}
