package components

import (
	"washclub/internal/infra/metrics"
	"washclub/internal/infra/push"
	"washclub/internal/infra/qr"
	"washclub/internal/infra/transfer"
	"washclub/internal/pkg/config"
	"washclub/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			qr.NewEncoder,
			fx.As(new(commands.QREncoder)),
		),
		fx.Annotate(
			push.NewLogNotifier,
			fx.As(new(commands.Notifier)),
		),
		NewTransferGateway,
		NewRedemptionMetrics,
	),
)

// NewTransferGateway selects the HTTP gateway when a transfer service
// is configured and falls back to the no-op gateway otherwise.
func NewTransferGateway(cfg config.Config) commands.TransferGateway {
	if cfg.Transfer.BaseURL == "" {
		return transfer.NewNoopGateway()
	}
	return transfer.NewHTTPGateway(cfg.Transfer)
}

func NewRedemptionMetrics() commands.RedemptionMetrics {
	return metrics.NewRedemptionMetrics(prometheus.DefaultRegisterer)
}
