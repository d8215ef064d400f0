package cmd

import (
	"log/slog"
	"strings"

	"fulfillment/internal/core/application/dispatch"
	"fulfillment/internal/core/application/payments"
	"fulfillment/internal/core/application/registry"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/jobs"
)

// CompositionRoot wires the fulfillment core together: one sequence per
// id-space, one registry, one payment processor, one dispatcher.
type CompositionRoot struct {
	orderRegistry    *registry.OrderRegistry
	paymentProcessor *payments.PaymentProcessor
	dispatcher       *dispatch.DeliveryDispatcher
}

// NewCompositionRoot builds the application object graph.
func NewCompositionRoot(config Config) (CompositionRoot, error) {
	orderIDs, err := kernel.NewSequence("ORD")
	if err != nil {
		return CompositionRoot{}, err
	}

	receiptNumbers, err := kernel.NewSequence("RCP")
	if err != nil {
		return CompositionRoot{}, err
	}

	orderRegistry, err := registry.NewOrderRegistry(orderIDs)
	if err != nil {
		return CompositionRoot{}, err
	}

	paymentProcessor, err := payments.NewPaymentProcessor(receiptNumbers)
	if err != nil {
		return CompositionRoot{}, err
	}

	dispatcher := dispatch.NewDeliveryDispatcher()
	if err = seedDriverPool(dispatcher, config.Drivers); err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		orderRegistry:    orderRegistry,
		paymentProcessor: paymentProcessor,
		dispatcher:       dispatcher,
	}, nil
}

// seedDriverPool registers the drivers named in list, a comma-separated set
// of "name:vehicle" entries. The vehicle part is optional and defaults to CAR.
func seedDriverPool(dispatcher *dispatch.DeliveryDispatcher, list string) error {
	if strings.TrimSpace(list) == "" {
		return nil
	}

	for _, entry := range strings.Split(list, ",") {
		name, vehicleTag, tagged := strings.Cut(entry, ":")

		vehicle := driver.Car
		if tagged {
			parsed, err := driver.ParseVehicle(vehicleTag)
			if err != nil {
				return err
			}
			vehicle = parsed
		}

		d, err := driver.NewDriver(strings.TrimSpace(name), vehicle)
		if err != nil {
			return err
		}
		dispatcher.AddDriver(d)
	}

	return nil
}

// OrderRegistry returns the order registry.
func (c *CompositionRoot) OrderRegistry() *registry.OrderRegistry {
	return c.orderRegistry
}

// PaymentProcessor returns the payment processor.
func (c *CompositionRoot) PaymentProcessor() *payments.PaymentProcessor {
	return c.paymentProcessor
}

// DeliveryDispatcher returns the delivery dispatcher.
func (c *CompositionRoot) DeliveryDispatcher() *dispatch.DeliveryDispatcher {
	return c.dispatcher
}

// CreateJobManager creates the background job manager over the wired services.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.orderRegistry, c.dispatcher, logger)
}
