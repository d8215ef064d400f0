package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/dispatch"
	"fulfillment/internal/core/application/registry"
	"fulfillment/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DeliveryDispatchJob manages the scheduled dispatch of paid delivery orders.
// Runs every second to match confirmed orders that carry a delivery address
// with the first available driver.
type DeliveryDispatchJob struct {
	orders     *registry.OrderRegistry
	dispatcher *dispatch.DeliveryDispatcher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDeliveryDispatchJob creates a job that sweeps the registry for dispatchable
// orders every second and schedules them through the dispatcher.
func NewDeliveryDispatchJob(
	orders *registry.OrderRegistry,
	dispatcher *dispatch.DeliveryDispatcher,
	logger *slog.Logger,
) *DeliveryDispatchJob {
	return &DeliveryDispatchJob{
		orders:     orders,
		dispatcher: dispatcher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "delivery_dispatch_job"),
	}
}

// Start begins the delivery dispatch job to run every second.
func (j *DeliveryDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		if _, err := j.DispatchPending(); err != nil {
			// Running out of free drivers is an expected business scenario
			if !errors.Is(err, dispatch.ErrNoAvailableDriver) {
				j.logger.ErrorContext(ctx, "Delivery dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job started (running every second)")
	return nil
}

// Stop stops the delivery dispatch job.
func (j *DeliveryDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job stopped")
}

// DispatchPending performs one dispatch sweep: every paid, confirmed order with
// a delivery address is scheduled onto the first available driver and moved to
// Delivering so the next sweep skips it. Returns the number of orders
// dispatched.
//
// The sweep stops with ErrNoAvailableDriver when the pool runs dry; orders left
// behind are picked up by a later sweep.
func (j *DeliveryDispatchJob) DispatchPending() (int, error) {
	dispatched := 0

	for id, o := range j.orders.AllOrders() {
		if o.Status() != order.Confirmed || !o.IsPaid() || o.DeliveryAddress() == nil {
			continue
		}

		driver, err := j.dispatcher.FindAvailableDriver()
		if err != nil {
			return dispatched, err
		}

		if _, err = j.dispatcher.ScheduleDelivery(o, driver); err != nil {
			return dispatched, err
		}

		if err = j.orders.UpdateOrderStatus(id, order.Delivering); err != nil {
			return dispatched, err
		}

		dispatched++
	}

	return dispatched, nil
}
