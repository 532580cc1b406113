package interfaces

import "sieeg_orders/internal/events"

// IChangeNotifier publishes orders-changed notifications after committed
// mutations so list/dashboard views resynchronize without a full reload.
type IChangeNotifier interface {
	Publish(t events.ChangeType, orderID string)
}
