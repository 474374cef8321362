package order

type Status string

const (
	StatusProcessing Status = "Processing"
	StatusInTransit  Status = "In-Transit"
	StatusDelivered  Status = "Delivered"
	StatusCanceled   Status = "Canceled"
	StatusReturned   Status = "Returned"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

// updatableStatuses is the set the explicit status-update operation accepts.
// Any member may replace any other; Canceled and Returned are only reachable
// through their dedicated operations.
var updatableStatuses = map[Status]bool{
	StatusProcessing: true,
	StatusInTransit:  true,
	StatusDelivered:  true,
}

// IsUpdatable reports whether the status may be set via the explicit
// status-update operation.
func IsUpdatable(s Status) bool {
	return updatableStatuses[s]
}

// CanCancel reports whether an order in the given status may be canceled.
// Canceling an already-canceled order would restore its stock a second time.
func CanCancel(s Status) bool {
	return s != StatusDelivered && s != StatusReturned && s != StatusCanceled
}

// CanReturn reports whether an order in the given status may be returned.
func CanReturn(s Status) bool {
	return s == StatusDelivered || s == StatusInTransit
}

// PaymentStatusNotFound is the value the payment-status lookup yields for an
// unknown order. Long-standing client contract: callers receive this string
// as a successful result and compare against it.
const PaymentStatusNotFound = "Order not found."
